package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizmatch/backend/internal/database"
	"github.com/bizmatch/backend/internal/models"
	"github.com/bizmatch/backend/internal/types"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileService handles the acquisition-preference profile attached to a user
type ProfileService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewProfileService(db *gorm.DB, redisClient *redis.Client) *ProfileService {
	return &ProfileService{
		db:    db,
		redis: redisClient,
	}
}

// GetOwnProfile returns the joined user+profile row for the authenticated
// user. Profile columns are empty when no profile has been submitted yet.
func (s *ProfileService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error) {
	var view types.ProfileView
	err := s.db.WithContext(ctx).
		Table("users").
		Select(`users.first_name, users.last_name, users.email, users.user_type,
			profiles.investment_range, profiles.experience_level, profiles.preferred_industries,
			profiles.timeline, profiles.business_size, profiles.location_preference,
			profiles.liquid_capital, profiles.risk_tolerance, profiles.bio,
			profiles.created_at, profiles.updated_at`).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL").
		Where("users.id = ? AND users.deleted_at IS NULL", userID).
		Take(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpsertProfile inserts or fully overwrites the user's profile in a single
// conditional upsert against the user_id uniqueness constraint.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, req *types.ProfileRequest) error {
	profile := models.Profile{
		UserID:              userID,
		InvestmentRange:     req.InvestmentRange,
		ExperienceLevel:     req.ExperienceLevel,
		PreferredIndustries: models.StringList(req.PreferredIndustries),
		Timeline:            req.Timeline,
		BusinessSize:        req.BusinessSize,
		LocationPreference:  req.LocationPreference,
		LiquidCapital:       req.LiquidCapital,
		RiskTolerance:       req.RiskTolerance,
		Bio:                 req.Bio,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"investment_range", "experience_level", "preferred_industries",
			"timeline", "business_size", "location_preference",
			"liquid_capital", "risk_tolerance", "bio", "updated_at",
		}),
	}).Create(&profile).Error
	if err != nil {
		return err
	}

	// A changed profile invalidates every seller's cached buyer listing.
	if s.redis != nil {
		if err := database.DeleteCacheByPrefix(ctx, s.redis, buyerCachePrefix); err != nil {
			logrus.WithError(err).Warn("failed to invalidate buyer listing cache")
		}
	}
	return nil
}
