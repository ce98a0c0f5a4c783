package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizmatch/backend/internal/database"
	"github.com/bizmatch/backend/internal/models"
	"github.com/bizmatch/backend/internal/types"
)

var ErrInvalidAction = errors.New("invalid action")

const (
	buyerCachePrefix = "buyers:"
	buyerCacheTTL    = time.Minute
)

// MatchService handles buyer discovery and seller accept/reject decisions
type MatchService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewMatchService(db *gorm.DB, redisClient *redis.Client) *MatchService {
	return &MatchService{
		db:    db,
		redis: redisClient,
	}
}

// ListBuyers returns every buyer with a submitted profile, newest profile
// first, annotated with this seller's decision status. Results are cached
// per seller for a short window; cache failures fall through to the database.
func (s *MatchService) ListBuyers(ctx context.Context, sellerID uuid.UUID) ([]types.BuyerView, error) {
	cacheKey := buyerCachePrefix + sellerID.String()
	if s.redis != nil {
		cached := []types.BuyerView{}
		if hit, err := database.GetCache(ctx, s.redis, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	// Non-nil so an empty result serializes as a JSON array.
	rows := []types.BuyerView{}
	err := s.db.WithContext(ctx).
		Table("users").
		Select(`users.id, users.first_name, users.last_name, users.email,
			profiles.investment_range, profiles.experience_level, profiles.preferred_industries,
			profiles.timeline, profiles.business_size, profiles.location_preference,
			profiles.liquid_capital, profiles.risk_tolerance, profiles.bio,
			profiles.created_at, profiles.updated_at,
			COALESCE(matches.status, 'pending') AS status`).
		Joins("JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL").
		Joins("LEFT JOIN matches ON matches.buyer_id = users.id AND matches.seller_id = ?", sellerID).
		Where("users.user_type = ? AND users.deleted_at IS NULL", models.UserTypeBuyer).
		Order("profiles.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := database.SetCache(ctx, s.redis, cacheKey, rows, buyerCacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache buyer listing")
		}
	}
	return rows, nil
}

// Decide records a seller's accept/reject decision on a buyer. The decision
// is an upsert on the (seller, buyer) pair, not a transition: any status may
// overwrite any other and repeated decisions never create a second row.
func (s *MatchService) Decide(ctx context.Context, sellerID, buyerID uuid.UUID, action string) error {
	if action != models.MatchStatusAccept && action != models.MatchStatusReject {
		return ErrInvalidAction
	}

	match := models.Match{
		SellerID: sellerID,
		BuyerID:  buyerID,
		Status:   action,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "seller_id"}, {Name: "buyer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&match).Error
	if err != nil {
		return err
	}

	if s.redis != nil {
		if err := database.DeleteCache(ctx, s.redis, buyerCachePrefix+sellerID.String()); err != nil {
			logrus.WithError(err).Warn("failed to invalidate buyer listing cache")
		}
	}
	return nil
}

// ListSellerMatches returns a seller's decisions joined to each buyer's user
// and profile summary, newest decision first.
func (s *MatchService) ListSellerMatches(ctx context.Context, sellerID uuid.UUID) ([]types.SellerMatchView, error) {
	rows := []types.SellerMatchView{}
	err := s.db.WithContext(ctx).
		Table("matches").
		Select(`matches.id, matches.status, matches.created_at,
			users.first_name, users.last_name, users.email,
			profiles.investment_range, profiles.experience_level, profiles.preferred_industries`).
		Joins("JOIN users ON users.id = matches.buyer_id AND users.deleted_at IS NULL").
		Joins("JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL").
		Where("matches.seller_id = ?", sellerID).
		Order("matches.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListBuyerMatches returns the decisions recorded against a buyer, joined to
// each seller's user summary only, newest decision first.
func (s *MatchService) ListBuyerMatches(ctx context.Context, buyerID uuid.UUID) ([]types.BuyerMatchView, error) {
	rows := []types.BuyerMatchView{}
	err := s.db.WithContext(ctx).
		Table("matches").
		Select(`matches.id, matches.status, matches.created_at,
			users.first_name, users.last_name, users.email`).
		Joins("JOIN users ON users.id = matches.seller_id AND users.deleted_at IS NULL").
		Where("matches.buyer_id = ?", buyerID).
		Order("matches.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
