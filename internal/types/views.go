package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizmatch/backend/internal/models"
)

// UserView is the public projection of a user returned by the auth endpoints.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		UserType:  u.UserType,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ProfileView is the joined user+profile row returned by GET /api/profile.
// Profile columns come from a LEFT JOIN and are empty when the user has not
// submitted a profile yet.
type ProfileView struct {
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	Email               string            `json:"email"`
	UserType            string            `json:"user_type"`
	InvestmentRange     string            `json:"investment_range"`
	ExperienceLevel     string            `json:"experience_level"`
	PreferredIndustries models.StringList `json:"preferred_industries"`
	Timeline            string            `json:"timeline"`
	BusinessSize        string            `json:"business_size"`
	LocationPreference  string            `json:"location_preference"`
	LiquidCapital       string            `json:"liquid_capital"`
	RiskTolerance       string            `json:"risk_tolerance"`
	Bio                 string            `json:"bio"`
	CreatedAt           *time.Time        `json:"created_at"`
	UpdatedAt           *time.Time        `json:"updated_at"`
}

// BuyerView is one row of the seller-facing buyer listing, including the
// seller's own decision status ("pending" when no decision exists).
type BuyerView struct {
	ID                  uuid.UUID         `json:"id"`
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	Email               string            `json:"email"`
	InvestmentRange     string            `json:"investment_range"`
	ExperienceLevel     string            `json:"experience_level"`
	PreferredIndustries models.StringList `json:"preferred_industries"`
	Timeline            string            `json:"timeline"`
	BusinessSize        string            `json:"business_size"`
	LocationPreference  string            `json:"location_preference"`
	LiquidCapital       string            `json:"liquid_capital"`
	RiskTolerance       string            `json:"risk_tolerance"`
	Bio                 string            `json:"bio"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	Status              string            `json:"status"`
}

// SellerMatchView is one row of a seller's match listing: the decision plus a
// summary of the buyer and their profile.
type SellerMatchView struct {
	ID                  uuid.UUID         `json:"id"`
	Status              string            `json:"status"`
	CreatedAt           time.Time         `json:"created_at"`
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	Email               string            `json:"email"`
	InvestmentRange     string            `json:"investment_range"`
	ExperienceLevel     string            `json:"experience_level"`
	PreferredIndustries models.StringList `json:"preferred_industries"`
}

// BuyerMatchView is one row of a buyer's match listing: the decision plus the
// seller's user summary only.
type BuyerMatchView struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}
