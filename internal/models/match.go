package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match decision states. Any status may overwrite any other; there is no
// terminal state.
const (
	MatchStatusPending = "pending"
	MatchStatusAccept  = "accept"
	MatchStatusReject  = "reject"
)

// Match records a seller's decision on a buyer. The (seller, buyer) pair is
// the natural key; repeated decisions update the existing row.
type Match struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	SellerID  uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_matches_seller_buyer" json:"seller_id"`
	BuyerID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_matches_seller_buyer" json:"buyer_id"`
	Status    string    `gorm:"size:10;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
