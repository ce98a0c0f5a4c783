package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a custom type for handling ordered string lists in JSONB
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Profile holds a user's acquisition preferences. One row per user; a
// submission overwrites every mutable field.
type Profile struct {
	ID                  uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	InvestmentRange     string         `gorm:"size:50" json:"investment_range"`
	ExperienceLevel     string         `gorm:"size:50" json:"experience_level"`
	PreferredIndustries StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"preferred_industries"`
	Timeline            string         `gorm:"size:50" json:"timeline"`
	BusinessSize        string         `gorm:"size:50" json:"business_size"`
	LocationPreference  string         `gorm:"size:100" json:"location_preference"`
	LiquidCapital       string         `gorm:"size:50" json:"liquid_capital"`
	RiskTolerance       string         `gorm:"size:20" json:"risk_tolerance"`
	Bio                 string         `gorm:"type:text" json:"bio"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
