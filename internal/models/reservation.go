package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reservation holds seats on a tour package for a user. Confirmed and
// Canceled are mutually exclusive one-way flags; a reservation reaches a
// terminal state through exactly one of them.
type Reservation struct {
	ID        string          `gorm:"primaryKey;size:24" json:"id"`
	UserID    string          `gorm:"size:24;index;not null" json:"user_id"`
	PackageID string          `gorm:"size:24;index;not null" json:"package_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Seats     int             `gorm:"not null" json:"seats"`
	Confirmed bool            `gorm:"default:false" json:"confirmed"`
	Canceled  bool            `gorm:"default:false" json:"canceled"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}
