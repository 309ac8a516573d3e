package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Driver struct {
	ID           string `gorm:"primaryKey;size:24" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Phone        string `json:"phone"`
	License      string `gorm:"not null" json:"license"`
	Wallet       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"wallet"`
	TokenVersion int             `gorm:"default:1" json:"-"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = NewID()
	}
	return nil
}
