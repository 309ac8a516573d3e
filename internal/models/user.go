package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"primaryKey;size:24" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Phone        string `json:"phone"`
	Role         string `gorm:"not null;default:user" json:"role"`
	Wallet       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"wallet"`
	TokenVersion int             `gorm:"default:1" json:"-"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
