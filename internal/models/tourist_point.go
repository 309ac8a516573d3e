package models

import (
	"time"

	"gorm.io/gorm"
)

type TouristPoint struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *TouristPoint) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
