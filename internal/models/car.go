package models

import (
	"time"

	"gorm.io/gorm"
)

type Car struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	DriverID  string    `gorm:"size:24;index;not null" json:"driver_id"`
	Model     string    `gorm:"not null" json:"model"`
	Plate     string    `gorm:"uniqueIndex;not null" json:"plate"`
	Seats     int       `gorm:"not null" json:"seats"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
