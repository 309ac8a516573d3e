package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TourPackage is a driver's published tour. SeatsAvailable is the capacity
// fixed at creation; Vacancies is the remaining capacity and is only mutated
// through reservation operations. Once IsFinalised is set the package is
// terminal and no further lifecycle transitions are accepted.
type TourPackage struct {
	ID             string          `gorm:"primaryKey;size:24" json:"id"`
	DriverID       string          `gorm:"size:24;index;not null" json:"driver_id"`
	CarID          string          `gorm:"size:24;index;not null" json:"car_id"`
	OriginID       string          `gorm:"size:24;not null" json:"origin_id"`
	DestinationID  string          `gorm:"size:24;not null" json:"destination_id"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	SeatsAvailable int             `gorm:"not null" json:"seats_available"`
	Vacancies      int             `gorm:"not null" json:"vacancies"`
	TourDate       time.Time       `gorm:"not null" json:"tour_date"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
	IsRunning      bool            `gorm:"default:false" json:"is_running"`
	IsFinalised    bool            `gorm:"default:false" json:"is_finalised"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (p *TourPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
