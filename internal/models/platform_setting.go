package models

import "time"

// Setting keys
const (
	SettingTax = "tax"
)

// PlatformSetting is a mutable key-value configuration record. The platform
// fee fraction lives under SettingTax and is read fresh at settlement time.
type PlatformSetting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
