package repositories

import (
	"context"
	"errors"
	"fmt"

	"passeio/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTax is used when no tax setting has been stored yet.
var DefaultTax = decimal.NewFromFloat(0.10)

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Tax reads the platform fee fraction. Callers must read it at the moment
// they need it; the value is mutable at runtime.
func (r *settingRepository) Tax(ctx context.Context) (decimal.Decimal, error) {
	var setting models.PlatformSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", models.SettingTax).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultTax, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read tax setting: %w", err)
	}
	tax, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed tax setting %q: %w", setting.Value, err)
	}
	return tax, nil
}

func (r *settingRepository) SetTax(ctx context.Context, tax decimal.Decimal) error {
	setting := models.PlatformSetting{Key: models.SettingTax, Value: tax.String()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to store tax setting: %w", err)
	}
	return nil
}
