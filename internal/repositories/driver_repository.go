package repositories

import (
	"context"
	"errors"
	"fmt"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type driverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

func (r *driverRepository) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver by email: %w", err)
	}
	return &driver, nil
}

func (r *driverRepository) CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ?", id).
		Update("wallet", gorm.Expr("wallet + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit driver wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDriverNotFound
	}
	return nil
}

func (r *driverRepository) IncrementTokenVersion(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment token version: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDriverNotFound
	}
	return nil
}
