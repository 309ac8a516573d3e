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

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("wallet", gorm.Expr("wallet + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit user wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) DebitWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND wallet >= ?", id, amount).
		Update("wallet", gorm.Expr("wallet - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to debit user wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientBalance
	}
	return nil
}

func (r *userRepository) IncrementTokenVersion(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment token version: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}
