package repositories

import (
	"context"
	"errors"
	"fmt"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"

	"gorm.io/gorm"
)

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &res, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (r *reservationRepository) IDsByPackage(ctx context.Context, packageID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("package_id = ?", packageID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to collect reservation ids: %w", err)
	}
	return ids, nil
}

func (r *reservationRepository) MarkConfirmed(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("id = ? AND confirmed = ? AND canceled = ?", id, false, false).
		Update("confirmed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to confirm reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyConfirmed
	}
	return nil
}

func (r *reservationRepository) MarkCanceled(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("id = ? AND canceled = ?", id, false).
		Updates(map[string]interface{}{
			"confirmed": false,
			"canceled":  true,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to cancel reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyCanceled
	}
	return nil
}
