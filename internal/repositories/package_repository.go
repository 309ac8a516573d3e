package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"

	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.TourPackage) error {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return fmt.Errorf("failed to create tour package: %w", err)
	}
	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*models.TourPackage, error) {
	var pkg models.TourPackage
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get tour package: %w", err)
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, limit, offset int) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	err := r.db.WithContext(ctx).
		Where("is_finalised = ?", false).
		Order("tour_date").
		Limit(limit).
		Offset(offset).
		Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tour packages: %w", err)
	}
	return pkgs, nil
}

func (r *packageRepository) ListByDriver(ctx context.Context, driverID string) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("tour_date").
		Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list driver packages: %w", err)
	}
	return pkgs, nil
}

// HoldSeats and ReleaseSeats adjust vacancies with relative updates so
// concurrent reservations on the same package never lose an update.

func (r *packageRepository) HoldSeats(ctx context.Context, id string, seats int) error {
	result := r.db.WithContext(ctx).Model(&models.TourPackage{}).
		Where("id = ? AND vacancies >= ?", id, seats).
		Update("vacancies", gorm.Expr("vacancies - ?", seats))
	if result.Error != nil {
		return fmt.Errorf("failed to hold seats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNoVacancies
	}
	invalidatePackage(ctx, id)
	return nil
}

func (r *packageRepository) ReleaseSeats(ctx context.Context, id string, seats int) error {
	result := r.db.WithContext(ctx).Model(&models.TourPackage{}).
		Where("id = ?", id).
		Update("vacancies", gorm.Expr("vacancies + ?", seats))
	if result.Error != nil {
		return fmt.Errorf("failed to release seats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPackageNotFound
	}
	invalidatePackage(ctx, id)
	return nil
}

func (r *packageRepository) MarkStarted(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.TourPackage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_date": at,
			"is_running": true,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark package started: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPackageNotFound
	}
	invalidatePackage(ctx, id)
	return nil
}

func (r *packageRepository) MarkFinalised(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.TourPackage{}).
		Where("id = ? AND is_finalised = ?", id, false).
		Updates(map[string]interface{}{
			"end_date":     at,
			"is_running":   false,
			"is_finalised": true,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalise package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPackageFinalised
	}
	invalidatePackage(ctx, id)
	return nil
}

// invalidatePackage drops the cached copy after a write. Invalidation
// happens before commit, so a reader can repopulate the cache with the
// pre-commit row; the short TTL bounds that window.
func invalidatePackage(ctx context.Context, id string) {
	if CacheService == nil {
		return
	}
	if err := CacheService.InvalidatePackage(ctx, id); err != nil {
		log.Printf("failed to invalidate cached package %s: %v", id, err)
	}
}
