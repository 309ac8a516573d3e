package repositories

import (
	"context"
	"errors"
	"fmt"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"

	"gorm.io/gorm"
)

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFound("CAR_NOT_FOUND", "car not found")
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return &car, nil
}

func (r *carRepository) ListByDriver(ctx context.Context, driverID string) ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.WithContext(ctx).Where("driver_id = ?", driverID).Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) Create(ctx context.Context, point *models.TouristPoint) error {
	if err := r.db.WithContext(ctx).Create(point).Error; err != nil {
		return fmt.Errorf("failed to create tourist point: %w", err)
	}
	return nil
}

func (r *pointRepository) GetByID(ctx context.Context, id string) (*models.TouristPoint, error) {
	var point models.TouristPoint
	if err := r.db.WithContext(ctx).First(&point, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFound("POINT_NOT_FOUND", "tourist point not found")
		}
		return nil, fmt.Errorf("failed to get tourist point: %w", err)
	}
	return &point, nil
}

func (r *pointRepository) List(ctx context.Context) ([]models.TouristPoint, error) {
	var points []models.TouristPoint
	if err := r.db.WithContext(ctx).Order("name").Find(&points).Error; err != nil {
		return nil, fmt.Errorf("failed to list tourist points: %w", err)
	}
	return points, nil
}
