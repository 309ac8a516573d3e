// Package catalog manages what drivers publish: cars, tourist points and
// tour packages. Package reads go through the Redis cache; writes that touch
// a package invalidate its entry.
package catalog

import (
	"context"
	"log"
	"time"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/repositories/cache"
	"passeio/internal/validation"

	"github.com/shopspring/decimal"
)

type CarInput struct {
	Model string `json:"model"`
	Plate string `json:"plate"`
	Seats int    `json:"seats"`
}

type PointInput struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

type PackageInput struct {
	CarID         string          `json:"car_id"`
	OriginID      string          `json:"origin_id"`
	DestinationID string          `json:"destination_id"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Seats         int             `json:"seats"`
	TourDate      time.Time       `json:"tour_date"`
}

type Service interface {
	CreateCar(ctx context.Context, driverID string, input CarInput) (*models.Car, error)
	ListCars(ctx context.Context, driverID string) ([]models.Car, error)

	CreatePoint(ctx context.Context, input PointInput) (*models.TouristPoint, error)
	ListPoints(ctx context.Context) ([]models.TouristPoint, error)

	CreatePackage(ctx context.Context, driverID string, input PackageInput) (*models.TourPackage, error)
	GetPackage(ctx context.Context, id string) (*models.TourPackage, error)
	ListPackages(ctx context.Context, limit, offset int) ([]models.TourPackage, error)
	ListDriverPackages(ctx context.Context, driverID string) ([]models.TourPackage, error)
}

type service struct {
	store repositories.Store
	cache *cache.CacheService
}

// NewService builds the catalog service. The cache is optional; a nil cache
// disables caching without changing behavior.
func NewService(store repositories.Store, cacheSvc *cache.CacheService) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{store: store, cache: cacheSvc}
}

func (s *service) CreateCar(ctx context.Context, driverID string, input CarInput) (*models.Car, error) {
	if !models.ValidID(driverID) {
		return nil, domainerrors.ErrInvalidID
	}
	v := validation.New()
	v.Car(input.Model, input.Plate, input.Seats)
	if !v.Valid() {
		return nil, domainerrors.Validation("INVALID_INPUT", validation.Flatten(v.Errors))
	}
	if _, err := s.store.Drivers().GetByID(ctx, driverID); err != nil {
		return nil, err
	}

	car := &models.Car{
		DriverID: driverID,
		Model:    input.Model,
		Plate:    input.Plate,
		Seats:    input.Seats,
	}
	if err := s.store.Cars().Create(ctx, car); err != nil {
		return nil, domainerrors.Internal("could not register car")
	}
	return car, nil
}

func (s *service) ListCars(ctx context.Context, driverID string) ([]models.Car, error) {
	if !models.ValidID(driverID) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Cars().ListByDriver(ctx, driverID)
}

func (s *service) CreatePoint(ctx context.Context, input PointInput) (*models.TouristPoint, error) {
	v := validation.New()
	v.TouristPoint(input.Name, input.City, input.State)
	if !v.Valid() {
		return nil, domainerrors.Validation("INVALID_INPUT", validation.Flatten(v.Errors))
	}

	point := &models.TouristPoint{
		Name:  input.Name,
		City:  input.City,
		State: input.State,
	}
	if err := s.store.Points().Create(ctx, point); err != nil {
		return nil, domainerrors.Internal("could not create tourist point")
	}
	return point, nil
}

func (s *service) ListPoints(ctx context.Context) ([]models.TouristPoint, error) {
	return s.store.Points().List(ctx)
}

func (s *service) CreatePackage(ctx context.Context, driverID string, input PackageInput) (*models.TourPackage, error) {
	if !models.ValidID(driverID) || !models.ValidID(input.CarID) ||
		!models.ValidID(input.OriginID) || !models.ValidID(input.DestinationID) {
		return nil, domainerrors.ErrInvalidID
	}
	v := validation.New()
	v.TourPackage(input.Description, input.Price.InexactFloat64(), input.Seats, input.TourDate)
	if !v.Valid() {
		return nil, domainerrors.Validation("INVALID_INPUT", validation.Flatten(v.Errors))
	}

	if _, err := s.store.Drivers().GetByID(ctx, driverID); err != nil {
		return nil, err
	}
	car, err := s.store.Cars().GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car.DriverID != driverID {
		return nil, domainerrors.Validation("CAR_NOT_OWNED", "car belongs to another driver")
	}
	if input.Seats > car.Seats {
		return nil, domainerrors.Validation("TOO_MANY_SEATS", "package offers more seats than the car has")
	}
	if _, err := s.store.Points().GetByID(ctx, input.OriginID); err != nil {
		return nil, err
	}
	if _, err := s.store.Points().GetByID(ctx, input.DestinationID); err != nil {
		return nil, err
	}

	pkg := &models.TourPackage{
		DriverID:       driverID,
		CarID:          input.CarID,
		OriginID:       input.OriginID,
		DestinationID:  input.DestinationID,
		Description:    input.Description,
		Price:          input.Price,
		SeatsAvailable: input.Seats,
		Vacancies:      input.Seats,
		TourDate:       input.TourDate,
	}
	if err := s.store.Packages().Create(ctx, pkg); err != nil {
		return nil, domainerrors.Internal("could not publish package")
	}
	return pkg, nil
}

func (s *service) GetPackage(ctx context.Context, id string) (*models.TourPackage, error) {
	if !models.ValidID(id) {
		return nil, domainerrors.ErrInvalidID
	}

	if s.cache != nil {
		if pkg, err := s.cache.GetPackage(ctx, id); err == nil && pkg != nil {
			return pkg, nil
		}
	}

	pkg, err := s.store.Packages().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.CachePackage(ctx, pkg); err != nil {
			log.Printf("could not cache package %s: %v", id, err)
		}
	}
	return pkg, nil
}

func (s *service) ListPackages(ctx context.Context, limit, offset int) ([]models.TourPackage, error) {
	return s.store.Packages().List(ctx, limit, offset)
}

func (s *service) ListDriverPackages(ctx context.Context, driverID string) ([]models.TourPackage, error) {
	if !models.ValidID(driverID) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Packages().ListByDriver(ctx, driverID)
}
