// Package repositories provides the data access layer.
// All cross-entity financial operations go through Store.Atomic so that a
// wallet mutation, its ledger entries, and the related flag/seat changes
// commit or roll back as one unit.
package repositories

import (
	"context"
	"time"

	"passeio/internal/models"

	"github.com/shopspring/decimal"
)

// Store bundles the entity repositories behind a single transactional
// boundary. Atomic runs fn against a Store bound to one database
// transaction; any error rolls the whole unit back.
type Store interface {
	Atomic(ctx context.Context, fn func(Store) error) error

	Users() UserRepository
	Drivers() DriverRepository
	Cars() CarRepository
	Points() PointRepository
	Packages() PackageRepository
	Reservations() ReservationRepository
	Ledger() LedgerRepository
	Settings() SettingRepository
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// CreditWallet applies a relative balance increment.
	CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error
	// DebitWallet decrements the balance only when it covers amount;
	// returns ErrInsufficientBalance otherwise.
	DebitWallet(ctx context.Context, id string, amount decimal.Decimal) error
	IncrementTokenVersion(ctx context.Context, id string) error
}

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	GetByEmail(ctx context.Context, email string) (*models.Driver, error)
	CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error
	IncrementTokenVersion(ctx context.Context, id string) error
}

type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	GetByID(ctx context.Context, id string) (*models.Car, error)
	ListByDriver(ctx context.Context, driverID string) ([]models.Car, error)
}

type PointRepository interface {
	Create(ctx context.Context, point *models.TouristPoint) error
	GetByID(ctx context.Context, id string) (*models.TouristPoint, error)
	List(ctx context.Context) ([]models.TouristPoint, error)
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.TourPackage) error
	GetByID(ctx context.Context, id string) (*models.TourPackage, error)
	List(ctx context.Context, limit, offset int) ([]models.TourPackage, error)
	ListByDriver(ctx context.Context, driverID string) ([]models.TourPackage, error)
	// HoldSeats decrements vacancies only when enough remain; returns
	// ErrNoVacancies otherwise. The guard and the decrement are a single
	// conditional UPDATE, never a read-modify-write.
	HoldSeats(ctx context.Context, id string, seats int) error
	ReleaseSeats(ctx context.Context, id string, seats int) error
	MarkStarted(ctx context.Context, id string, at time.Time) error
	MarkFinalised(ctx context.Context, id string, at time.Time) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	IDsByPackage(ctx context.Context, packageID string) ([]string, error)
	MarkConfirmed(ctx context.Context, id string) error
	// MarkCanceled sets canceled and clears confirmed in one update.
	MarkCanceled(ctx context.Context, id string) error
}

// LedgerRepository is append-only. SettlePending is the single sanctioned
// mutation: the settlement-time bulk reclassification PENDANT -> CREDIT.
type LedgerRepository interface {
	Append(ctx context.Context, entry *models.Transaction) error
	List(ctx context.Context, limit, offset int) ([]models.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
	ListByDriver(ctx context.Context, driverID string, limit, offset int) ([]models.Transaction, error)
	ListByReservation(ctx context.Context, reservationID string) ([]models.Transaction, error)
	SettlePending(ctx context.Context, reservationIDs []string) error
	SumCredits(ctx context.Context, reservationIDs []string) (decimal.Decimal, error)
}

type SettingRepository interface {
	Tax(ctx context.Context) (decimal.Decimal, error)
	SetTax(ctx context.Context, tax decimal.Decimal) error
}
