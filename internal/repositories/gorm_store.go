package repositories

import (
	"context"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm handle in the Store interface.
func NewStore(db *gorm.DB) Store {
	if db == nil {
		panic("db is required")
	}
	return &gormStore{db: db}
}

func (s *gormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) Users() UserRepository               { return &userRepository{db: s.db} }
func (s *gormStore) Drivers() DriverRepository           { return &driverRepository{db: s.db} }
func (s *gormStore) Cars() CarRepository                 { return &carRepository{db: s.db} }
func (s *gormStore) Points() PointRepository             { return &pointRepository{db: s.db} }
func (s *gormStore) Packages() PackageRepository         { return &packageRepository{db: s.db} }
func (s *gormStore) Reservations() ReservationRepository { return &reservationRepository{db: s.db} }
func (s *gormStore) Ledger() LedgerRepository            { return &ledgerRepository{db: s.db} }
func (s *gormStore) Settings() SettingRepository         { return &settingRepository{db: s.db} }
