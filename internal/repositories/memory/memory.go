// Package memory provides an in-memory Store used by service tests.
// It mirrors the conditional-update semantics of the SQL repositories
// (guarded wallet debits, guarded seat holds) without a database.
//
// Atomic serializes callers but does not roll back: the engines validate
// every precondition before mutating, so a failed operation has no partial
// effect to undo.
package memory

import (
	"context"
	"sync"
	"time"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories"

	"github.com/shopspring/decimal"
)

type Store struct {
	mu sync.Mutex

	UsersByID        map[string]*models.User
	DriversByID      map[string]*models.Driver
	CarsByID         map[string]*models.Car
	PointsByID       map[string]*models.TouristPoint
	PackagesByID     map[string]*models.TourPackage
	ReservationsByID map[string]*models.Reservation
	Entries          []*models.Transaction
	SettingsByKey    map[string]string
}

func NewStore() *Store {
	return &Store{
		UsersByID:        make(map[string]*models.User),
		DriversByID:      make(map[string]*models.Driver),
		CarsByID:         make(map[string]*models.Car),
		PointsByID:       make(map[string]*models.TouristPoint),
		PackagesByID:     make(map[string]*models.TourPackage),
		ReservationsByID: make(map[string]*models.Reservation),
		SettingsByKey:    make(map[string]string),
	}
}

func (s *Store) Atomic(ctx context.Context, fn func(repositories.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (s *Store) Users() repositories.UserRepository               { return &userRepo{s} }
func (s *Store) Drivers() repositories.DriverRepository           { return &driverRepo{s} }
func (s *Store) Cars() repositories.CarRepository                 { return &carRepo{s} }
func (s *Store) Points() repositories.PointRepository             { return &pointRepo{s} }
func (s *Store) Packages() repositories.PackageRepository         { return &packageRepo{s} }
func (s *Store) Reservations() repositories.ReservationRepository { return &reservationRepo{s} }
func (s *Store) Ledger() repositories.LedgerRepository            { return &ledgerRepo{s} }
func (s *Store) Settings() repositories.SettingRepository         { return &settingRepo{s} }

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	cp := *user
	r.s.UsersByID[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.s.UsersByID[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.s.UsersByID {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrUserNotFound
}

func (r *userRepo) CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	user, ok := r.s.UsersByID[id]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	user.Wallet = user.Wallet.Add(amount)
	return nil
}

func (r *userRepo) DebitWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	user, ok := r.s.UsersByID[id]
	if !ok || user.Wallet.LessThan(amount) {
		return domainerrors.ErrInsufficientBalance
	}
	user.Wallet = user.Wallet.Sub(amount)
	return nil
}

func (r *userRepo) IncrementTokenVersion(ctx context.Context, id string) error {
	user, ok := r.s.UsersByID[id]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	user.TokenVersion++
	return nil
}

type driverRepo struct{ s *Store }

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) error {
	if driver.ID == "" {
		driver.ID = models.NewID()
	}
	cp := *driver
	r.s.DriversByID[driver.ID] = &cp
	return nil
}

func (r *driverRepo) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	driver, ok := r.s.DriversByID[id]
	if !ok {
		return nil, domainerrors.ErrDriverNotFound
	}
	cp := *driver
	return &cp, nil
}

func (r *driverRepo) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	for _, driver := range r.s.DriversByID {
		if driver.Email == email {
			cp := *driver
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrDriverNotFound
}

func (r *driverRepo) CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	driver, ok := r.s.DriversByID[id]
	if !ok {
		return domainerrors.ErrDriverNotFound
	}
	driver.Wallet = driver.Wallet.Add(amount)
	return nil
}

func (r *driverRepo) IncrementTokenVersion(ctx context.Context, id string) error {
	driver, ok := r.s.DriversByID[id]
	if !ok {
		return domainerrors.ErrDriverNotFound
	}
	driver.TokenVersion++
	return nil
}

type carRepo struct{ s *Store }

func (r *carRepo) Create(ctx context.Context, car *models.Car) error {
	if car.ID == "" {
		car.ID = models.NewID()
	}
	cp := *car
	r.s.CarsByID[car.ID] = &cp
	return nil
}

func (r *carRepo) GetByID(ctx context.Context, id string) (*models.Car, error) {
	car, ok := r.s.CarsByID[id]
	if !ok {
		return nil, domainerrors.NotFound("CAR_NOT_FOUND", "car not found")
	}
	cp := *car
	return &cp, nil
}

func (r *carRepo) ListByDriver(ctx context.Context, driverID string) ([]models.Car, error) {
	var cars []models.Car
	for _, car := range r.s.CarsByID {
		if car.DriverID == driverID {
			cars = append(cars, *car)
		}
	}
	return cars, nil
}

type pointRepo struct{ s *Store }

func (r *pointRepo) Create(ctx context.Context, point *models.TouristPoint) error {
	if point.ID == "" {
		point.ID = models.NewID()
	}
	cp := *point
	r.s.PointsByID[point.ID] = &cp
	return nil
}

func (r *pointRepo) GetByID(ctx context.Context, id string) (*models.TouristPoint, error) {
	point, ok := r.s.PointsByID[id]
	if !ok {
		return nil, domainerrors.NotFound("POINT_NOT_FOUND", "tourist point not found")
	}
	cp := *point
	return &cp, nil
}

func (r *pointRepo) List(ctx context.Context) ([]models.TouristPoint, error) {
	var points []models.TouristPoint
	for _, point := range r.s.PointsByID {
		points = append(points, *point)
	}
	return points, nil
}

type packageRepo struct{ s *Store }

func (r *packageRepo) Create(ctx context.Context, pkg *models.TourPackage) error {
	if pkg.ID == "" {
		pkg.ID = models.NewID()
	}
	cp := *pkg
	r.s.PackagesByID[pkg.ID] = &cp
	return nil
}

func (r *packageRepo) GetByID(ctx context.Context, id string) (*models.TourPackage, error) {
	pkg, ok := r.s.PackagesByID[id]
	if !ok {
		return nil, domainerrors.ErrPackageNotFound
	}
	cp := *pkg
	return &cp, nil
}

func (r *packageRepo) List(ctx context.Context, limit, offset int) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	for _, pkg := range r.s.PackagesByID {
		if !pkg.IsFinalised {
			pkgs = append(pkgs, *pkg)
		}
	}
	return pkgs, nil
}

func (r *packageRepo) ListByDriver(ctx context.Context, driverID string) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	for _, pkg := range r.s.PackagesByID {
		if pkg.DriverID == driverID {
			pkgs = append(pkgs, *pkg)
		}
	}
	return pkgs, nil
}

func (r *packageRepo) HoldSeats(ctx context.Context, id string, seats int) error {
	pkg, ok := r.s.PackagesByID[id]
	if !ok || pkg.Vacancies < seats {
		return domainerrors.ErrNoVacancies
	}
	pkg.Vacancies -= seats
	return nil
}

func (r *packageRepo) ReleaseSeats(ctx context.Context, id string, seats int) error {
	pkg, ok := r.s.PackagesByID[id]
	if !ok {
		return domainerrors.ErrPackageNotFound
	}
	pkg.Vacancies += seats
	return nil
}

func (r *packageRepo) MarkStarted(ctx context.Context, id string, at time.Time) error {
	pkg, ok := r.s.PackagesByID[id]
	if !ok {
		return domainerrors.ErrPackageNotFound
	}
	started := at
	pkg.StartDate = &started
	pkg.IsRunning = true
	return nil
}

func (r *packageRepo) MarkFinalised(ctx context.Context, id string, at time.Time) error {
	pkg, ok := r.s.PackagesByID[id]
	if !ok || pkg.IsFinalised {
		return domainerrors.ErrPackageFinalised
	}
	ended := at
	pkg.EndDate = &ended
	pkg.IsRunning = false
	pkg.IsFinalised = true
	return nil
}

type reservationRepo struct{ s *Store }

func (r *reservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	if res.ID == "" {
		res.ID = models.NewID()
	}
	cp := *res
	r.s.ReservationsByID[res.ID] = &cp
	return nil
}

func (r *reservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	res, ok := r.s.ReservationsByID[id]
	if !ok {
		return nil, domainerrors.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *reservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	for _, res := range r.s.ReservationsByID {
		if res.UserID == userID {
			reservations = append(reservations, *res)
		}
	}
	return reservations, nil
}

func (r *reservationRepo) IDsByPackage(ctx context.Context, packageID string) ([]string, error) {
	var ids []string
	for _, res := range r.s.ReservationsByID {
		if res.PackageID == packageID {
			ids = append(ids, res.ID)
		}
	}
	return ids, nil
}

func (r *reservationRepo) MarkConfirmed(ctx context.Context, id string) error {
	res, ok := r.s.ReservationsByID[id]
	if !ok || res.Confirmed || res.Canceled {
		return domainerrors.ErrAlreadyConfirmed
	}
	res.Confirmed = true
	return nil
}

func (r *reservationRepo) MarkCanceled(ctx context.Context, id string) error {
	res, ok := r.s.ReservationsByID[id]
	if !ok || res.Canceled {
		return domainerrors.ErrAlreadyCanceled
	}
	res.Confirmed = false
	res.Canceled = true
	return nil
}

type ledgerRepo struct{ s *Store }

func (r *ledgerRepo) Append(ctx context.Context, entry *models.Transaction) error {
	if entry.ID == "" {
		entry.ID = models.NewID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	cp := *entry
	r.s.Entries = append(r.s.Entries, &cp)
	return nil
}

func (r *ledgerRepo) List(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	var entries []models.Transaction
	for _, e := range r.s.Entries {
		entries = append(entries, *e)
	}
	return entries, nil
}

func (r *ledgerRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	var entries []models.Transaction
	for _, e := range r.s.Entries {
		if e.UserID != nil && *e.UserID == userID {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (r *ledgerRepo) ListByDriver(ctx context.Context, driverID string, limit, offset int) ([]models.Transaction, error) {
	var entries []models.Transaction
	for _, e := range r.s.Entries {
		if e.DriverID != nil && *e.DriverID == driverID {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (r *ledgerRepo) ListByReservation(ctx context.Context, reservationID string) ([]models.Transaction, error) {
	var entries []models.Transaction
	for _, e := range r.s.Entries {
		if e.ReservationID != nil && *e.ReservationID == reservationID {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (r *ledgerRepo) SettlePending(ctx context.Context, reservationIDs []string) error {
	ids := make(map[string]bool, len(reservationIDs))
	for _, id := range reservationIDs {
		ids[id] = true
	}
	for _, e := range r.s.Entries {
		if e.Type == models.TransactionTypePendant && e.ReservationID != nil && ids[*e.ReservationID] {
			e.Type = models.TransactionTypeCredit
		}
	}
	return nil
}

func (r *ledgerRepo) SumCredits(ctx context.Context, reservationIDs []string) (decimal.Decimal, error) {
	ids := make(map[string]bool, len(reservationIDs))
	for _, id := range reservationIDs {
		ids[id] = true
	}
	total := decimal.Zero
	for _, e := range r.s.Entries {
		if e.Type == models.TransactionTypeCredit && e.ReservationID != nil && ids[*e.ReservationID] {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

type settingRepo struct{ s *Store }

func (r *settingRepo) Tax(ctx context.Context) (decimal.Decimal, error) {
	raw, ok := r.s.SettingsByKey[models.SettingTax]
	if !ok {
		return repositories.DefaultTax, nil
	}
	return decimal.NewFromString(raw)
}

func (r *settingRepo) SetTax(ctx context.Context, tax decimal.Decimal) error {
	r.s.SettingsByKey[models.SettingTax] = tax.String()
	return nil
}
