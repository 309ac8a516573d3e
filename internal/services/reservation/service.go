// Package reservation implements the reservation lifecycle: register holds
// seats, confirm moves the money, cancel returns both. Each operation runs
// as a single all-or-nothing unit through Store.Atomic; every precondition
// is checked before the first mutation.
package reservation

import (
	"context"
	"time"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/services/notification"

	"github.com/shopspring/decimal"
)

// platformZone is the platform reference timezone for tour-date checks.
var platformZone = time.FixedZone("UTC-3", -3*60*60)

type Service interface {
	// Register creates an unconfirmed reservation and holds the seats.
	// The wallet and the ledger are untouched until Confirm.
	Register(ctx context.Context, userID, packageID string, seats int, amount decimal.Decimal) (*models.Reservation, error)
	// Confirm debits the user's wallet and appends the DEBIT/PENDANT
	// ledger pair. The PENDANT entry escrows the driver's payout until
	// the tour is settled.
	Confirm(ctx context.Context, userID, reservationID string) error
	// Cancel returns the held seats and the reservation amount and
	// appends a REVERSAL entry. A confirmed reservation can be canceled
	// as long as the package is not finalised and the tour date has not
	// passed.
	Cancel(ctx context.Context, userID, reservationID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// Entries lists the ledger entries behind one reservation, owner only.
	Entries(ctx context.Context, userID, reservationID string) ([]models.Transaction, error)
}

type service struct {
	store    repositories.Store
	notifier notification.Notifier
}

func NewService(store repositories.Store, notifier notification.Notifier) Service {
	if store == nil {
		panic("store is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}
	return &service{store: store, notifier: notifier}
}

func (s *service) Register(ctx context.Context, userID, packageID string, seats int, amount decimal.Decimal) (*models.Reservation, error) {
	if !models.ValidID(userID) || !models.ValidID(packageID) {
		return nil, domainerrors.ErrInvalidID
	}
	if seats <= 0 {
		return nil, domainerrors.ErrInvalidSeats
	}
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}

	var res *models.Reservation
	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		user, err := tx.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		pkg, err := tx.Packages().GetByID(ctx, packageID)
		if err != nil {
			return err
		}
		if pkg.Vacancies == 0 || seats > pkg.Vacancies {
			return domainerrors.ErrNoVacancies
		}
		if user.Wallet.LessThan(amount) {
			return domainerrors.ErrInsufficientBalance
		}

		res = &models.Reservation{
			UserID:    userID,
			PackageID: packageID,
			Amount:    amount,
			Seats:     seats,
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		return tx.Packages().HoldSeats(ctx, packageID, seats)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.ReservationRegistered(ctx, res)
	return res, nil
}

func (s *service) Confirm(ctx context.Context, userID, reservationID string) error {
	if !models.ValidID(userID) || !models.ValidID(reservationID) {
		return domainerrors.ErrInvalidID
	}

	var confirmed *models.Reservation
	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		if _, err := tx.Users().GetByID(ctx, userID); err != nil {
			return err
		}
		res, err := tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.UserID != userID {
			return domainerrors.ErrReservationNotFound
		}
		if res.Confirmed {
			return domainerrors.ErrAlreadyConfirmed
		}
		if res.Canceled {
			return domainerrors.ErrAlreadyCanceled
		}
		pkg, err := tx.Packages().GetByID(ctx, res.PackageID)
		if err != nil {
			return err
		}
		if !upcoming(pkg.TourDate) {
			return domainerrors.ErrTourDatePassed
		}

		// The balance is re-checked here: the debit only succeeds when
		// the wallet still covers the amount earmarked at register time.
		if err := tx.Users().DebitWallet(ctx, userID, res.Amount); err != nil {
			return err
		}
		if err := tx.Reservations().MarkConfirmed(ctx, res.ID); err != nil {
			return err
		}
		debit := &models.Transaction{
			Type:          models.TransactionTypeDebit,
			Amount:        res.Amount,
			UserID:        &res.UserID,
			ReservationID: &res.ID,
		}
		if err := tx.Ledger().Append(ctx, debit); err != nil {
			return err
		}
		pendant := &models.Transaction{
			Type:          models.TransactionTypePendant,
			Amount:        res.Amount,
			DriverID:      &pkg.DriverID,
			ReservationID: &res.ID,
		}
		if err := tx.Ledger().Append(ctx, pendant); err != nil {
			return err
		}

		res.Confirmed = true
		confirmed = res
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.ReservationConfirmed(ctx, confirmed)
	return nil
}

func (s *service) Cancel(ctx context.Context, userID, reservationID string) error {
	if !models.ValidID(userID) || !models.ValidID(reservationID) {
		return domainerrors.ErrInvalidID
	}

	var canceled *models.Reservation
	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		if _, err := tx.Users().GetByID(ctx, userID); err != nil {
			return err
		}
		res, err := tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.UserID != userID {
			return domainerrors.ErrReservationNotFound
		}
		pkg, err := tx.Packages().GetByID(ctx, res.PackageID)
		if err != nil {
			return err
		}
		if pkg.IsFinalised {
			return domainerrors.ErrPackageFinalised
		}
		if res.Canceled {
			return domainerrors.ErrAlreadyCanceled
		}
		if !upcoming(pkg.TourDate) {
			return domainerrors.ErrTourDatePassed
		}

		if err := tx.Reservations().MarkCanceled(ctx, res.ID); err != nil {
			return err
		}
		if err := tx.Packages().ReleaseSeats(ctx, res.PackageID, res.Seats); err != nil {
			return err
		}
		// The amount is returned whether or not the reservation was
		// confirmed. For unconfirmed reservations this credits money
		// that was never debited; observed platform behavior, kept
		// pending product clarification.
		if err := tx.Users().CreditWallet(ctx, userID, res.Amount); err != nil {
			return err
		}
		reversal := &models.Transaction{
			Type:          models.TransactionTypeReversal,
			Amount:        res.Amount,
			UserID:        &res.UserID,
			ReservationID: &res.ID,
		}
		if err := tx.Ledger().Append(ctx, reversal); err != nil {
			return err
		}

		res.Confirmed = false
		res.Canceled = true
		canceled = res
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.ReservationCanceled(ctx, canceled)
	return nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	if !models.ValidID(userID) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Reservations().ListByUser(ctx, userID)
}

func (s *service) Entries(ctx context.Context, userID, reservationID string) ([]models.Transaction, error) {
	if !models.ValidID(userID) || !models.ValidID(reservationID) {
		return nil, domainerrors.ErrInvalidID
	}
	res, err := s.store.Reservations().GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, domainerrors.ErrReservationNotFound
	}
	return s.store.Ledger().ListByReservation(ctx, reservationID)
}

// upcoming reports whether the tour date is strictly in the future
// relative to the platform reference timezone.
func upcoming(tourDate time.Time) bool {
	return tourDate.After(time.Now().In(platformZone))
}
