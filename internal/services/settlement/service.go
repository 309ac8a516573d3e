// Package settlement covers the driver side of a package's lifecycle.
// Starting a tour stamps the departure; ending it finalises the package,
// flips the escrowed PENDANT entries to CREDIT and pays the driver the
// credited total net of the platform tax.
package settlement

import (
	"context"
	"time"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/services/notification"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

type Service interface {
	// Start records the departure of a tour. Calling it again simply
	// refreshes the start date.
	Start(ctx context.Context, driverID, packageID string) error
	// End finalises the package and settles the escrow. The tax rate is
	// read at settlement time, not at confirmation time.
	End(ctx context.Context, driverID, packageID string) error
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

func (s *service) Start(ctx context.Context, driverID, packageID string) error {
	if !models.ValidID(driverID) || !models.ValidID(packageID) {
		return domainerrors.ErrInvalidID
	}

	return s.store.Atomic(ctx, func(tx repositories.Store) error {
		if _, err := tx.Drivers().GetByID(ctx, driverID); err != nil {
			return err
		}
		pkg, err := tx.Packages().GetByID(ctx, packageID)
		if err != nil {
			return err
		}
		if pkg.DriverID != driverID {
			return domainerrors.ErrPackageNotFound
		}
		if pkg.IsFinalised {
			return domainerrors.ErrPackageFinalised
		}
		return tx.Packages().MarkStarted(ctx, packageID, time.Now())
	})
}

func (s *service) End(ctx context.Context, driverID, packageID string) error {
	if !models.ValidID(driverID) || !models.ValidID(packageID) {
		return domainerrors.ErrInvalidID
	}

	var payout decimal.Decimal
	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		if _, err := tx.Drivers().GetByID(ctx, driverID); err != nil {
			return err
		}
		pkg, err := tx.Packages().GetByID(ctx, packageID)
		if err != nil {
			return err
		}
		if pkg.DriverID != driverID {
			return domainerrors.ErrPackageNotFound
		}
		if pkg.StartDate == nil {
			return domainerrors.ErrPackageNotStarted
		}

		// MarkFinalised is conditional on the package not already being
		// finalised, so a second End fails before touching the ledger.
		if err := tx.Packages().MarkFinalised(ctx, packageID, time.Now()); err != nil {
			return err
		}

		ids, err := tx.Reservations().IDsByPackage(ctx, packageID)
		if err != nil {
			return err
		}
		if err := tx.Ledger().SettlePending(ctx, ids); err != nil {
			return err
		}
		total, err := tx.Ledger().SumCredits(ctx, ids)
		if err != nil {
			return err
		}
		tax, err := tx.Settings().Tax(ctx)
		if err != nil {
			return err
		}

		payout = total.Mul(one.Sub(tax)).Round(2)
		return tx.Drivers().CreditWallet(ctx, driverID, payout)
	})
	if err != nil {
		return err
	}

	s.notifier.TourSettled(ctx, driverID, packageID, payout)
	return nil
}
