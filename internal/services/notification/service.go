// Package notification is the side-channel event port for reservation and
// settlement events. Delivery is fire-and-forget: implementations must never
// fail the financial operation that triggered them, so the interface has a
// no-error contract and the default implementation only logs.
package notification

import (
	"context"
	"log"

	"passeio/internal/models"

	"github.com/shopspring/decimal"
)

// Notifier receives domain events after the surrounding transaction has
// committed. Implementations must not block and must swallow their own
// failures.
type Notifier interface {
	ReservationRegistered(ctx context.Context, res *models.Reservation)
	ReservationConfirmed(ctx context.Context, res *models.Reservation)
	ReservationCanceled(ctx context.Context, res *models.Reservation)
	TourSettled(ctx context.Context, driverID, packageID string, payout decimal.Decimal)
}

type Service struct{}

func NewService() *Service { return &Service{} }

func (s *Service) ReservationRegistered(ctx context.Context, res *models.Reservation) {
	log.Printf("notify: reservation %s registered for package %s (%d seats)",
		res.ID, res.PackageID, res.Seats)
}

func (s *Service) ReservationConfirmed(ctx context.Context, res *models.Reservation) {
	log.Printf("notify: reservation %s confirmed, amount %s", res.ID, res.Amount)
}

func (s *Service) ReservationCanceled(ctx context.Context, res *models.Reservation) {
	log.Printf("notify: reservation %s canceled", res.ID)
}

func (s *Service) TourSettled(ctx context.Context, driverID, packageID string, payout decimal.Decimal) {
	log.Printf("notify: package %s settled, driver %s paid %s", packageID, driverID, payout)
}
