package reservation

import (
	"context"
	"testing"
	"time"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userID    = "aaaaaaaaaaaaaaaaaaaaaaaa"
	otherID   = "abababababababababababab"
	driverID  = "bbbbbbbbbbbbbbbbbbbbbbbb"
	packageID = "cccccccccccccccccccccccc"
)

type recorder struct {
	registered int
	confirmed  int
	canceled   int
}

func (r *recorder) ReservationRegistered(ctx context.Context, res *models.Reservation) {
	r.registered++
}
func (r *recorder) ReservationConfirmed(ctx context.Context, res *models.Reservation) {
	r.confirmed++
}
func (r *recorder) ReservationCanceled(ctx context.Context, res *models.Reservation) {
	r.canceled++
}
func (r *recorder) TourSettled(ctx context.Context, driverID, packageID string, payout decimal.Decimal) {
}

func newFixture(t *testing.T) (*memory.Store, *recorder, Service) {
	t.Helper()
	store := memory.NewStore()
	store.UsersByID[userID] = &models.User{
		ID:     userID,
		Name:   "Joana",
		Email:  "joana@example.com",
		Wallet: decimal.RequireFromString("100.00"),
	}
	store.DriversByID[driverID] = &models.Driver{
		ID:    driverID,
		Name:  "Carlos",
		Email: "carlos@example.com",
	}
	store.PackagesByID[packageID] = &models.TourPackage{
		ID:             packageID,
		DriverID:       driverID,
		Price:          decimal.RequireFromString("20.00"),
		SeatsAvailable: 5,
		Vacancies:      5,
		TourDate:       time.Now().Add(48 * time.Hour),
	}
	rec := &recorder{}
	return store, rec, NewService(store, rec)
}

func register(t *testing.T, svc Service, seats int, amount string) *models.Reservation {
	t.Helper()
	res, err := svc.Register(context.Background(), userID, packageID, seats, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return res
}

func TestRegisterHoldsSeatsWithoutTouchingWallet(t *testing.T) {
	store, rec, svc := newFixture(t)

	res := register(t, svc, 2, "40.00")

	assert.True(t, models.ValidID(res.ID))
	assert.False(t, res.Confirmed)
	assert.False(t, res.Canceled)
	assert.Equal(t, 3, store.PackagesByID[packageID].Vacancies)
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("100.00")))
	assert.Empty(t, store.Entries)
	assert.Equal(t, 1, rec.registered)
}

func TestRegisterRejectsMalformedIDs(t *testing.T) {
	_, _, svc := newFixture(t)

	_, err := svc.Register(context.Background(), "not-an-id", packageID, 1, decimal.RequireFromString("20.00"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.True(t, domainerrors.IsValidation(err))

	_, err = svc.Register(context.Background(), userID, "123", 1, decimal.RequireFromString("20.00"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestRegisterRejectsNonPositiveSeatsAndAmount(t *testing.T) {
	_, _, svc := newFixture(t)

	_, err := svc.Register(context.Background(), userID, packageID, 0, decimal.RequireFromString("20.00"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSeats)

	_, err = svc.Register(context.Background(), userID, packageID, 1, decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestRegisterUnknownPackage(t *testing.T) {
	_, _, svc := newFixture(t)

	_, err := svc.Register(context.Background(), userID, otherID, 1, decimal.RequireFromString("20.00"))
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestRegisterMoreSeatsThanVacancies(t *testing.T) {
	store, _, svc := newFixture(t)

	_, err := svc.Register(context.Background(), userID, packageID, 6, decimal.RequireFromString("120.00"))
	assert.ErrorIs(t, err, domainerrors.ErrNoVacancies)
	assert.Equal(t, 5, store.PackagesByID[packageID].Vacancies)
}

func TestRegisterFullyBookedPackage(t *testing.T) {
	store, _, svc := newFixture(t)
	store.PackagesByID[packageID].Vacancies = 0

	_, err := svc.Register(context.Background(), userID, packageID, 1, decimal.RequireFromString("20.00"))
	assert.ErrorIs(t, err, domainerrors.ErrNoVacancies)
}

func TestRegisterInsufficientBalanceLeavesSeatsAlone(t *testing.T) {
	store, _, svc := newFixture(t)

	_, err := svc.Register(context.Background(), userID, packageID, 5, decimal.RequireFromString("100.01"))
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
	assert.Equal(t, 5, store.PackagesByID[packageID].Vacancies)
	assert.Empty(t, store.ReservationsByID)
}

func TestConfirmDebitsWalletAndEscrowsDriverPayout(t *testing.T) {
	store, rec, svc := newFixture(t)
	res := register(t, svc, 2, "40.00")

	require.NoError(t, svc.Confirm(context.Background(), userID, res.ID))

	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, store.ReservationsByID[res.ID].Confirmed)

	require.Len(t, store.Entries, 2)
	debit, pendant := store.Entries[0], store.Entries[1]
	assert.Equal(t, models.TransactionTypeDebit, debit.Type)
	require.NotNil(t, debit.UserID)
	assert.Equal(t, userID, *debit.UserID)
	assert.True(t, debit.Amount.Equal(res.Amount))

	assert.Equal(t, models.TransactionTypePendant, pendant.Type)
	require.NotNil(t, pendant.DriverID)
	assert.Equal(t, driverID, *pendant.DriverID)
	assert.True(t, pendant.Amount.Equal(res.Amount))

	// The escrow entry must not credit the driver's wallet yet.
	assert.True(t, store.DriversByID[driverID].Wallet.IsZero())
	assert.Equal(t, 1, rec.confirmed)
}

func TestConfirmIsNotIdempotent(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")

	require.NoError(t, svc.Confirm(context.Background(), userID, res.ID))
	err := svc.Confirm(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyConfirmed)

	// One debit, one ledger pair.
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("80.00")))
	assert.Len(t, store.Entries, 2)
}

func TestConfirmRechecksBalance(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")
	store.UsersByID[userID].Wallet = decimal.RequireFromString("5.00")

	err := svc.Confirm(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
	assert.False(t, store.ReservationsByID[res.ID].Confirmed)
	assert.Empty(t, store.Entries)
}

func TestConfirmAfterTourDate(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")
	store.PackagesByID[packageID].TourDate = time.Now().Add(-time.Hour)

	err := svc.Confirm(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTourDatePassed)
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("100.00")))
}

func TestConfirmSomeoneElsesReservation(t *testing.T) {
	store, _, svc := newFixture(t)
	store.UsersByID[otherID] = &models.User{ID: otherID, Wallet: decimal.RequireFromString("50.00")}
	res := register(t, svc, 1, "20.00")

	err := svc.Confirm(context.Background(), otherID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
}

func TestCancelUnconfirmedReturnsSeatsAndCreditsWallet(t *testing.T) {
	store, rec, svc := newFixture(t)
	res := register(t, svc, 2, "40.00")

	require.NoError(t, svc.Cancel(context.Background(), userID, res.ID))

	assert.Equal(t, 5, store.PackagesByID[packageID].Vacancies)
	assert.True(t, store.ReservationsByID[res.ID].Canceled)
	assert.False(t, store.ReservationsByID[res.ID].Confirmed)
	// The amount is credited even though it was never debited.
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("140.00")))

	require.Len(t, store.Entries, 1)
	assert.Equal(t, models.TransactionTypeReversal, store.Entries[0].Type)
	assert.Equal(t, 1, rec.canceled)
}

func TestCancelConfirmedRestoresWallet(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 2, "40.00")
	require.NoError(t, svc.Confirm(context.Background(), userID, res.ID))

	require.NoError(t, svc.Cancel(context.Background(), userID, res.ID))

	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 5, store.PackagesByID[packageID].Vacancies)

	// Cancel appends, it never rewrites history.
	require.Len(t, store.Entries, 3)
	assert.Equal(t, models.TransactionTypeDebit, store.Entries[0].Type)
	assert.Equal(t, models.TransactionTypePendant, store.Entries[1].Type)
	assert.Equal(t, models.TransactionTypeReversal, store.Entries[2].Type)
}

func TestCancelTwice(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")

	require.NoError(t, svc.Cancel(context.Background(), userID, res.ID))
	err := svc.Cancel(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCanceled)

	// Credited exactly once.
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("120.00")))
	assert.Len(t, store.Entries, 1)
}

func TestCancelFinalisedPackage(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")
	store.PackagesByID[packageID].IsFinalised = true

	err := svc.Cancel(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPackageFinalised)
	assert.False(t, store.ReservationsByID[res.ID].Canceled)
}

func TestCancelAfterTourDate(t *testing.T) {
	store, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")
	store.PackagesByID[packageID].TourDate = time.Now().Add(-time.Hour)

	err := svc.Cancel(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTourDatePassed)
}

func TestConfirmAfterCancel(t *testing.T) {
	_, _, svc := newFixture(t)
	res := register(t, svc, 1, "20.00")
	require.NoError(t, svc.Cancel(context.Background(), userID, res.ID))

	err := svc.Confirm(context.Background(), userID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCanceled)
}

func TestLastSeatGoesToOneUserOnly(t *testing.T) {
	store, _, svc := newFixture(t)
	store.PackagesByID[packageID].Vacancies = 1
	store.UsersByID[otherID] = &models.User{ID: otherID, Wallet: decimal.RequireFromString("50.00")}

	_, err := svc.Register(context.Background(), userID, packageID, 1, decimal.RequireFromString("20.00"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), otherID, packageID, 1, decimal.RequireFromString("20.00"))
	assert.ErrorIs(t, err, domainerrors.ErrNoVacancies)
	assert.Equal(t, 0, store.PackagesByID[packageID].Vacancies)
}

func TestEntriesAreOwnerOnly(t *testing.T) {
	store, _, svc := newFixture(t)
	store.UsersByID[otherID] = &models.User{ID: otherID, Wallet: decimal.RequireFromString("50.00")}
	res := register(t, svc, 1, "20.00")
	require.NoError(t, svc.Confirm(context.Background(), userID, res.ID))

	entries, err := svc.Entries(context.Background(), userID, res.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = svc.Entries(context.Background(), otherID, res.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
}

func TestListByUser(t *testing.T) {
	_, _, svc := newFixture(t)
	first := register(t, svc, 1, "20.00")
	second := register(t, svc, 2, "40.00")

	list, err := svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}
