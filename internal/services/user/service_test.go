package user

import (
	"context"
	"errors"
	"testing"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "aaaaaaaaaaaaaaaaaaaaaaaa"

type fakeCharger struct {
	chargeID string
	err      error
	calls    int
}

func (f *fakeCharger) Charge(ctx context.Context, cardToken string, amount decimal.Decimal) (string, error) {
	f.calls++
	return f.chargeID, f.err
}

func newFixture(t *testing.T, charger *fakeCharger) (*memory.Store, Service) {
	t.Helper()
	store := memory.NewStore()
	store.UsersByID[userID] = &models.User{
		ID:     userID,
		Name:   "Joana",
		Email:  "joana@example.com",
		Role:   models.RoleUser,
		Wallet: decimal.RequireFromString("10.00"),
	}
	return store, NewService(store, charger)
}

func TestRegisterCreatesAccountWithHashedPassword(t *testing.T) {
	store, svc := newFixture(t, &fakeCharger{})

	created, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Pedro",
		Email:    "pedro@example.com",
		Phone:    "+5511999990000",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	assert.True(t, models.ValidID(created.ID))
	assert.NotEqual(t, "Str0ng!pass", created.Password)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.True(t, created.Wallet.IsZero())
	assert.Contains(t, store.UsersByID, created.ID)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	_, svc := newFixture(t, &fakeCharger{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Pedro",
		Email:    "pedro@example.com",
		Phone:    "+5511999990000",
		Password: "short",
	})
	assert.True(t, domainerrors.IsValidation(err))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	_, svc := newFixture(t, &fakeCharger{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Joana Clone",
		Email:    "joana@example.com",
		Phone:    "+5511999990000",
		Password: "Str0ng!pass",
	})
	assert.True(t, domainerrors.IsValidation(err))
}

func TestTopUpCreditsWalletAndRecordsLedgerEntry(t *testing.T) {
	charger := &fakeCharger{chargeID: "ch_123"}
	store, svc := newFixture(t, charger)

	entry, err := svc.TopUp(context.Background(), userID, "tok_visa", decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	assert.Equal(t, 1, charger.calls)
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("60.00")))

	require.Len(t, store.Entries, 1)
	got := store.Entries[0]
	assert.Equal(t, models.TransactionTypeCredit, got.Type)
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)
	assert.NotEmpty(t, entry.Reference)
	assert.Equal(t, "ch_123", got.Metadata["charge_id"])
}

func TestTopUpDeclinedChargeLeavesWalletUntouched(t *testing.T) {
	charger := &fakeCharger{err: errors.New("card declined")}
	store, svc := newFixture(t, charger)

	_, err := svc.TopUp(context.Background(), userID, "tok_visa", decimal.RequireFromString("50.00"))
	assert.True(t, domainerrors.IsValidation(err))
	assert.True(t, store.UsersByID[userID].Wallet.Equal(decimal.RequireFromString("10.00")))
	assert.Empty(t, store.Entries)
}

func TestTopUpRejectsNonPositiveAmount(t *testing.T) {
	charger := &fakeCharger{}
	_, svc := newFixture(t, charger)

	_, err := svc.TopUp(context.Background(), userID, "tok_visa", decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	assert.Zero(t, charger.calls)
}
