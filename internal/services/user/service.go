// Package user covers the passenger-facing account operations: registration,
// profile reads and wallet top-ups through the card gateway.
package user

import (
	"context"
	"log"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/services/gateway"
	"passeio/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// TopUp charges the card token and credits the wallet. The gateway
	// call happens before the transaction: a failed charge leaves the
	// wallet untouched, a failed credit after a successful charge is
	// logged for manual reconciliation.
	TopUp(ctx context.Context, userID, cardToken string, amount decimal.Decimal) (*models.Transaction, error)
	Ledger(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
}

type service struct {
	store   repositories.Store
	charger gateway.Charger
}

func NewService(store repositories.Store, charger gateway.Charger) Service {
	if store == nil {
		panic("store is required")
	}
	if charger == nil {
		panic("charger is required")
	}
	return &service{store: store, charger: charger}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	v := validation.New()
	v.Registration(input.Name, input.Email, input.Phone, input.Password)
	if !v.Valid() {
		return nil, domainerrors.Validation("INVALID_INPUT", validation.Flatten(v.Errors))
	}

	if _, err := s.store.Users().GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Validation("EMAIL_TAKEN", "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domainerrors.Internal("could not process registration")
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashed),
		Role:     models.RoleUser,
		Wallet:   decimal.Zero,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		log.Printf("user registration failed for %s: %v", input.Email, err)
		return nil, domainerrors.Internal("could not create account")
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*models.User, error) {
	if !models.ValidID(id) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Users().GetByID(ctx, id)
}

func (s *service) TopUp(ctx context.Context, userID, cardToken string, amount decimal.Decimal) (*models.Transaction, error) {
	if !models.ValidID(userID) {
		return nil, domainerrors.ErrInvalidID
	}
	v := validation.New()
	v.TopUp(amount.InexactFloat64())
	if !v.Valid() {
		return nil, domainerrors.ErrInvalidAmount
	}
	if _, err := s.store.Users().GetByID(ctx, userID); err != nil {
		return nil, err
	}

	chargeID, err := s.charger.Charge(ctx, cardToken, amount)
	if err != nil {
		log.Printf("top-up charge failed for user %s: %v", userID, err)
		return nil, domainerrors.Validation("CHARGE_FAILED", "card charge was declined")
	}

	entry := &models.Transaction{
		Type:      models.TransactionTypeCredit,
		Amount:    amount,
		UserID:    &userID,
		Reference: uuid.NewString(),
		Metadata: models.JSON{
			"provider":  "stripe",
			"charge_id": chargeID,
		},
	}
	err = s.store.Atomic(ctx, func(tx repositories.Store) error {
		if err := tx.Users().CreditWallet(ctx, userID, amount); err != nil {
			return err
		}
		return tx.Ledger().Append(ctx, entry)
	})
	if err != nil {
		log.Printf("top-up credit failed after charge %s for user %s: %v", chargeID, userID, err)
		return nil, domainerrors.Internal("top-up could not be completed")
	}
	return entry, nil
}

func (s *service) Ledger(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	if !models.ValidID(userID) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Ledger().ListByUser(ctx, userID, limit, offset)
}
