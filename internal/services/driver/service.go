// Package driver covers driver account registration and earnings reads.
package driver

import (
	"context"
	"log"

	domainerrors "passeio/internal/errors"
	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	License  string `json:"license"`
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.Driver, error)
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	// Earnings lists the driver's ledger entries. PENDANT entries are
	// escrowed amounts not yet paid out; CREDIT entries were settled.
	Earnings(ctx context.Context, driverID string, limit, offset int) ([]models.Transaction, error)
}

type service struct {
	store repositories.Store
}

func NewService(store repositories.Store) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{store: store}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.Driver, error) {
	v := validation.New()
	v.Registration(input.Name, input.Email, input.Phone, input.Password)
	v.Required("license", input.License)
	if !v.Valid() {
		return nil, domainerrors.Validation("INVALID_INPUT", validation.Flatten(v.Errors))
	}

	if _, err := s.store.Drivers().GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Validation("EMAIL_TAKEN", "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domainerrors.Internal("could not process registration")
	}

	driver := &models.Driver{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashed),
		License:  input.License,
	}
	if err := s.store.Drivers().Create(ctx, driver); err != nil {
		log.Printf("driver registration failed for %s: %v", input.Email, err)
		return nil, domainerrors.Internal("could not create account")
	}
	return driver, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	if !models.ValidID(id) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Drivers().GetByID(ctx, id)
}

func (s *service) Earnings(ctx context.Context, driverID string, limit, offset int) ([]models.Transaction, error) {
	if !models.ValidID(driverID) {
		return nil, domainerrors.ErrInvalidID
	}
	return s.store.Ledger().ListByDriver(ctx, driverID, limit, offset)
}
