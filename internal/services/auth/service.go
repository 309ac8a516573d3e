// Package auth issues and revokes the JWT pairs used by users, drivers and
// admins. Tokens embed a version number; bumping the stored version on
// logout invalidates every token issued before it.
package auth

import (
	"context"
	"errors"
	"log"

	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	LoginUser(ctx context.Context, email, password string) (*models.User, string, string, error)
	LoginDriver(ctx context.Context, email, password string) (*models.Driver, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, claims *models.UserClaims) error
	// VerifyClaims checks that the account behind the claims still exists
	// and that the token version is current.
	VerifyClaims(ctx context.Context, claims *models.UserClaims) error
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

func (s *service) LoginUser(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		log.Printf("login failed: no user account for %s", email)
		return nil, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: wrong password for user %s", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := utils.GenerateTokens(&models.UserClaims{
		AccountID:    user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		log.Println("error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}
	return user, access, refresh, nil
}

func (s *service) LoginDriver(ctx context.Context, email, password string) (*models.Driver, string, string, error) {
	driver, err := s.store.Drivers().GetByEmail(ctx, email)
	if err != nil {
		log.Printf("login failed: no driver account for %s", email)
		return nil, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(driver.Password), []byte(password)); err != nil {
		log.Printf("login failed: wrong password for driver %s", driver.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := utils.GenerateTokens(&models.UserClaims{
		AccountID:    driver.ID,
		Email:        driver.Email,
		Role:         models.RoleDriver,
		TokenVersion: driver.TokenVersion,
	})
	if err != nil {
		log.Println("error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}
	return driver, access, refresh, nil
}

func (s *service) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}
	if err := s.VerifyClaims(ctx, claims); err != nil {
		return "", "", err
	}
	return utils.GenerateTokens(claims)
}

func (s *service) Logout(ctx context.Context, claims *models.UserClaims) error {
	if claims.IsDriver() {
		return s.store.Drivers().IncrementTokenVersion(ctx, claims.AccountID)
	}
	return s.store.Users().IncrementTokenVersion(ctx, claims.AccountID)
}

func (s *service) VerifyClaims(ctx context.Context, claims *models.UserClaims) error {
	var current int
	if claims.IsDriver() {
		driver, err := s.store.Drivers().GetByID(ctx, claims.AccountID)
		if err != nil {
			return errors.New("account not found")
		}
		current = driver.TokenVersion
	} else {
		user, err := s.store.Users().GetByID(ctx, claims.AccountID)
		if err != nil {
			return errors.New("account not found")
		}
		current = user.TokenVersion
	}
	if claims.TokenVersion != current {
		return errors.New("session expired")
	}
	return nil
}
