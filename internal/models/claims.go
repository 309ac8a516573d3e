package models

import "github.com/golang-jwt/jwt/v5"

// Account roles
const (
	RoleUser   = "user"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

type UserClaims struct {
	jwt.RegisteredClaims
	AccountID    string `json:"account_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

// IsDriver reports whether the claims belong to a driver account.
func (c *UserClaims) IsDriver() bool {
	return c.Role == RoleDriver
}
