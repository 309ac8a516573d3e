// Package middleware provides HTTP middleware components for the application.
// It includes authentication and role-based authorization middleware for the
// fiber web framework.
package middleware

import (
	"log"
	"strings"

	"passeio/internal/models"
	"passeio/internal/services/auth"
	"passeio/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware handles JWT token validation and account authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the account claims to the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler validates JWT tokens and adds claims to the request context.
// It checks for:
// - Presence of Authorization header with Bearer token
// - Valid JWT signature and expiration
// - Token version matching the account's current version
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	if err := m.authService.VerifyClaims(c.Context(), claims); err != nil {
		log.Printf("claims rejected for account %s: %v", claims.AccountID, err)
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals("claims", claims)
	c.Locals("accountID", claims.AccountID)
	return c.Next()
}

// RequireRole returns a middleware that only lets the given roles through.
// Admins pass every check.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok || claims == nil {
			return utils.Unauthorized(c, "unauthorized")
		}
		if claims.Role == models.RoleAdmin {
			return c.Next()
		}
		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "insufficient permissions")
	}
}

// AdminOnly restricts a route to admin accounts.
func AdminOnly(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims.Role != models.RoleAdmin {
		return utils.Forbidden(c, "insufficient permissions")
	}
	return c.Next()
}
