package handlers

import (
	"passeio/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	redisStatus := "connected"
	if repositories.CacheService == nil {
		redisStatus = "disabled"
	} else if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
		redisStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"database": "connected",
			"redis":    redisStatus,
		},
	})
}
