// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"passeio/internal/handlers"
	"passeio/internal/middleware"
	"passeio/internal/models"
	"passeio/internal/repositories"
	"passeio/internal/services/auth"
	"passeio/internal/services/catalog"
	"passeio/internal/services/driver"
	"passeio/internal/services/gateway"
	"passeio/internal/services/notification"
	"passeio/internal/services/reservation"
	"passeio/internal/services/settlement"
	"passeio/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := repositories.NewStore(db)
	notifier := notification.NewService()
	charger := gateway.NewStripeGateway()

	authService := auth.NewService(store)
	userService := user.NewService(store, charger)
	driverService := driver.NewService(store)
	catalogService := catalog.NewService(store, repositories.CacheService)
	reservationService := reservation.NewService(store, notifier)
	settlementService := settlement.NewService(store, notifier)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	tourHandler := handlers.NewTourHandler(driverService, settlementService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	adminHandler := handlers.NewAdminHandler(store)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", userHandler.Register)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/drivers/register", tourHandler.RegisterDriver)
	api.Post("/drivers/login", authHandler.LoginDriver)
	api.Post("/refresh", authHandler.Refresh)
	api.Get("/health", handlers.HealthCheck)

	// Public catalog browsing
	api.Get("/packages", catalogHandler.ListPackages)
	api.Get("/packages/:id", catalogHandler.GetPackage)
	api.Get("/points", catalogHandler.ListPoints)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Passeio API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)

	setupUserRoutes(protected, userHandler, reservationHandler)
	setupDriverRoutes(protected, tourHandler, catalogHandler)
	setupAdminRoutes(app, authMiddleware, adminHandler, catalogHandler)
}

func setupUserRoutes(router fiber.Router, userHandler *handlers.UserHandler, reservationHandler *handlers.ReservationHandler) {
	userOnly := middleware.RequireRole(models.RoleUser)

	router.Get("/profile", userOnly, userHandler.GetProfile)

	wallet := router.Group("/wallet", userOnly)
	wallet.Get("/", userHandler.GetWallet)
	wallet.Post("/topup", userHandler.TopUp)
	wallet.Get("/transactions", userHandler.GetLedger)

	reservations := router.Group("/reservations", userOnly)
	reservations.Post("/", reservationHandler.Register)
	reservations.Get("/", reservationHandler.List)
	reservations.Post("/:id/confirm", reservationHandler.Confirm)
	reservations.Post("/:id/cancel", reservationHandler.Cancel)
	reservations.Get("/:id/transactions", reservationHandler.Entries)
}

func setupDriverRoutes(router fiber.Router, tourHandler *handlers.TourHandler, catalogHandler *handlers.CatalogHandler) {
	drivers := router.Group("/drivers", middleware.RequireRole(models.RoleDriver))

	drivers.Get("/profile", tourHandler.GetProfile)
	drivers.Get("/earnings", tourHandler.GetEarnings)

	drivers.Post("/cars", catalogHandler.CreateCar)
	drivers.Get("/cars", catalogHandler.ListCars)

	drivers.Post("/packages", catalogHandler.CreatePackage)
	drivers.Get("/packages", catalogHandler.ListDriverPackages)
	drivers.Post("/packages/:id/start", tourHandler.StartTour)
	drivers.Post("/packages/:id/end", tourHandler.EndTour)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, adminHandler *handlers.AdminHandler, catalogHandler *handlers.CatalogHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminOnly)

	admin.Get("/tax", adminHandler.GetTax)
	admin.Put("/tax", adminHandler.SetTax)
	admin.Get("/transactions", adminHandler.ListTransactions)
	admin.Post("/points", catalogHandler.CreatePoint)
}
