package handlers

import (
	"passeio/internal/services/driver"
	"passeio/internal/services/settlement"
	"passeio/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// TourHandler exposes the driver-side tour lifecycle: account registration,
// starting and ending tours, and earnings.
type TourHandler struct {
	driverService     driver.Service
	settlementService settlement.Service
}

func NewTourHandler(driverService driver.Service, settlementService settlement.Service) *TourHandler {
	return &TourHandler{
		driverService:     driverService,
		settlementService: settlementService,
	}
}

func (h *TourHandler) RegisterDriver(c *fiber.Ctx) error {
	var input driver.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	created, err := h.driverService.Register(c.Context(), input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, created)
}

func (h *TourHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	profile, err := h.driverService.GetByID(c.Context(), claims.AccountID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, profile)
}

func (h *TourHandler) StartTour(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	if err := h.settlementService.Start(c.Context(), claims.AccountID, c.Params("id")); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "tour started"})
}

func (h *TourHandler) EndTour(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	if err := h.settlementService.End(c.Context(), claims.AccountID, c.Params("id")); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "tour ended and settled"})
}

func (h *TourHandler) GetEarnings(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := utils.GetPagination(c, 1, 20)
	entries, err := h.driverService.Earnings(c.Context(), claims.AccountID, p.Limit, p.Offset)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, utils.NewPaginatedResponse(entries, p))
}
