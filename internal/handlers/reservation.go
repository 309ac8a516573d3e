package handlers

import (
	"passeio/internal/services/reservation"
	"passeio/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ReservationHandler struct {
	reservationService reservation.Service
}

func NewReservationHandler(reservationService reservation.Service) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

func (h *ReservationHandler) Register(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		PackageID string          `json:"package_id"`
		Seats     int             `json:"seats"`
		Amount    decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	res, err := h.reservationService.Register(c.Context(), claims.AccountID, input.PackageID, input.Seats, input.Amount)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, res)
}

func (h *ReservationHandler) Confirm(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	if err := h.reservationService.Confirm(c.Context(), claims.AccountID, c.Params("id")); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "reservation confirmed"})
}

func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	if err := h.reservationService.Cancel(c.Context(), claims.AccountID, c.Params("id")); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "reservation canceled"})
}

func (h *ReservationHandler) Entries(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	entries, err := h.reservationService.Entries(c.Context(), claims.AccountID, c.Params("id"))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, entries)
}

func (h *ReservationHandler) List(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	list, err := h.reservationService.ListByUser(c.Context(), claims.AccountID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, list)
}
