package handlers

import (
	"passeio/internal/repositories"
	"passeio/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// AdminHandler exposes platform configuration, currently just the tax rate
// applied at tour settlement.
type AdminHandler struct {
	store repositories.Store
}

func NewAdminHandler(store repositories.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

func (h *AdminHandler) GetTax(c *fiber.Ctx) error {
	tax, err := h.store.Settings().Tax(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to read tax rate")
	}
	return utils.Success(c, fiber.Map{"tax": tax})
}

func (h *AdminHandler) SetTax(c *fiber.Ctx) error {
	var input struct {
		Tax decimal.Decimal `json:"tax"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Tax.IsNegative() || input.Tax.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return utils.BadRequest(c, "tax must be between 0 and 1")
	}

	if err := h.store.Settings().SetTax(c.Context(), input.Tax); err != nil {
		return utils.InternalError(c, "failed to update tax rate")
	}
	return utils.Success(c, fiber.Map{"tax": input.Tax})
}

func (h *AdminHandler) ListTransactions(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 1, 50)
	entries, err := h.store.Ledger().List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "failed to list transactions")
	}
	return utils.Success(c, utils.NewPaginatedResponse(entries, p))
}
