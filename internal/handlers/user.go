package handlers

import (
	"passeio/internal/services/user"
	"passeio/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input user.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	created, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, created)
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	profile, err := h.userService.GetByID(c.Context(), claims.AccountID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, profile)
}

func (h *UserHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	profile, err := h.userService.GetByID(c.Context(), claims.AccountID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallet": profile.Wallet})
}

func (h *UserHandler) TopUp(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount    decimal.Decimal `json:"amount"`
		CardToken string          `json:"card_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.CardToken == "" {
		return utils.BadRequest(c, "card_token is required")
	}

	entry, err := h.userService.TopUp(c.Context(), claims.AccountID, input.CardToken, input.Amount)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"message":     "top up successful",
		"amount":      entry.Amount,
		"transaction": entry,
	})
}

func (h *UserHandler) GetLedger(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := utils.GetPagination(c, 1, 20)
	entries, err := h.userService.Ledger(c.Context(), claims.AccountID, p.Limit, p.Offset)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, utils.NewPaginatedResponse(entries, p))
}
