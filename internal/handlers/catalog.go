package handlers

import (
	"passeio/internal/services/catalog"
	"passeio/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) CreateCar(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input catalog.CarInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	car, err := h.catalogService.CreateCar(c.Context(), claims.AccountID, input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, car)
}

func (h *CatalogHandler) ListCars(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	cars, err := h.catalogService.ListCars(c.Context(), claims.AccountID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, cars)
}

func (h *CatalogHandler) CreatePoint(c *fiber.Ctx) error {
	var input catalog.PointInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	point, err := h.catalogService.CreatePoint(c.Context(), input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, point)
}

func (h *CatalogHandler) ListPoints(c *fiber.Ctx) error {
	points, err := h.catalogService.ListPoints(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, points)
}

func (h *CatalogHandler) CreatePackage(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input catalog.PackageInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	pkg, err := h.catalogService.CreatePackage(c.Context(), claims.AccountID, input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, pkg)
}

func (h *CatalogHandler) GetPackage(c *fiber.Ctx) error {
	pkg, err := h.catalogService.GetPackage(c.Context(), c.Params("id"))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, pkg)
}

func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 1, 20)
	pkgs, err := h.catalogService.ListPackages(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, utils.NewPaginatedResponse(pkgs, p))
}

func (h *CatalogHandler) ListDriverPackages(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	pkgs, err := h.catalogService.ListDriverPackages(c.Context(), claims.AccountID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, pkgs)
}
