package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/pricing"
)

// RateHandler handles HTTP requests for rate overrides and rate resolution.
type RateHandler struct {
	uc *pricing.UseCase
}

// NewRateHandler builds the handler.
func NewRateHandler(uc *pricing.UseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Set godoc
// @Summary      Set a customer or supplier rate override
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetRateOverrideRequest  true  "Override data"
// @Success      201   {object}  dto.RateOverrideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Set(c *fiber.Ctx) error {
	var in dto.SetRateOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.SetOverride(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListForEntity godoc
// @Summary      List one entity's rate overrides
// @Tags         rates
// @Produce      json
// @Param        kind  path  string  true  "customer or supplier"
// @Param        id    path  string  true  "Entity ID"
// @Success      200   {array}  dto.RateOverrideResponse
// @Router       /api/rates/{kind}/{id} [get]
func (h *RateHandler) ListForEntity(c *fiber.Ctx) error {
	kind := c.Params("kind")
	id := c.Params("id")
	if kind == "" || id == "" {
		return badRequest(c, "VALIDATION", "kind and id are required")
	}
	out, err := h.uc.ListForEntity(kind, id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolve the effective rate for an entity and product
// @Tags         rates
// @Produce      json
// @Param        entity_kind  query  string  true  "customer or supplier"
// @Param        entity_id    query  string  true  "Entity ID"
// @Param        product_id   query  string  true  "Product ID"
// @Success      200  {object}  dto.ResolvedRateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/resolve [get]
func (h *RateHandler) Resolve(c *fiber.Ctx) error {
	entityKind := c.Query("entity_kind")
	entityID := c.Query("entity_id")
	productID := c.Query("product_id")
	if entityKind == "" || entityID == "" || productID == "" {
		return badRequest(c, "VALIDATION", "entity_kind, entity_id and product_id are required")
	}
	out, err := h.uc.ResolveRate(entityKind, entityID, productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Deactivate a rate override
// @Tags         rates
// @Param        id  path  string  true  "Override ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [delete]
func (h *RateHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	if err := h.uc.Deactivate(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
