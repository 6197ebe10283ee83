package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/usecase"
)

// CustomerHandler handles HTTP requests for Customer, including the dues
// sub-resource.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	payments *billing.PaymentUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, payments *billing.PaymentUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, payments: payments}
}

// Create godoc
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Customer data"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get customer by ID
// @Tags         customers
// @Produce      json
// @Param        id   path  string  true  "Customer ID"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "customer not found")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        area    query  string  false  "Filter by delivery area"
// @Success      200     {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	if area := c.Query("area"); area != "" {
		out, err := h.uc.ListByArea(area)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Customer ID"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Fields to update"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "customer not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete customer
// @Tags         customers
// @Param        id  path  string  true  "Customer ID"
// @Success      204
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Dues godoc
// @Summary      Outstanding dues of a customer
// @Tags         customers
// @Produce      json
// @Param        id   path  string  true  "Customer ID"
// @Success      200  {object}  dto.CustomerDuesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/dues [get]
func (h *CustomerHandler) Dues(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	out, err := h.payments.OutstandingDues(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
