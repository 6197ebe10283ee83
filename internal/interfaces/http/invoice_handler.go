package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Generate godoc
// @Summary      Generate an invoice from a customer's orders
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "Customer and period"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.Generate(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get invoice by ID
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "invoice not found")
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      List a customer's invoices
// @Tags         invoices
// @Produce      json
// @Param        customer_id  query  string  true   "Customer ID"
// @Param        limit        query  int     false  "Limit"   default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID := c.Query("customer_id")
	if customerID == "" {
		return badRequest(c, "VALIDATION", "customer_id is required")
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
	out, err := h.uc.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
