package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/billing"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Payment data"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCustomer godoc
// @Summary      List a customer's payments
// @Tags         payments
// @Produce      json
// @Param        customer_id  query  string  true  "Customer ID"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID := c.Query("customer_id")
	if customerID == "" {
		return badRequest(c, "VALIDATION", "customer_id is required")
	}
	out, err := h.uc.ListByCustomer(customerID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
