package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/messaging"
)

// MessageHandler handles HTTP requests for composed customer messages.
type MessageHandler struct {
	uc *messaging.UseCase
}

// NewMessageHandler builds the handler.
func NewMessageHandler(uc *messaging.UseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// PaymentReminder godoc
// @Summary      Compose a payment reminder for a customer
// @Tags         messages
// @Produce      json
// @Param        id       path   string  true   "Customer ID"
// @Param        channel  query  string  false  "sms or whatsapp"  default(sms)
// @Success      200  {object}  dto.ComposedMessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Nothing outstanding"
// @Router       /api/messages/customers/{id}/reminder [get]
func (h *MessageHandler) PaymentReminder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	channel := c.Query("channel", messaging.ChannelSMS)
	out, err := h.uc.PaymentReminder(id, channel)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Compose an account statement for a customer
// @Tags         messages
// @Produce      json
// @Param        id       path   string  true   "Customer ID"
// @Param        channel  query  string  false  "sms or whatsapp"  default(sms)
// @Success      200  {object}  dto.ComposedMessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/messages/customers/{id}/statement [get]
func (h *MessageHandler) Statement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	channel := c.Query("channel", messaging.ChannelSMS)
	out, err := h.uc.Statement(id, channel)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
