package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/orders"
)

const dateLayout = "2006-01-02"

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Create order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Order data (rates resolved server-side)"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get order by ID
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "Order ID"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "order not found")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List orders by customer or by day
// @Tags         orders
// @Produce      json
// @Param        customer_id  query  string  false  "Customer ID (with optional from/to)"
// @Param        from         query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to           query  string  false  "End date (YYYY-MM-DD)"
// @Param        date         query  string  false  "Single day (YYYY-MM-DD)"
// @Success      200  {array}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	if customerID := c.Query("customer_id"); customerID != "" {
		from, err := parseDateQuery(c.Query("from"), time.Time{})
		if err != nil {
			return badRequest(c, "VALIDATION", "from must be YYYY-MM-DD")
		}
		to, err := parseDateQuery(c.Query("to"), time.Now())
		if err != nil {
			return badRequest(c, "VALIDATION", "to must be YYYY-MM-DD")
		}
		out, err := h.uc.ListByCustomer(customerID, from, to)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	}
	dateStr := c.Query("date")
	if dateStr == "" {
		return badRequest(c, "VALIDATION", "customer_id or date is required")
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return badRequest(c, "VALIDATION", "date must be YYYY-MM-DD")
	}
	out, err := h.uc.ListByDate(date)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Mark an order delivered or cancelled
// @Tags         orders
// @Accept       json
// @Param        id    path  string  true  "Order ID"
// @Param        body  body  object{status=string}  true  "delivered or cancelled"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	if err := h.uc.UpdateStatus(id, in.Status); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDateQuery parses an optional YYYY-MM-DD query value, returning def
// when empty.
func parseDateQuery(value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	return time.Parse(dateLayout, value)
}
