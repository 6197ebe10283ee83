package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	appstock "github.com/VeerDubey/milk-management-91-sub004/internal/application/stock"
)

// StockHandler handles HTTP requests for the stock ledger: movements,
// adjustments, levels, FIFO costing and alerts.
type StockHandler struct {
	ledger *appstock.LedgerUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(ledger *appstock.LedgerUseCase) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// RecordMovement godoc
// @Summary      Record a stock movement
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movement data"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	id, err := h.ledger.RecordMovement(c.UserContext(), appstock.RecordMovementInput{
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		Date:         in.Date,
		Rate:         in.Rate,
		BatchNumber:  in.BatchNumber,
		ExpiryDate:   in.ExpiryDate,
		Reason:       in.Reason,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Adjust godoc
// @Summary      Record a manual stock adjustment
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Adjustment data"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/adjustments [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "invalid body")
	}
	id, err := h.ledger.Adjust(c.UserContext(), in.ProductID, in.Quantity, in.Reason)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Movements godoc
// @Summary      List a product's movements, newest first
// @Tags         stock
// @Produce      json
// @Param        id     path   string  true   "Product ID"
// @Param        limit  query  int     false  "Max rows (0 = all)"
// @Success      200    {array}  entity.StockMovement
// @Router       /api/stock/products/{id}/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	limit := c.QueryInt("limit", 0)
	out, err := h.ledger.ProductMovements(c.UserContext(), id, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Level godoc
// @Summary      Current stock balance of a product
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      200  {object}  dto.StockLevelResponse
// @Router       /api/stock/products/{id}/level [get]
func (h *StockHandler) Level(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	stock, err := h.ledger.CurrentStock(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.StockLevelResponse{ProductID: id, CurrentStock: stock})
}

// FIFOCost godoc
// @Summary      FIFO consumption cost for a quantity
// @Tags         stock
// @Produce      json
// @Param        id        path   string  true  "Product ID"
// @Param        quantity  query  string  true  "Quantity to cost"
// @Success      200       {object}  dto.FIFOCostResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/stock/products/{id}/fifo-cost [get]
func (h *StockHandler) FIFOCost(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	quantity, err := decimal.NewFromString(c.Query("quantity"))
	if err != nil {
		return badRequest(c, "VALIDATION", "quantity must be a number")
	}
	cost, err := h.ledger.FIFOCost(c.UserContext(), id, quantity)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.FIFOCostResponse{ProductID: id, Quantity: quantity, Cost: cost})
}

// Alerts godoc
// @Summary      Active stock alerts (last 7 days)
// @Tags         stock
// @Produce      json
// @Success      200  {array}  entity.StockAlert
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.ledger.ActiveAlerts(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ClearOldAlerts godoc
// @Summary      Delete alerts older than 30 days
// @Tags         stock
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/stock/alerts/old [delete]
func (h *StockHandler) ClearOldAlerts(c *fiber.Ctx) error {
	removed, err := h.ledger.ClearOldAlerts(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}
