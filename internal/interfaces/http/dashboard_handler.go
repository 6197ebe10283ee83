package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/analytics"
)

// DashboardHandler handles HTTP requests for the business dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Day/month sales summary, dues and top products
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
