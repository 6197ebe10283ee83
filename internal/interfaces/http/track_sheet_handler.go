package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/VeerDubey/milk-management-91-sub004/internal/application/dto"
	"github.com/VeerDubey/milk-management-91-sub004/internal/application/tracksheet"
)

// TrackSheetHandler handles HTTP requests for daily delivery track sheets.
type TrackSheetHandler struct {
	uc *tracksheet.UseCase
}

// NewTrackSheetHandler builds the handler.
func NewTrackSheetHandler(uc *tracksheet.UseCase) *TrackSheetHandler {
	return &TrackSheetHandler{uc: uc}
}

// Create godoc
// @Summary      Create a track sheet for a route and day
// @Tags         track-sheets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrackSheetRequest  true  "Sheet data (rates resolved server-side)"
// @Success      201   {object}  dto.TrackSheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/track-sheets [post]
func (h *TrackSheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrackSheetRequest
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
// @Summary      Get track sheet by ID
// @Tags         track-sheets
// @Produce      json
// @Param        id   path  string  true  "Sheet ID"
// @Success      200  {object}  dto.TrackSheetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/track-sheets/{id} [get]
func (h *TrackSheetHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "track sheet not found")
	}
	return c.JSON(out)
}

// ListByDate godoc
// @Summary      List one day's track sheets
// @Tags         track-sheets
// @Produce      json
// @Param        date  query  string  true  "Day (YYYY-MM-DD)"
// @Success      200   {array}  dto.TrackSheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/track-sheets [get]
func (h *TrackSheetHandler) ListByDate(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return badRequest(c, "VALIDATION", "date is required")
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
