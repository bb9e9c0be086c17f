package rest

import (
	"net/http"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/labstack/echo/v4"
)

// ReplaceSchedule handles POST /updateRaspored. It always answers 200 and reports the outcome in success.
// @Summary Replace schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body rest.ScheduleRequest true "Rows"
// @Success 200 {object} rest.SuccessResponse
// @Router /updateRaspored [post]
func (h *Handler) ReplaceSchedule(c echo.Context) error {
	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		h.log.Warn("invalid schedule payload", "error", err)
		return c.JSON(http.StatusOK, SuccessResponse{Success: false})
	}

	rows := make([]newsportal.ScheduleInput, len(req.Rows))
	for i := range req.Rows {
		rows[i] = req.Rows[i].ToModel()
	}

	if err := h.uc.ReplaceSchedule(c.Request().Context(), rows); err != nil {
		h.log.Error("failed to replace schedule", "error", err)
		return c.JSON(http.StatusOK, SuccessResponse{Success: false})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Schedule handles GET /getRaspored
// @Summary Get schedule
// @Tags schedule
// @Produce json
// @Success 200 {object} rest.ScheduleResponse
// @Router /getRaspored [get]
func (h *Handler) Schedule(c echo.Context) error {
	rows, err := h.uc.Schedule(c.Request().Context())
	if err != nil {
		h.log.Error("failed to load schedule", "error", err)
		return c.JSON(http.StatusOK, SuccessResponse{Success: false})
	}

	return c.JSON(http.StatusOK, ScheduleResponse{Rows: Map(rows, NewScheduleRow)})
}
