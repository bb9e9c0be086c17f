package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/noticeboard/internal/newsportal"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

type Handler struct {
	uc  *newsportal.Manager
	log *slog.Logger
}

func NewHandler(uc *newsportal.Manager, log *slog.Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: log,
	}
}

// handleError maps newsportal errors onto HTTP statuses. Anything unclassified is a 500.
func (h *Handler) handleError(c echo.Context, err error) error {
	var perr *newsportal.Error
	if !errors.As(err, &perr) {
		h.log.Error("handleError", "error", err, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: statusError, Message: internalErrorMessage})
	}

	statusCode := http.StatusBadRequest
	switch {
	case errors.Is(err, newsportal.ErrAuth):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, newsportal.ErrNotFound):
		statusCode = http.StatusNotFound
	}

	h.log.Warn("handleError", "error", err, "statusCode", statusCode, "path", c.Path())
	return c.JSON(statusCode, StatusResponse{Status: statusError, Message: perr.Message})
}

func (h *Handler) badRequest(c echo.Context, err error, message string) error {
	h.log.Warn("handleError", "error", err, "statusCode", http.StatusBadRequest, "path", c.Path())
	return c.JSON(http.StatusBadRequest, StatusResponse{Status: statusError, Message: message})
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
