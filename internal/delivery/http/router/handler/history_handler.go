package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HistoryHandler holds dependencies for the trigger history endpoint.
type HistoryHandler struct {
	uc     usecase.HistoryUsecase
	logger *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler, injected by Fx.
func NewHistoryHandler(uc usecase.HistoryUsecase, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetUserHistory returns a user's delivered triggers, newest first.
// Supports limit and offset query parameters; out-of-range values are clamped.
func (h *HistoryHandler) GetUserHistory(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a valid UUID")
	}

	limit, ok := queryInt(c, "limit")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "offset must be an integer")
	}

	items, err := h.uc.GetUserHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "History retrieved")
}

// queryInt parses an optional integer query parameter. A missing parameter
// yields zero, which the usecase replaces with its defaults.
func queryInt(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return value, true
}
