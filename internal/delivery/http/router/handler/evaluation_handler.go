// Package handler contains the HTTP handlers for the evaluation API.
package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EvaluateInput is the request body for on-demand evaluation.
type EvaluateInput struct {
	UserID       string   `json:"userId" validate:"required,uuid"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	TriggerTypes []string `json:"triggerTypes,omitempty"`
}

// EvaluationHandler holds dependencies for the on-demand evaluation endpoint.
type EvaluationHandler struct {
	uc     usecase.EvaluationUsecase
	logger *slog.Logger
}

// NewEvaluationHandler is the constructor for EvaluationHandler, injected by Fx.
func NewEvaluationHandler(uc usecase.EvaluationUsecase, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Evaluate runs the trigger evaluators for one user and returns the summary.
// At most one notification is delivered per request.
func (h *EvaluationHandler) Evaluate(c echo.Context) error {
	var input EvaluateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid evaluation request")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	// Coordinates are all-or-nothing: a lone latitude is meaningless.
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return response.BadRequest(c, "INVALID_INPUT", "latitude and longitude must be provided together")
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "userId must be a valid UUID")
	}

	summary, err := h.uc.EvaluateFirst(c.Request().Context(), usecase.EvaluateRequest{
		UserID:       userID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		TriggerTypes: input.TriggerTypes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Evaluation completed")
}
