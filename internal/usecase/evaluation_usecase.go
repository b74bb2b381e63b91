// Package usecase defines the application-level interfaces and DTOs.
package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// EvaluateRequest describes one evaluation run for a single user.
type EvaluateRequest struct {
	UserID    uuid.UUID
	Latitude  *float64 // Current coordinates; nil falls back to the user's last-known location.
	Longitude *float64
	// TriggerTypes optionally restricts the run to the named evaluator types.
	// Empty means all registered evaluators.
	TriggerTypes []string
}

// TriggeredItem is one delivered (non-duplicate) trigger in a summary.
type TriggeredItem struct {
	Type         string                      `json:"type"`
	Condition    entity.TriggerCondition     `json:"condition"`
	Category     entity.NotificationCategory `json:"category"`
	Title        string                      `json:"title"`
	Message      string                      `json:"message"`
	Priority     int                         `json:"priority"`
	LocationName string                      `json:"location_name,omitempty"`
	TriggeredAt  time.Time                   `json:"triggered_at"`
}

// EvaluationSummary is returned synchronously to the caller. A suppressed
// duplicate is indistinguishable from "nothing triggered" by design.
type EvaluationSummary struct {
	Triggered            bool            `json:"triggered"`
	Items                []TriggeredItem `json:"items"`
	EvaluatorsConsidered int             `json:"evaluators_considered"`
}

// EvaluationUsecase runs the enabled evaluators against a per-user context,
// applies duplicate suppression, records history and emits notification-intent
// events for delivered triggers.
type EvaluationUsecase interface {
	// EvaluateFirst runs evaluators in priority order and stops at the first
	// delivered trigger: at most one notification per request.
	EvaluateFirst(ctx context.Context, req EvaluateRequest) (*EvaluationSummary, error)

	// EvaluateAll runs every selected evaluator and accumulates all delivered
	// triggers. Used by batch paths.
	EvaluateAll(ctx context.Context, req EvaluateRequest) (*EvaluationSummary, error)
}
