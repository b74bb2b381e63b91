package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// SuppressionMode selects how repeats of a condition are detected.
type SuppressionMode string

const (
	// SuppressionNone never suppresses.
	SuppressionNone SuppressionMode = "NONE"
	// SuppressionIdentifier suppresses repeats of the same policy-selected
	// unique identifier (e.g. the same bike station or cultural event).
	SuppressionIdentifier SuppressionMode = "IDENTIFIER"
	// SuppressionLocation suppresses repeats near the user's current location.
	SuppressionLocation SuppressionMode = "LOCATION"
	// SuppressionCondition suppresses any repeat of the condition.
	SuppressionCondition SuppressionMode = "CONDITION"
)

// SuppressionPolicy is the per-condition duplicate-suppression configuration.
// A prevention duration of a year or more denotes permanent suppression.
type SuppressionPolicy struct {
	Mode               SuppressionMode
	IdentifierKey      string // Metadata key holding the unique identifier, for SuppressionIdentifier.
	PreventionDuration time.Duration
}

// DedupUsecase decides whether a freshly triggered condition is a repeat the
// user already saw. Check failures fail open: delivery wins over
// over-suppression.
type DedupUsecase interface {
	// IsDuplicate reports whether the trigger should be withheld.
	IsDuplicate(ctx context.Context, userID uuid.UUID, result *entity.TriggerResult, location *orb.Point) bool

	// PolicyFor returns the suppression policy configured for the condition.
	PolicyFor(condition entity.TriggerCondition) SuppressionPolicy
}
