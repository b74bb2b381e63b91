package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// HistoryRepository is the append-only store of delivered triggers and the
// read model used by duplicate suppression. Records are never updated or
// deleted here; retention is an external concern.
type HistoryRepository interface {
	// Append persists a new trigger history record.
	Append(ctx context.Context, history *entity.TriggerHistory) error

	// ExistsEver reports whether any record exists for the
	// (user, condition, identifier) tuple, regardless of age.
	ExistsEver(ctx context.Context, userID uuid.UUID, condition entity.TriggerCondition, identifier string) (bool, error)

	// ExistsSince reports whether a record for the (user, condition, identifier)
	// tuple exists at or after the given instant.
	ExistsSince(ctx context.Context, userID uuid.UUID, condition entity.TriggerCondition, identifier string, since time.Time) (bool, error)

	// ExistsNearSince reports whether a record for the (user, condition) pair
	// exists within radiusMeters of the given point at or after the given instant.
	ExistsNearSince(ctx context.Context, userID uuid.UUID, condition entity.TriggerCondition, near orb.Point, radiusMeters float64, since time.Time) (bool, error)

	// ExistsConditionSince reports whether any record for the (user, condition)
	// pair exists at or after the given instant.
	ExistsConditionSince(ctx context.Context, userID uuid.UUID, condition entity.TriggerCondition, since time.Time) (bool, error)

	// FindByUser retrieves a user's trigger history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TriggerHistory, error)
}
