package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryUsecase exposes the trigger history read model to the API layer.
type HistoryUsecase interface {
	// GetUserHistory retrieves a user's delivered triggers, newest first.
	GetUserHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TriggerHistory, error)
}
