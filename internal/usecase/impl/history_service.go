package impl

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates the trigger-history query service.
func NewHistoryService(historyRepo repository.HistoryRepository) usecase.HistoryUsecase {
	return &historyService{historyRepo: historyRepo}
}

func (s *historyService) GetUserHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TriggerHistory, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	histories, err := s.historyRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query trigger history")
	}

	return histories, nil
}
