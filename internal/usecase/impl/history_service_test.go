package impl

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"
	mockRepo "pulse/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_GetUserHistory(t *testing.T) {
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	service := NewHistoryService(historyRepo)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.TriggerHistory{
		{ID: uuid.New(), UserID: userID, Condition: entity.ConditionTemperatureHigh},
	}

	historyRepo.EXPECT().FindByUser(ctx, userID, 10, 0).Return(expected, nil)

	histories, err := service.GetUserHistory(ctx, userID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, histories)
}

func TestHistoryService_GetUserHistory_ClampsPaging(t *testing.T) {
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	service := NewHistoryService(historyRepo)

	ctx := context.Background()
	userID := uuid.New()

	historyRepo.EXPECT().FindByUser(ctx, userID, defaultHistoryLimit, 0).
		Return([]*entity.TriggerHistory{}, nil)
	historyRepo.EXPECT().FindByUser(ctx, userID, maxHistoryLimit, 0).
		Return([]*entity.TriggerHistory{}, nil)

	_, err := service.GetUserHistory(ctx, userID, 0, -3)
	require.NoError(t, err)

	_, err = service.GetUserHistory(ctx, userID, 10_000, 0)
	require.NoError(t, err)
}

func TestHistoryService_GetUserHistory_RepositoryFailure(t *testing.T) {
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	service := NewHistoryService(historyRepo)

	ctx := context.Background()
	userID := uuid.New()

	historyRepo.EXPECT().FindByUser(ctx, userID, 10, 0).Return(nil, assert.AnError)

	histories, err := service.GetUserHistory(ctx, userID, 10, 0)
	require.Error(t, err)
	assert.Nil(t, histories)
}
