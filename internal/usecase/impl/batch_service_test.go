package impl

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"
	mockRepo "pulse/internal/mocks/repository"
	mockUsecase "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func batchUsers(n int) []*entity.User {
	users := make([]*entity.User, 0, n)
	for range n {
		users = append(users, &entity.User{ID: uuid.New(), Active: true})
	}

	return users
}

func TestBatchService_EvaluateAllUsers(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	evaluation := mockUsecase.NewMockEvaluationUsecase(t)
	service := NewBatchService(testLogger(), userRepo, evaluation, 4)

	ctx := context.Background()
	users := batchUsers(5)

	userRepo.EXPECT().FindActive(ctx).Return(users, nil)
	evaluation.EXPECT().
		EvaluateAll(mock.Anything, mock.AnythingOfType("usecase.EvaluateRequest")).
		Return(&usecase.EvaluationSummary{
			Triggered: true,
			Items:     []usecase.TriggeredItem{{Condition: entity.ConditionTemperatureHigh}},
		}, nil).
		Times(5)

	summary, err := service.EvaluateAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.UsersEvaluated)
	assert.Equal(t, 0, summary.UsersFailed)
	assert.Equal(t, 5, summary.TriggersDelivered)
}

func TestBatchService_EvaluateAllUsers_OneFailureDoesNotAbort(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	evaluation := mockUsecase.NewMockEvaluationUsecase(t)
	service := NewBatchService(testLogger(), userRepo, evaluation, 2)

	ctx := context.Background()
	users := batchUsers(3)
	failing := users[1].ID

	userRepo.EXPECT().FindActive(ctx).Return(users, nil)
	evaluation.EXPECT().
		EvaluateAll(mock.Anything, mock.AnythingOfType("usecase.EvaluateRequest")).
		RunAndReturn(func(_ context.Context, req usecase.EvaluateRequest) (*usecase.EvaluationSummary, error) {
			if req.UserID == failing {
				return nil, assert.AnError
			}

			return &usecase.EvaluationSummary{}, nil
		}).
		Times(3)

	summary, err := service.EvaluateAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.UsersEvaluated)
	assert.Equal(t, 1, summary.UsersFailed)
	assert.Equal(t, 0, summary.TriggersDelivered)
}

func TestBatchService_EvaluateUsersByInterest(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	evaluation := mockUsecase.NewMockEvaluationUsecase(t)
	service := NewBatchService(testLogger(), userRepo, evaluation, 4)

	ctx := context.Background()
	users := batchUsers(2)

	userRepo.EXPECT().FindByInterest(ctx, entity.InterestWeather).Return(users, nil)
	evaluation.EXPECT().
		EvaluateAll(mock.Anything, mock.AnythingOfType("usecase.EvaluateRequest")).
		Return(&usecase.EvaluationSummary{}, nil).
		Times(2)

	summary, err := service.EvaluateUsersByInterest(ctx, entity.InterestWeather)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.UsersEvaluated)
}

func TestBatchService_EvaluateAllUsers_RepositoryFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	evaluation := mockUsecase.NewMockEvaluationUsecase(t)
	service := NewBatchService(testLogger(), userRepo, evaluation, 4)

	ctx := context.Background()

	userRepo.EXPECT().FindActive(ctx).Return(nil, assert.AnError)

	summary, err := service.EvaluateAllUsers(ctx)
	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestBatchService_EvaluateAllUsers_NoUsers(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	evaluation := mockUsecase.NewMockEvaluationUsecase(t)
	service := NewBatchService(testLogger(), userRepo, evaluation, 0)

	ctx := context.Background()

	userRepo.EXPECT().FindActive(ctx).Return([]*entity.User{}, nil)

	summary, err := service.EvaluateAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.UsersEvaluated)
	assert.Equal(t, 0, summary.UsersFailed)
}
