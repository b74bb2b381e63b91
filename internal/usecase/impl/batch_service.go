package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const defaultBatchWorkerCount = 8

type batchService struct {
	logger      *slog.Logger
	userRepo    repository.UserRepository
	evaluation  usecase.EvaluationUsecase
	workerCount int
	now         func() time.Time
}

// NewBatchService creates the batch fan-out service. workerCount bounds the
// number of users evaluated concurrently; values below 1 fall back to the
// default.
func NewBatchService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	evaluation usecase.EvaluationUsecase,
	workerCount int,
) usecase.BatchUsecase {
	if workerCount < 1 {
		workerCount = defaultBatchWorkerCount
	}

	return &batchService{
		logger:      logger,
		userRepo:    userRepo,
		evaluation:  evaluation,
		workerCount: workerCount,
		now:         time.Now,
	}
}

func (s *batchService) EvaluateAllUsers(ctx context.Context) (*usecase.BatchSummary, error) {
	users, err := s.userRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active users for batch evaluation")
	}

	return s.fanOut(ctx, users), nil
}

func (s *batchService) EvaluateUsersByInterest(ctx context.Context, interest entity.InterestCategory) (*usecase.BatchSummary, error) {
	users, err := s.userRepo.FindByInterest(ctx, interest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load users with interest %q", interest)
	}

	return s.fanOut(ctx, users), nil
}

// fanOut evaluates each user on a bounded worker pool. One user's failure is
// logged and counted without aborting the rest of the batch.
func (s *batchService) fanOut(ctx context.Context, users []*entity.User) *usecase.BatchSummary {
	started := s.now()

	var (
		failed    atomic.Int64
		delivered atomic.Int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workerCount)

	for _, user := range users {
		group.Go(func() error {
			summary, err := s.evaluation.EvaluateAll(groupCtx, usecase.EvaluateRequest{UserID: user.ID})
			if err != nil {
				s.logger.Error("batch evaluation failed for user",
					slog.String("user_id", user.ID.String()),
					slog.Any("error", err),
				)
				failed.Add(1)

				return nil
			}

			delivered.Add(int64(len(summary.Items)))

			return nil
		})
	}

	// Workers never return errors, so Wait only synchronizes.
	_ = group.Wait()

	summary := &usecase.BatchSummary{
		UsersEvaluated:    len(users),
		UsersFailed:       int(failed.Load()),
		TriggersDelivered: int(delivered.Load()),
		Duration:          s.now().Sub(started),
	}

	s.logger.Info("batch evaluation finished",
		slog.Int("users_evaluated", summary.UsersEvaluated),
		slog.Int("users_failed", summary.UsersFailed),
		slog.Int("triggers_delivered", summary.TriggersDelivered),
		slog.Duration("duration", summary.Duration),
	)

	return summary
}
