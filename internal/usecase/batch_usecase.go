package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
)

// BatchSummary accumulates the outcome of one population-wide evaluation run.
type BatchSummary struct {
	UsersEvaluated    int           `json:"users_evaluated"`
	UsersFailed       int           `json:"users_failed"`
	TriggersDelivered int           `json:"triggers_delivered"`
	Duration          time.Duration `json:"duration"`
}

// BatchUsecase fans an evaluation run out over a user population. Users are
// evaluated independently; one user's failure never aborts the rest.
type BatchUsecase interface {
	// EvaluateAllUsers evaluates every active user.
	EvaluateAllUsers(ctx context.Context) (*BatchSummary, error)

	// EvaluateUsersByInterest evaluates active users declaring the interest.
	EvaluateUsersByInterest(ctx context.Context, interest entity.InterestCategory) (*BatchSummary, error)
}
