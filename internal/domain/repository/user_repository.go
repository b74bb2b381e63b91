// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read model for users and their declared interests.
// Account management lives in an external service; evaluation only reads.
type UserRepository interface {
	// FindByID retrieves a user with declared interests and last-known location.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindActive retrieves all active users, for population-wide batch evaluation.
	FindActive(ctx context.Context) ([]*entity.User, error)

	// FindByInterest retrieves active users that declared the given interest.
	FindByInterest(ctx context.Context, interest entity.InterestCategory) ([]*entity.User, error)
}
