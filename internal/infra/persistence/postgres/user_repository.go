// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository read model using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindActive retrieves every active user for batch evaluation.
func (repo *userRepository) FindActive(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active users")
	}

	return toUserDomains(userMs), nil
}

// FindByInterest retrieves active users whose interests JSONB array contains
// the given category.
func (repo *userRepository) FindByInterest(ctx context.Context, interest entity.InterestCategory) ([]*entity.User, error) {
	needle, err := json.Marshal([]string{string(interest)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode interest filter")
	}

	var userMs []model.UserModel
	err = repo.db.WithContext(ctx).
		Where("active = ? AND interests @> ?", true, string(needle)).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find users by interest %q", interest)
	}

	return toUserDomains(userMs), nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	interests := make([]entity.InterestCategory, 0, len(userM.Interests))
	for _, interest := range userM.Interests {
		interests = append(interests, entity.InterestCategory(interest))
	}

	return &entity.User{
		ID:            userM.ID,
		Nickname:      userM.Nickname,
		Interests:     interests,
		LastLatitude:  userM.LastLatitude,
		LastLongitude: userM.LastLongitude,
		Active:        userM.Active,
		CreatedAt:     userM.CreatedAt,
		UpdatedAt:     userM.UpdatedAt,
	}
}

func toUserDomains(userMs []model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users
}
