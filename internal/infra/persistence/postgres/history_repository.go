package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// historyRepository implements the repository.HistoryRepository interface using GORM.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

// Append persists a new trigger history record. The table is append-only:
// no update or delete paths exist here.
func (repo *historyRepository) Append(ctx context.Context, history *entity.TriggerHistory) error {
	historyM := fromHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrHistoryWriteFailed.WrapMessage("missing required history fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append trigger history")
	}

	history.ID = historyM.ID
	history.CreatedAt = historyM.CreatedAt

	return nil
}

// ExistsEver reports whether any record exists for the tuple, regardless of age.
func (repo *historyRepository) ExistsEver(
	ctx context.Context,
	userID uuid.UUID,
	condition entity.TriggerCondition,
	identifier string,
) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.TriggerHistoryModel{}).
		Where("user_id = ? AND condition = ? AND identifier = ?", userID, string(condition), identifier).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check trigger history existence")
	}

	return count > 0, nil
}

// ExistsSince reports whether a record for the tuple exists at or after the instant.
func (repo *historyRepository) ExistsSince(
	ctx context.Context,
	userID uuid.UUID,
	condition entity.TriggerCondition,
	identifier string,
	since time.Time,
) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.TriggerHistoryModel{}).
		Where("user_id = ? AND condition = ? AND identifier = ? AND triggered_at >= ?",
			userID, string(condition), identifier, since).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check trigger history window")
	}

	return count > 0, nil
}

// ExistsNearSince reports whether a record for the (user, condition) pair exists
// within radiusMeters of the point at or after the instant. Uses the PostGIS
// location column maintained by a database trigger.
func (repo *historyRepository) ExistsNearSince(
	ctx context.Context,
	userID uuid.UUID,
	condition entity.TriggerCondition,
	near orb.Point,
	radiusMeters float64,
	since time.Time,
) (bool, error) {
	var exists bool
	err := repo.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM trigger_histories
			WHERE user_id = ?
			  AND condition = ?
			  AND triggered_at >= ?
			  AND location IS NOT NULL
			  AND ST_DWithin(
				location::geography,
				ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
				?
			  )
		)`,
		userID, string(condition), since, near.Lon(), near.Lat(), radiusMeters,
	).Scan(&exists).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check trigger history proximity")
	}

	return exists, nil
}

// ExistsConditionSince reports whether any record for the (user, condition)
// pair exists at or after the instant.
func (repo *historyRepository) ExistsConditionSince(
	ctx context.Context,
	userID uuid.UUID,
	condition entity.TriggerCondition,
	since time.Time,
) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.TriggerHistoryModel{}).
		Where("user_id = ? AND condition = ? AND triggered_at >= ?", userID, string(condition), since).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check trigger history condition window")
	}

	return count > 0, nil
}

// FindByUser retrieves a user's trigger history, newest first.
func (repo *historyRepository) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*entity.TriggerHistory, error) {
	var historyMs []model.TriggerHistoryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("triggered_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&historyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trigger history by user")
	}

	histories := make([]*entity.TriggerHistory, 0, len(historyMs))
	for i := range historyMs {
		histories = append(histories, toHistoryDomain(&historyMs[i]))
	}

	return histories, nil
}

// fromHistoryDomain maps a pure domain entity to the GORM persistence model.
func fromHistoryDomain(history *entity.TriggerHistory) *model.TriggerHistoryModel {
	var metadata datatypes.JSONMap
	if len(history.Metadata) > 0 {
		metadata = make(datatypes.JSONMap, len(history.Metadata))
		for key, value := range history.Metadata {
			metadata[key] = value
		}
	}

	return &model.TriggerHistoryModel{
		ID:           history.ID,
		UserID:       history.UserID,
		Condition:    string(history.Condition),
		Category:     string(history.Category),
		Title:        history.Title,
		Message:      history.Message,
		LocationName: history.LocationName,
		Latitude:     history.Latitude,
		Longitude:    history.Longitude,
		Priority:     history.Priority,
		Identifier:   history.Identifier,
		Metadata:     metadata,
		TriggeredAt:  history.TriggeredAt,
	}
}

// toHistoryDomain maps the persistence model back to a pure domain entity.
func toHistoryDomain(historyM *model.TriggerHistoryModel) *entity.TriggerHistory {
	var metadata map[string]string
	if len(historyM.Metadata) > 0 {
		metadata = make(map[string]string, len(historyM.Metadata))
		for key, value := range historyM.Metadata {
			if s, ok := value.(string); ok {
				metadata[key] = s
			}
		}
	}

	return &entity.TriggerHistory{
		ID:           historyM.ID,
		UserID:       historyM.UserID,
		Condition:    entity.TriggerCondition(historyM.Condition),
		Category:     entity.NotificationCategory(historyM.Category),
		Title:        historyM.Title,
		Message:      historyM.Message,
		LocationName: historyM.LocationName,
		Latitude:     historyM.Latitude,
		Longitude:    historyM.Longitude,
		Priority:     historyM.Priority,
		Identifier:   historyM.Identifier,
		Metadata:     metadata,
		TriggeredAt:  historyM.TriggeredAt,
		CreatedAt:    historyM.CreatedAt,
	}
}
