// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/trigger"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type evaluationService struct {
	logger      *slog.Logger
	registry    *trigger.Registry
	userRepo    repository.UserRepository
	historyRepo repository.HistoryRepository
	cityData    service.CityDataProvider
	dedup       usecase.DedupUsecase
	publisher   service.NotificationPublisher
	locks       *keyedMutex
	now         func() time.Time
}

// NewEvaluationService creates the evaluation orchestrator. The publisher is
// optional; without one, delivered triggers are recorded but no
// notification-intent event is emitted.
func NewEvaluationService(
	logger *slog.Logger,
	registry *trigger.Registry,
	userRepo repository.UserRepository,
	historyRepo repository.HistoryRepository,
	cityData service.CityDataProvider,
	dedup usecase.DedupUsecase,
	publisher service.NotificationPublisher,
) usecase.EvaluationUsecase {
	return &evaluationService{
		logger:      logger,
		registry:    registry,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		cityData:    cityData,
		dedup:       dedup,
		publisher:   publisher,
		locks:       newKeyedMutex(),
		now:         time.Now,
	}
}

// EvaluateFirst runs evaluators in priority order and stops at the first
// delivered trigger, so a single request yields at most one notification.
func (s *evaluationService) EvaluateFirst(ctx context.Context, req usecase.EvaluateRequest) (*usecase.EvaluationSummary, error) {
	return s.evaluate(ctx, req, true)
}

// EvaluateAll runs every selected evaluator and accumulates all delivered triggers.
func (s *evaluationService) EvaluateAll(ctx context.Context, req usecase.EvaluateRequest) (*usecase.EvaluationSummary, error) {
	return s.evaluate(ctx, req, false)
}

func (s *evaluationService) evaluate(ctx context.Context, req usecase.EvaluateRequest, firstOnly bool) (*usecase.EvaluationSummary, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(req.UserID.String())
		}

		return nil, errors.Wrap(err, "failed to load user for evaluation")
	}

	location := resolveLocation(req, user)
	snapshot := s.fetchSnapshot(ctx, user.ID, location)
	evalContext := entity.NewEvaluationContext(user.ID, user.Interests, location, snapshot, s.now())

	evaluators := s.selectEvaluators(req.TriggerTypes)
	summary := &usecase.EvaluationSummary{
		Items:                []usecase.TriggeredItem{},
		EvaluatorsConsidered: len(evaluators),
	}

	for _, ev := range evaluators {
		result, err := ev.Evaluate(ctx, evalContext)
		if err != nil {
			// A failed evaluator is "no trigger", never retried.
			s.logger.Warn("evaluator failed",
				slog.String("user_id", user.ID.String()),
				slog.String("evaluator", ev.Type()),
				slog.Any("error", err),
			)

			continue
		}
		if !result.Triggered {
			continue
		}

		delivered, err := s.deliver(ctx, user, result, location, evalContext.EvaluatedAt())
		if err != nil {
			return nil, err
		}
		if !delivered {
			// Suppressed duplicate: invisible to the caller by design.
			continue
		}

		summary.Triggered = true
		summary.Items = append(summary.Items, usecase.TriggeredItem{
			Type:         ev.Type(),
			Condition:    result.Condition,
			Category:     result.Category,
			Title:        result.Title,
			Message:      result.Message,
			Priority:     result.Priority,
			LocationName: result.LocationName,
			TriggeredAt:  evalContext.EvaluatedAt(),
		})

		if firstOnly {
			break
		}
	}

	return summary, nil
}

func (s *evaluationService) selectEvaluators(types []string) []trigger.Evaluator {
	if len(types) == 0 {
		return s.registry.All()
	}

	return s.registry.Subset(types)
}

// resolveLocation prefers the request coordinates and falls back to the user's
// last-known location. Nil disables all location-scoped evaluators.
func resolveLocation(req usecase.EvaluateRequest, user *entity.User) *orb.Point {
	if req.Latitude != nil && req.Longitude != nil {
		return &orb.Point{*req.Longitude, *req.Latitude}
	}
	if user.LastLatitude != nil && user.LastLongitude != nil {
		return &orb.Point{*user.LastLongitude, *user.LastLatitude}
	}

	return nil
}

// fetchSnapshot merges the public-data sources. Upstream failure degrades to
// an empty snapshot: evaluators then see "no data" and stay silent.
func (s *evaluationService) fetchSnapshot(ctx context.Context, userID uuid.UUID, location *orb.Point) map[string]any {
	var lat, lng float64
	if location != nil {
		lat, lng = location.Lat(), location.Lon()
	}

	snapshot, err := s.cityData.Snapshot(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("public data snapshot failed, evaluating without data",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return map[string]any{}
	}

	return snapshot
}

// deliver runs the duplicate check and, for a new trigger, appends history and
// emits the notification-intent event. The check-then-append window is
// serialized per (user, condition, identifier).
func (s *evaluationService) deliver(
	ctx context.Context,
	user *entity.User,
	result *entity.TriggerResult,
	location *orb.Point,
	triggeredAt time.Time,
) (bool, error) {
	identifier := s.identifierOf(result)

	unlock := s.locks.Lock(fmt.Sprintf("%s:%s:%s", user.ID, result.Condition, identifier))
	defer unlock()

	if s.dedup.IsDuplicate(ctx, user.ID, result, location) {
		return false, nil
	}

	history := &entity.TriggerHistory{
		ID:           uuid.New(),
		UserID:       user.ID,
		Condition:    result.Condition,
		Category:     result.Category,
		Title:        result.Title,
		Message:      result.Message,
		LocationName: result.LocationName,
		Priority:     result.Priority,
		Identifier:   identifier,
		Metadata:     result.Metadata,
		TriggeredAt:  triggeredAt,
	}
	if location != nil {
		lat, lng := location.Lat(), location.Lon()
		history.Latitude = &lat
		history.Longitude = &lng
	}

	// Losing the history write would lose suppression state, so it fails the
	// trigger; the notification is not considered delivered.
	if err := s.historyRepo.Append(ctx, history); err != nil {
		return false, domainerrors.ErrHistoryWriteFailed.WrapMessage(err.Error())
	}

	s.publishEvent(ctx, user, result, history)

	return true, nil
}

func (s *evaluationService) identifierOf(result *entity.TriggerResult) string {
	policy := s.dedup.PolicyFor(result.Condition)
	if policy.IdentifierKey == "" {
		return ""
	}

	return result.Metadata[policy.IdentifierKey]
}

// publishEvent emits the notification-intent event. History already exists at
// this point, so a publish failure is logged but the trigger stays delivered.
func (s *evaluationService) publishEvent(ctx context.Context, user *entity.User, result *entity.TriggerResult, history *entity.TriggerHistory) {
	if s.publisher == nil {
		return
	}

	event := &service.TriggerEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       user.ID.String(),
		Condition:    string(result.Condition),
		Category:     string(result.Category),
		Title:        result.Title,
		Message:      result.Message,
		LocationName: result.LocationName,
		Latitude:     history.Latitude,
		Longitude:    history.Longitude,
		Priority:     result.Priority,
		Metadata:     result.Metadata,
	}

	if err := s.publisher.PublishTriggerEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish trigger event",
			slog.String("user_id", user.ID.String()),
			slog.String("condition", string(result.Condition)),
			slog.Any("error", err),
		)
	}
}
