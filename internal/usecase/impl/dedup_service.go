package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	// permanentThreshold marks a prevention duration as "suppress forever".
	permanentThreshold = 365 * 24 * time.Hour

	// locationProximityMeters is the fixed radius for location-based suppression.
	locationProximityMeters = 500.0
)

// DefaultSuppressionPolicies is the per-condition suppression table loaded at
// startup. Cultural events suppress permanently per event; bike stations per
// station within a short window; weather conditions per condition; congestion
// by proximity to where the user already got notified.
func DefaultSuppressionPolicies() map[entity.TriggerCondition]usecase.SuppressionPolicy {
	return map[entity.TriggerCondition]usecase.SuppressionPolicy{
		entity.ConditionTemperatureHigh:  {Mode: usecase.SuppressionCondition, PreventionDuration: 6 * time.Hour},
		entity.ConditionTemperatureLow:   {Mode: usecase.SuppressionCondition, PreventionDuration: 6 * time.Hour},
		entity.ConditionHeavyRainWarning: {Mode: usecase.SuppressionCondition, PreventionDuration: 3 * time.Hour},
		entity.ConditionHeavyRainWatch:   {Mode: usecase.SuppressionCondition, PreventionDuration: 3 * time.Hour},
		entity.ConditionAirQualityBad:    {Mode: usecase.SuppressionCondition, PreventionDuration: 12 * time.Hour},
		entity.ConditionBikeShortage: {
			Mode:               usecase.SuppressionIdentifier,
			IdentifierKey:      entity.MetadataKeyStationID,
			PreventionDuration: 2 * time.Hour,
		},
		entity.ConditionBikeSurplus: {
			Mode:               usecase.SuppressionIdentifier,
			IdentifierKey:      entity.MetadataKeyStationID,
			PreventionDuration: 2 * time.Hour,
		},
		entity.ConditionCongestion: {Mode: usecase.SuppressionLocation, PreventionDuration: 1 * time.Hour},
		entity.ConditionCultureToday: {
			Mode:               usecase.SuppressionIdentifier,
			IdentifierKey:      entity.MetadataKeyEventID,
			PreventionDuration: 10 * 365 * 24 * time.Hour, // permanent
		},
		entity.ConditionCultureSoon: {
			Mode:               usecase.SuppressionIdentifier,
			IdentifierKey:      entity.MetadataKeyEventID,
			PreventionDuration: 10 * 365 * 24 * time.Hour, // permanent
		},
	}
}

// SuppressionPoliciesFromConfig applies the configured per-condition overrides
// on top of the default table.
func SuppressionPoliciesFromConfig(cfg *config.DedupConfig) map[entity.TriggerCondition]usecase.SuppressionPolicy {
	policies := DefaultSuppressionPolicies()
	if cfg == nil {
		return policies
	}

	for _, override := range cfg.Policies {
		policies[entity.TriggerCondition(override.Condition)] = usecase.SuppressionPolicy{
			Mode:               usecase.SuppressionMode(override.Mode),
			IdentifierKey:      override.IdentifierKey,
			PreventionDuration: override.PreventionDuration,
		}
	}

	return policies
}

type dedupService struct {
	logger      *slog.Logger
	historyRepo repository.HistoryRepository
	policies    map[entity.TriggerCondition]usecase.SuppressionPolicy
	now         func() time.Time
}

// NewDedupService creates the duplicate-suppression service. A nil policy map
// selects the default table.
func NewDedupService(
	logger *slog.Logger,
	historyRepo repository.HistoryRepository,
	policies map[entity.TriggerCondition]usecase.SuppressionPolicy,
) usecase.DedupUsecase {
	if policies == nil {
		policies = DefaultSuppressionPolicies()
	}

	return &dedupService{
		logger:      logger,
		historyRepo: historyRepo,
		policies:    policies,
		now:         time.Now,
	}
}

// PolicyFor returns the configured policy for the condition; conditions
// without an entry are never suppressed.
func (s *dedupService) PolicyFor(condition entity.TriggerCondition) usecase.SuppressionPolicy {
	if policy, ok := s.policies[condition]; ok {
		return policy
	}

	return usecase.SuppressionPolicy{Mode: usecase.SuppressionNone}
}

// IsDuplicate checks the history read model per the condition's policy. Any
// lookup failure fails open: the trigger is treated as new and delivered.
func (s *dedupService) IsDuplicate(
	ctx context.Context,
	userID uuid.UUID,
	result *entity.TriggerResult,
	location *orb.Point,
) bool {
	policy := s.PolicyFor(result.Condition)

	duplicate, err := s.check(ctx, userID, result, location, policy)
	if err != nil {
		s.logger.Warn("duplicate check failed, failing open",
			slog.String("user_id", userID.String()),
			slog.String("condition", string(result.Condition)),
			slog.Any("error", err),
		)

		return false
	}

	return duplicate
}

func (s *dedupService) check(
	ctx context.Context,
	userID uuid.UUID,
	result *entity.TriggerResult,
	location *orb.Point,
	policy usecase.SuppressionPolicy,
) (bool, error) {
	since := s.now().Add(-policy.PreventionDuration)

	switch policy.Mode {
	case usecase.SuppressionIdentifier:
		identifier, ok := result.Metadata[policy.IdentifierKey]
		if !ok || identifier == "" {
			// No identifier to match on; treat as new.
			return false, nil
		}
		if policy.PreventionDuration >= permanentThreshold {
			return s.historyRepo.ExistsEver(ctx, userID, result.Condition, identifier)
		}

		return s.historyRepo.ExistsSince(ctx, userID, result.Condition, identifier, since)

	case usecase.SuppressionLocation:
		if location == nil {
			return false, nil
		}

		return s.historyRepo.ExistsNearSince(ctx, userID, result.Condition, *location, locationProximityMeters, since)

	case usecase.SuppressionCondition:
		return s.historyRepo.ExistsConditionSince(ctx, userID, result.Condition, since)

	default:
		return false, nil
	}
}
