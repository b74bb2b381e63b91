package impl

import (
	"context"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var dedupNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func newDedupService(t *testing.T) (*dedupService, *mockRepo.MockHistoryRepository) {
	t.Helper()

	historyRepo := mockRepo.NewMockHistoryRepository(t)
	service := NewDedupService(testLogger(), historyRepo, nil).(*dedupService)
	service.now = func() time.Time { return dedupNow }

	return service, historyRepo
}

func TestDedupService_PolicyFor_UnknownConditionNeverSuppresses(t *testing.T) {
	service, _ := newDedupService(t)

	policy := service.PolicyFor(entity.TriggerCondition("SOMETHING_ELSE"))
	assert.Equal(t, usecase.SuppressionNone, policy.Mode)

	result := entity.NewTriggerResult(entity.TriggerCondition("SOMETHING_ELSE"), "t", "m")
	assert.False(t, service.IsDuplicate(context.Background(), uuid.New(), result, nil))
}

func TestDedupService_ConditionMode_QueriesWindow(t *testing.T) {
	service, historyRepo := newDedupService(t)

	ctx := context.Background()
	userID := uuid.New()
	result := entity.NewTriggerResult(entity.ConditionTemperatureHigh, "폭염 알림", "m")

	historyRepo.EXPECT().
		ExistsConditionSince(ctx, userID, entity.ConditionTemperatureHigh, dedupNow.Add(-6*time.Hour)).
		Return(true, nil)

	assert.True(t, service.IsDuplicate(ctx, userID, result, nil))
}

func TestDedupService_IdentifierMode_MatchesPerStation(t *testing.T) {
	service, historyRepo := newDedupService(t)

	ctx := context.Background()
	userID := uuid.New()
	result := entity.NewTriggerResult(entity.ConditionBikeShortage, "따릉이 부족", "m").
		WithMetadata(entity.MetadataKeyStationID, "ST-042")

	historyRepo.EXPECT().
		ExistsSince(ctx, userID, entity.ConditionBikeShortage, "ST-042", dedupNow.Add(-2*time.Hour)).
		Return(false, nil)

	assert.False(t, service.IsDuplicate(ctx, userID, result, nil))
}

func TestDedupService_IdentifierMode_MissingIdentifierIsNew(t *testing.T) {
	service, _ := newDedupService(t)

	result := entity.NewTriggerResult(entity.ConditionBikeShortage, "따릉이 부족", "m")

	// No station identifier to match on: no repository call, not a duplicate.
	assert.False(t, service.IsDuplicate(context.Background(), uuid.New(), result, nil))
}

func TestDedupService_CulturalEvent_SuppressedPermanently(t *testing.T) {
	service, historyRepo := newDedupService(t)

	ctx := context.Background()
	userID := uuid.New()
	result := entity.NewTriggerResult(entity.ConditionCultureToday, "문화행사", "m").
		WithMetadata(entity.MetadataKeyEventID, "EVT-777")

	// A year-plus prevention duration checks all history, regardless of age.
	historyRepo.EXPECT().
		ExistsEver(ctx, userID, entity.ConditionCultureToday, "EVT-777").
		Return(true, nil)

	assert.True(t, service.IsDuplicate(ctx, userID, result, nil))
}

func TestDedupService_LocationMode_ChecksProximity(t *testing.T) {
	service, historyRepo := newDedupService(t)

	ctx := context.Background()
	userID := uuid.New()
	location := orb.Point{126.9780, 37.5665}
	result := entity.NewTriggerResult(entity.ConditionCongestion, "혼잡 알림", "m")

	historyRepo.EXPECT().
		ExistsNearSince(ctx, userID, entity.ConditionCongestion, location, 500.0, dedupNow.Add(-time.Hour)).
		Return(true, nil)

	assert.True(t, service.IsDuplicate(ctx, userID, result, &location))
}

func TestDedupService_LocationMode_NilLocationIsNew(t *testing.T) {
	service, _ := newDedupService(t)

	result := entity.NewTriggerResult(entity.ConditionCongestion, "혼잡 알림", "m")

	assert.False(t, service.IsDuplicate(context.Background(), uuid.New(), result, nil))
}

func TestDedupService_CheckFailureFailsOpen(t *testing.T) {
	service, historyRepo := newDedupService(t)

	ctx := context.Background()
	userID := uuid.New()
	result := entity.NewTriggerResult(entity.ConditionTemperatureHigh, "폭염 알림", "m")

	historyRepo.EXPECT().
		ExistsConditionSince(ctx, userID, entity.ConditionTemperatureHigh, mock.AnythingOfType("time.Time")).
		Return(false, assert.AnError)

	// Suppression-store failure must not withhold the notification.
	assert.False(t, service.IsDuplicate(ctx, userID, result, nil))
}

func TestSuppressionPoliciesFromConfig_AppliesOverrides(t *testing.T) {
	cfg := &config.DedupConfig{
		Policies: []config.DedupPolicyConfig{
			{
				Condition:          string(entity.ConditionCongestion),
				Mode:               string(usecase.SuppressionCondition),
				PreventionDuration: 30 * time.Minute,
			},
		},
	}

	policies := SuppressionPoliciesFromConfig(cfg)

	assert.Equal(t, usecase.SuppressionCondition, policies[entity.ConditionCongestion].Mode)
	assert.Equal(t, 30*time.Minute, policies[entity.ConditionCongestion].PreventionDuration)
	// Untouched conditions keep their defaults.
	assert.Equal(t, usecase.SuppressionIdentifier, policies[entity.ConditionBikeShortage].Mode)
}

func TestDefaultSuppressionPolicies_CoverEveryCondition(t *testing.T) {
	policies := DefaultSuppressionPolicies()

	conditions := []entity.TriggerCondition{
		entity.ConditionTemperatureHigh,
		entity.ConditionTemperatureLow,
		entity.ConditionHeavyRainWarning,
		entity.ConditionHeavyRainWatch,
		entity.ConditionAirQualityBad,
		entity.ConditionBikeShortage,
		entity.ConditionBikeSurplus,
		entity.ConditionCongestion,
		entity.ConditionCultureToday,
		entity.ConditionCultureSoon,
	}
	for _, condition := range conditions {
		policy, ok := policies[condition]
		assert.True(t, ok, "missing policy for %s", condition)
		assert.NotEqual(t, usecase.SuppressionNone, policy.Mode, "policy for %s", condition)
	}

	assert.GreaterOrEqual(t, policies[entity.ConditionCultureToday].PreventionDuration, permanentThreshold)
	assert.GreaterOrEqual(t, policies[entity.ConditionCultureSoon].PreventionDuration, permanentThreshold)
}
