package trigger

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// station ~300m east of city hall.
func nearbyStation(id, name string, bikes, racks any) map[string]any {
	return map[string]any{
		"stationId":      id,
		"stationName":    name,
		"latitude":       37.5665,
		"longitude":      126.9814,
		"availableBikes": bikes,
		"availableRacks": racks,
	}
}

func bikeContext(stations ...any) *entity.EvaluationContext {
	return newTestContext(
		[]entity.InterestCategory{entity.InterestBike},
		&cityHall,
		map[string]any{entity.SourceBikeShare: stations},
	)
}

func TestBikeShareEvaluator_ShortageScenario(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := bikeContext(nearbyStation("ST-001", "A", 1, 10))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionBikeShortage, result.Condition)
	assert.Equal(t, entity.CategoryBikeShare, result.Category)
	assert.Contains(t, result.Message, "A")
	assert.Equal(t, "ST-001", result.Metadata[entity.MetadataKeyStationID])
}

func TestBikeShareEvaluator_EmptyStationIsNotShortage(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := bikeContext(nearbyStation("ST-001", "A", 0, 10))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestBikeShareEvaluator_Surplus(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := bikeContext(nearbyStation("ST-002", "B", 15, "2"))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionBikeSurplus, result.Condition)
	assert.Equal(t, "ST-002", result.Metadata[entity.MetadataKeyStationID])
}

func TestBikeShareEvaluator_FullStationIsNotSurplus(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := bikeContext(nearbyStation("ST-002", "B", 15, 0))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestBikeShareEvaluator_ShortageBeforeSurplus(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := bikeContext(
		nearbyStation("ST-002", "B", 15, 1), // surplus candidate, listed first
		nearbyStation("ST-001", "A", 1, 10), // shortage candidate
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionBikeShortage, result.Condition)
	assert.Equal(t, "ST-001", result.Metadata[entity.MetadataKeyStationID])
}

func TestBikeShareEvaluator_OutsideRadiusIgnored(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	far := map[string]any{
		"stationId":      "ST-009",
		"stationName":    "Far",
		"latitude":       37.6100, // ~4.8 km north
		"longitude":      126.9780,
		"availableBikes": 1,
		"availableRacks": 1,
	}
	ec := bikeContext(far)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestBikeShareEvaluator_NoLocationNeverTriggers(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := newTestContext(
		[]entity.InterestCategory{entity.InterestBike},
		nil,
		map[string]any{entity.SourceBikeShare: []any{nearbyStation("ST-001", "A", 1, 10)}},
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestBikeShareEvaluator_RequiresBikeInterest(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := newTestContext(
		[]entity.InterestCategory{entity.InterestWeather},
		&cityHall,
		map[string]any{entity.SourceBikeShare: []any{nearbyStation("ST-001", "A", 1, 10)}},
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestBikeShareEvaluator_MalformedRecordsSkipped(t *testing.T) {
	ev := NewBikeShareEvaluator(DefaultBikeShareOptions())
	ec := bikeContext(
		"garbled",
		map[string]any{"stationId": "ST-003"}, // no coordinates
		nearbyStation("ST-001", "A", 2, 10),
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, "ST-001", result.Metadata[entity.MetadataKeyStationID])
}
