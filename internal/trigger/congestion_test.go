package trigger

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gangnamRecord(level string) map[string]any {
	return map[string]any{
		"areaName":          "강남역",
		"congestionLevel":   level,
		"congestionMessage": "인파가 몰려 있어요.",
		"populationMin":     "48000",
		"populationMax":     "52000",
		"latitude":          37.5665,
		"longitude":         126.9814, // ~300m from city hall
	}
}

func congestionContext(interests []entity.InterestCategory, records ...any) *entity.EvaluationContext {
	return newTestContext(interests, &cityHall, map[string]any{entity.SourcePopulation: records})
}

func TestCongestionEvaluator_CrowdedScenario(t *testing.T) {
	ev := NewCongestionEvaluator(DefaultCongestionOptions())
	ec := congestionContext(nil, gangnamRecord("매우혼잡"))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionCongestion, result.Condition)
	assert.Contains(t, result.Message, "강남역")
	assert.Contains(t, result.Message, "48000~52000")
	assert.Contains(t, result.Message, "인파가 몰려 있어요.")
	assert.Equal(t, "강남역", result.Metadata[entity.MetadataKeyAreaName])
}

func TestCongestionEvaluator_RelaxedLevels(t *testing.T) {
	ev := NewCongestionEvaluator(DefaultCongestionOptions())

	for _, level := range []string{"여유", "보통"} {
		result, err := ev.Evaluate(context.Background(), congestionContext(nil, gangnamRecord(level)))

		require.NoError(t, err)
		assert.False(t, result.Triggered, "level %s must not trigger", level)
	}
}

// The interest gate is inverted on purpose: declaring the congestion interest
// suppresses the evaluator. Pins the behavior observed in production.
func TestCongestionEvaluator_InterestSuppresses(t *testing.T) {
	ev := NewCongestionEvaluator(DefaultCongestionOptions())
	ec := congestionContext([]entity.InterestCategory{entity.InterestCongestion}, gangnamRecord("매우혼잡"))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestCongestionEvaluator_NoLocationNeverTriggers(t *testing.T) {
	ev := NewCongestionEvaluator(DefaultCongestionOptions())
	ec := newTestContext(nil, nil, map[string]any{entity.SourcePopulation: []any{gangnamRecord("붐빔")}})

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestCongestionEvaluator_OutsideRadiusIgnored(t *testing.T) {
	ev := NewCongestionEvaluator(DefaultCongestionOptions())
	record := gangnamRecord("매우혼잡")
	record["latitude"] = 37.6100 // ~4.8 km away

	result, err := ev.Evaluate(context.Background(), congestionContext(nil, record))

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestCongestionEvaluator_MalformedRecordsSkipped(t *testing.T) {
	ev := NewCongestionEvaluator(DefaultCongestionOptions())
	ec := congestionContext(nil,
		42,
		map[string]any{"areaName": "좌표없음", "congestionLevel": "붐빔"},
		gangnamRecord("붐빔"),
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, "강남역", result.LocationName)
}
