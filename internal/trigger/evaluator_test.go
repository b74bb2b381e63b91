package trigger

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEvaluators() []Evaluator {
	return []Evaluator{
		NewCulturalEventEvaluator(DefaultCulturalEventOptions()),
		NewTemperatureEvaluator(DefaultTemperatureOptions()),
		NewCongestionEvaluator(DefaultCongestionOptions()),
		NewHeavyRainEvaluator(DefaultHeavyRainOptions()),
		NewBikeShareEvaluator(DefaultBikeShareOptions()),
		NewAirQualityEvaluator(DefaultAirQualityOptions()),
	}
}

func evaluatorTypes(evaluators []Evaluator) []string {
	types := make([]string, len(evaluators))
	for i, ev := range evaluators {
		types[i] = ev.Type()
	}

	return types
}

func TestSortByPriority(t *testing.T) {
	sorted := SortByPriority(defaultEvaluators())

	assert.Equal(t, []string{
		TypeHeavyRain,
		TypeTemperature,
		TypeAirQuality,
		TypeBikeShare,
		TypeCongestion,
		TypeCulturalEvent,
	}, evaluatorTypes(sorted))
}

func TestSortByPriority_DoesNotMutateInput(t *testing.T) {
	input := defaultEvaluators()
	first := input[0].Type()

	SortByPriority(input)

	assert.Equal(t, first, input[0].Type())
}

func TestFilterEnabled(t *testing.T) {
	disabled := NewTemperatureEvaluator(TemperatureOptions{HighThreshold: 35, LowThreshold: 0, Enabled: false})
	enabled := NewHeavyRainEvaluator(DefaultHeavyRainOptions())

	filtered := FilterEnabled([]Evaluator{disabled, enabled})

	require.Len(t, filtered, 1)
	assert.Equal(t, TypeHeavyRain, filtered[0].Type())
}

func TestRegistry_All(t *testing.T) {
	registry := NewRegistry(defaultEvaluators()...)

	all := registry.All()

	require.Len(t, all, 6)
	assert.Equal(t, TypeHeavyRain, all[0].Type())
	assert.Equal(t, 6, registry.Size())
}

func TestRegistry_Subset(t *testing.T) {
	registry := NewRegistry(defaultEvaluators()...)

	subset := registry.Subset([]string{TypeBikeShare, TypeTemperature, "unknownType"})

	assert.Equal(t, []string{TypeTemperature, TypeBikeShare}, evaluatorTypes(subset))
}

func TestRegistry_SubsetEmpty(t *testing.T) {
	registry := NewRegistry(defaultEvaluators()...)

	assert.Empty(t, registry.Subset(nil))
}

// fullSnapshotContext builds a context in which every evaluator has
// qualifying data: hot weather, heavy rain, bad air, a shortage station,
// a crowded area and a same-day event. The congestion interest is omitted
// because the congestion evaluator skips users who declare it.
func fullSnapshotContext() *entity.EvaluationContext {
	return newTestContext(
		[]entity.InterestCategory{entity.InterestWeather, entity.InterestBike, entity.InterestCulture},
		&cityHall,
		map[string]any{
			entity.SourceCityWeather: map[string]any{
				"temperature":     "36.5",
				"rainfallPerHour": "42.0",
			},
			entity.SourceAirQuality: map[string]any{
				"pm10Grade": "매우나쁨",
			},
			entity.SourceBikeShare:     []any{nearbyStation("ST-001", "A", 1, 10)},
			entity.SourcePopulation:    []any{gangnamRecord("매우혼잡")},
			entity.SourceCulturalEvent: []any{eventRecord("EV-1", "재즈 페스티벌", dateOffset(0), "무료")},
		},
	)
}

func TestEvaluators_SameContextTwiceYieldsIdenticalResults(t *testing.T) {
	registry := NewRegistry(defaultEvaluators()...)
	ec := fullSnapshotContext()

	for _, ev := range registry.All() {
		t.Run(ev.Type(), func(t *testing.T) {
			first, err := ev.Evaluate(context.Background(), ec)
			require.NoError(t, err)

			second, err := ev.Evaluate(context.Background(), ec)
			require.NoError(t, err)

			require.True(t, first.Triggered)
			assert.Equal(t, first, second)
		})
	}
}
