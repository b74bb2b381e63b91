package trigger

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureEvaluator_Thresholds(t *testing.T) {
	ev := NewTemperatureEvaluator(DefaultTemperatureOptions())

	tests := []struct {
		name    string
		reading any
		want    entity.TriggerCondition
	}{
		{name: "above high threshold", reading: "36.5", want: entity.ConditionTemperatureHigh},
		{name: "exactly high threshold", reading: 35.0, want: entity.ConditionTemperatureHigh},
		{name: "just below high threshold", reading: 34.9, want: ""},
		{name: "mild", reading: 20.0, want: ""},
		{name: "exactly low threshold", reading: 0.0, want: entity.ConditionTemperatureLow},
		{name: "below low threshold", reading: "-5.2", want: entity.ConditionTemperatureLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := weatherContext(map[string]any{"temperature": tt.reading})

			result, err := ev.Evaluate(context.Background(), ec)

			require.NoError(t, err)
			if tt.want == "" {
				assert.False(t, result.Triggered)

				return
			}
			assert.True(t, result.Triggered)
			assert.Equal(t, tt.want, result.Condition)
		})
	}
}

func TestTemperatureEvaluator_HighScenario(t *testing.T) {
	ev := NewTemperatureEvaluator(DefaultTemperatureOptions())
	ec := weatherContext(map[string]any{"temperature": "36.5"})

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionTemperatureHigh, result.Condition)
	assert.Equal(t, 10, result.Priority)
	assert.Equal(t, entity.CategoryWeather, result.Category)
	assert.Contains(t, result.Message, "36.5")
}

func TestTemperatureEvaluator_RequiresWeatherInterest(t *testing.T) {
	ev := NewTemperatureEvaluator(DefaultTemperatureOptions())
	ec := newTestContext(
		[]entity.InterestCategory{entity.InterestBike},
		&cityHall,
		map[string]any{entity.SourceCityWeather: map[string]any{"temperature": "40.0"}},
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestTemperatureEvaluator_MalformedData(t *testing.T) {
	ev := NewTemperatureEvaluator(DefaultTemperatureOptions())

	tests := []struct {
		name     string
		snapshot map[string]any
	}{
		{name: "missing weather source", snapshot: map[string]any{}},
		{name: "weather not a map", snapshot: map[string]any{entity.SourceCityWeather: "garbled"}},
		{name: "temperature missing", snapshot: map[string]any{entity.SourceCityWeather: map[string]any{}}},
		{name: "temperature not numeric", snapshot: map[string]any{entity.SourceCityWeather: map[string]any{"temperature": "N/A"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := newTestContext([]entity.InterestCategory{entity.InterestWeather}, &cityHall, tt.snapshot)

			result, err := ev.Evaluate(context.Background(), ec)

			require.NoError(t, err)
			assert.False(t, result.Triggered)
		})
	}
}

func TestTemperatureEvaluator_NeverBoth(t *testing.T) {
	// With sane thresholds a single reading can only ever match one tier.
	ev := NewTemperatureEvaluator(DefaultTemperatureOptions())

	for _, reading := range []float64{-20, 0, 17.5, 35, 50} {
		ec := weatherContext(map[string]any{"temperature": reading})

		result, err := ev.Evaluate(context.Background(), ec)

		require.NoError(t, err)
		if result.Triggered {
			assert.Contains(t,
				[]entity.TriggerCondition{entity.ConditionTemperatureHigh, entity.ConditionTemperatureLow},
				result.Condition,
			)
		}
	}
}
