package trigger

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airQualityContext(fields map[string]any) *entity.EvaluationContext {
	return newTestContext(
		[]entity.InterestCategory{entity.InterestWeather},
		&cityHall,
		map[string]any{entity.SourceAirQuality: fields},
	)
}

func TestAirQualityEvaluator_AnyBadPollutantTriggers(t *testing.T) {
	ev := NewAirQualityEvaluator(DefaultAirQualityOptions())

	tests := []struct {
		name   string
		fields map[string]any
	}{
		{name: "pm10 bad", fields: map[string]any{"pm10Grade": "나쁨", "pm25Grade": "보통", "airIndexGrade": "보통"}},
		{name: "pm25 very bad", fields: map[string]any{"pm10Grade": "보통", "pm25Grade": "매우나쁨"}},
		{name: "composite index bad", fields: map[string]any{"airIndexGrade": "나쁨"}},
		{name: "english labels", fields: map[string]any{"pm10Grade": "Very Bad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ev.Evaluate(context.Background(), airQualityContext(tt.fields))

			require.NoError(t, err)
			require.True(t, result.Triggered)
			assert.Equal(t, entity.ConditionAirQualityBad, result.Condition)
			assert.Contains(t, result.Message, "마스크")
		})
	}
}

func TestAirQualityEvaluator_MessageEnumeratesPollutants(t *testing.T) {
	ev := NewAirQualityEvaluator(DefaultAirQualityOptions())
	fields := map[string]any{"pm10Grade": "나쁨", "pm25Grade": "매우나쁨", "airIndexGrade": "보통"}

	result, err := ev.Evaluate(context.Background(), airQualityContext(fields))

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Contains(t, result.Message, "미세먼지(PM10)")
	assert.Contains(t, result.Message, "초미세먼지(PM2.5)")
	assert.NotContains(t, result.Message, "통합대기지수")
}

func TestAirQualityEvaluator_AllModerate(t *testing.T) {
	ev := NewAirQualityEvaluator(DefaultAirQualityOptions())
	fields := map[string]any{"pm10Grade": "보통", "pm25Grade": "좋음", "airIndexGrade": "보통"}

	result, err := ev.Evaluate(context.Background(), airQualityContext(fields))

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestAirQualityEvaluator_MissingOrGarbledSource(t *testing.T) {
	ev := NewAirQualityEvaluator(DefaultAirQualityOptions())

	for name, snapshot := range map[string]map[string]any{
		"missing source": {},
		"garbled source": {entity.SourceAirQuality: []any{"not", "a", "map"}},
		"empty fields":   {entity.SourceAirQuality: map[string]any{}},
	} {
		t.Run(name, func(t *testing.T) {
			ec := newTestContext([]entity.InterestCategory{entity.InterestWeather}, &cityHall, snapshot)

			result, err := ev.Evaluate(context.Background(), ec)

			require.NoError(t, err)
			assert.False(t, result.Triggered)
		})
	}
}

func TestAirQualityEvaluator_RequiresWeatherInterest(t *testing.T) {
	ev := NewAirQualityEvaluator(DefaultAirQualityOptions())
	ec := newTestContext([]entity.InterestCategory{entity.InterestCulture}, &cityHall,
		map[string]any{entity.SourceAirQuality: map[string]any{"pm10Grade": "매우나쁨"}})

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}
