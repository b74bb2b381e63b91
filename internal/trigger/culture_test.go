package trigger

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRecord(id, title, startDate, isFree string) map[string]any {
	return map[string]any{
		"eventId":   id,
		"title":     title,
		"place":     "세종문화회관",
		"startDate": startDate,
		"isFree":    isFree,
		"latitude":  37.5665,
		"longitude": 126.9814,
	}
}

func cultureContext(events ...any) *entity.EvaluationContext {
	return newTestContext(
		[]entity.InterestCategory{entity.InterestCulture},
		&cityHall,
		map[string]any{entity.SourceCulturalEvent: events},
	)
}

func dateOffset(days int) string {
	return testEvaluatedAt.AddDate(0, 0, days).Format("2006-01-02")
}

func TestCulturalEventEvaluator_StartsToday(t *testing.T) {
	ev := NewCulturalEventEvaluator(DefaultCulturalEventOptions())
	ec := cultureContext(eventRecord("EV-1", "재즈 페스티벌", dateOffset(0), "무료"))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionCultureToday, result.Condition)
	assert.Contains(t, result.Message, "재즈 페스티벌")
	assert.Contains(t, result.Message, "(무료)")
	assert.Equal(t, "EV-1", result.Metadata[entity.MetadataKeyEventID])
}

func TestCulturalEventEvaluator_StartsSoon(t *testing.T) {
	ev := NewCulturalEventEvaluator(DefaultCulturalEventOptions())
	ec := cultureContext(eventRecord("EV-2", "사진전", dateOffset(5), "N"))

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionCultureSoon, result.Condition)
	assert.NotContains(t, result.Message, "(무료)")
}

func TestCulturalEventEvaluator_TodayWinsOverSoon(t *testing.T) {
	ev := NewCulturalEventEvaluator(DefaultCulturalEventOptions())
	ec := cultureContext(
		eventRecord("EV-2", "사진전", dateOffset(3), "N"),
		eventRecord("EV-1", "재즈 페스티벌", dateOffset(0), "N"),
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	require.True(t, result.Triggered)
	assert.Equal(t, entity.ConditionCultureToday, result.Condition)
	assert.Equal(t, "EV-1", result.Metadata[entity.MetadataKeyEventID])
}

func TestCulturalEventEvaluator_WindowBoundaries(t *testing.T) {
	ev := NewCulturalEventEvaluator(DefaultCulturalEventOptions())

	tests := []struct {
		name string
		days int
		want bool
	}{
		{name: "last day of window", days: 7, want: true},
		{name: "beyond window", days: 8, want: false},
		{name: "already started", days: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := cultureContext(eventRecord("EV-3", "연극", dateOffset(tt.days), "N"))

			result, err := ev.Evaluate(context.Background(), ec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Triggered)
		})
	}
}

func TestCulturalEventEvaluator_NoLocationNeverTriggers(t *testing.T) {
	ev := NewCulturalEventEvaluator(DefaultCulturalEventOptions())
	ec := newTestContext(
		[]entity.InterestCategory{entity.InterestCulture},
		nil,
		map[string]any{entity.SourceCulturalEvent: []any{eventRecord("EV-1", "재즈 페스티벌", dateOffset(0), "무료")}},
	)

	result, err := ev.Evaluate(context.Background(), ec)

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}

func TestCulturalEventEvaluator_MalformedDateSkipped(t *testing.T) {
	ev := NewCulturalEventEvaluator(DefaultCulturalEventOptions())
	bad := eventRecord("EV-4", "미정 행사", "soon™", "N")

	result, err := ev.Evaluate(context.Background(), cultureContext(bad))

	require.NoError(t, err)
	assert.False(t, result.Triggered)
}
