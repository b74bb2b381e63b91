package trigger

import (
	"context"
	"fmt"
	"strings"

	"pulse/internal/domain/entity"
)

// badGrades are the categorical labels that count as notification-worthy.
var badGrades = map[string]struct{}{
	"나쁨":       {},
	"매우나쁨":     {},
	"bad":      {},
	"very bad": {},
}

// AirQualityOptions configures the air quality evaluator.
type AirQualityOptions struct {
	Enabled bool
}

// DefaultAirQualityOptions returns the production defaults.
func DefaultAirQualityOptions() AirQualityOptions {
	return AirQualityOptions{Enabled: true}
}

// AirQualityEvaluator flags bad categorical PM10/PM2.5/composite-index labels.
// Requires the weather interest; triggers when any of the three labels is bad.
type AirQualityEvaluator struct {
	opts AirQualityOptions
}

// NewAirQualityEvaluator creates an air quality evaluator.
func NewAirQualityEvaluator(opts AirQualityOptions) *AirQualityEvaluator {
	return &AirQualityEvaluator{opts: opts}
}

func (e *AirQualityEvaluator) Type() string { return TypeAirQuality }

func (e *AirQualityEvaluator) Priority() int { return entity.ConditionAirQualityBad.Priority() }

func (e *AirQualityEvaluator) Description() string {
	return "미세먼지/초미세먼지/통합대기지수 등급이 나쁨 이상이면 알림을 발생시킵니다"
}

func (e *AirQualityEvaluator) Enabled() bool { return e.opts.Enabled }

func (e *AirQualityEvaluator) Evaluate(_ context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error) {
	if !ec.HasInterest(entity.InterestWeather) {
		return entity.NotTriggered(), nil
	}

	air, ok := asMap(ec.Source(entity.SourceAirQuality))
	if !ok {
		return entity.NotTriggered(), nil
	}

	pollutants := []struct {
		display string
		keys    []string
	}{
		{display: "미세먼지(PM10)", keys: []string{"pm10Grade", "PM10_INDEX"}},
		{display: "초미세먼지(PM2.5)", keys: []string{"pm25Grade", "PM25_INDEX"}},
		{display: "통합대기지수", keys: []string{"airIndexGrade", "AIR_IDX"}},
	}

	var offenders []string
	for _, p := range pollutants {
		grade, ok := stringField(air, p.keys...)
		if !ok {
			continue
		}
		if _, bad := badGrades[strings.ToLower(grade)]; bad {
			offenders = append(offenders, fmt.Sprintf("%s '%s'", p.display, grade))
		}
	}

	if len(offenders) == 0 {
		return entity.NotTriggered(), nil
	}

	message := fmt.Sprintf("%s 등급입니다. 외출 시 마스크 착용을 권장합니다.", strings.Join(offenders, ", "))

	return entity.NewTriggerResult(entity.ConditionAirQualityBad, "대기질 알림", message), nil
}
