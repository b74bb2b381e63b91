package trigger

import (
	"context"
	"fmt"

	"pulse/internal/domain/entity"
)

// TemperatureOptions configures the temperature evaluator thresholds.
// Boundary comparisons are inclusive on both tiers.
type TemperatureOptions struct {
	HighThreshold float64 // Triggers TEMPERATURE_HIGH at or above. Default 35.0.
	LowThreshold  float64 // Triggers TEMPERATURE_LOW at or below. Default 0.0.
	Enabled       bool
}

// DefaultTemperatureOptions returns the production defaults.
func DefaultTemperatureOptions() TemperatureOptions {
	return TemperatureOptions{HighThreshold: 35.0, LowThreshold: 0.0, Enabled: true}
}

// TemperatureEvaluator flags safety-relevant heat and cold from the city
// weather snapshot. Requires the weather interest.
type TemperatureEvaluator struct {
	opts TemperatureOptions
}

// NewTemperatureEvaluator creates a temperature evaluator.
func NewTemperatureEvaluator(opts TemperatureOptions) *TemperatureEvaluator {
	return &TemperatureEvaluator{opts: opts}
}

func (e *TemperatureEvaluator) Type() string { return TypeTemperature }

func (e *TemperatureEvaluator) Priority() int { return entity.ConditionTemperatureHigh.Priority() }

func (e *TemperatureEvaluator) Description() string {
	return "기온이 임계값을 벗어나면 폭염/한파 알림을 발생시킵니다"
}

func (e *TemperatureEvaluator) Enabled() bool { return e.opts.Enabled }

func (e *TemperatureEvaluator) Evaluate(_ context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error) {
	if !ec.HasInterest(entity.InterestWeather) {
		return entity.NotTriggered(), nil
	}

	weather, ok := asMap(ec.Source(entity.SourceCityWeather))
	if !ok {
		return entity.NotTriggered(), nil
	}

	temp, ok := floatField(weather, "temperature", "TEMP")
	if !ok {
		return entity.NotTriggered(), nil
	}

	switch {
	case temp >= e.opts.HighThreshold:
		return entity.NewTriggerResult(
			entity.ConditionTemperatureHigh,
			"폭염 알림",
			fmt.Sprintf("현재 기온이 %s℃입니다. 야외 활동을 자제하고 수분을 충분히 섭취하세요.", formatReading(temp)),
		), nil
	case temp <= e.opts.LowThreshold:
		return entity.NewTriggerResult(
			entity.ConditionTemperatureLow,
			"한파 알림",
			fmt.Sprintf("현재 기온이 %s℃입니다. 외출 시 따뜻하게 입고 빙판길에 주의하세요.", formatReading(temp)),
		), nil
	default:
		return entity.NotTriggered(), nil
	}
}
