package trigger

import (
	"context"
	"fmt"

	"pulse/internal/domain/entity"
)

// HeavyRainOptions configures the two-tier rainfall thresholds, in mm/h.
// Both tiers are inclusive; the warning tier takes precedence when both hold.
type HeavyRainOptions struct {
	WarningThreshold float64 // HEAVY_RAIN_WARNING at or above. Default 30.0.
	WatchThreshold   float64 // HEAVY_RAIN_WATCH at or above. Default 15.0.
	Enabled          bool
}

// DefaultHeavyRainOptions returns the production defaults.
func DefaultHeavyRainOptions() HeavyRainOptions {
	return HeavyRainOptions{WarningThreshold: 30.0, WatchThreshold: 15.0, Enabled: true}
}

// HeavyRainEvaluator flags heavy rainfall from the city weather snapshot.
// Requires the weather interest. The hourly rainfall reading falls back to an
// alternative key name when the primary is absent.
type HeavyRainEvaluator struct {
	opts HeavyRainOptions
}

// NewHeavyRainEvaluator creates a heavy rain evaluator.
func NewHeavyRainEvaluator(opts HeavyRainOptions) *HeavyRainEvaluator {
	return &HeavyRainEvaluator{opts: opts}
}

func (e *HeavyRainEvaluator) Type() string { return TypeHeavyRain }

func (e *HeavyRainEvaluator) Priority() int { return entity.ConditionHeavyRainWarning.Priority() }

func (e *HeavyRainEvaluator) Description() string {
	return "시간당 강수량이 임계값을 넘으면 호우 경보/주의보 알림을 발생시킵니다"
}

func (e *HeavyRainEvaluator) Enabled() bool { return e.opts.Enabled }

func (e *HeavyRainEvaluator) Evaluate(_ context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error) {
	if !ec.HasInterest(entity.InterestWeather) {
		return entity.NotTriggered(), nil
	}

	weather, ok := asMap(ec.Source(entity.SourceCityWeather))
	if !ok {
		return entity.NotTriggered(), nil
	}

	rainfall, ok := floatField(weather, "rainfallPerHour", "precipitation", "PRECIPITATION")
	if !ok {
		return entity.NotTriggered(), nil
	}

	switch {
	case rainfall >= e.opts.WarningThreshold:
		return entity.NewTriggerResult(
			entity.ConditionHeavyRainWarning,
			"호우 경보",
			fmt.Sprintf("시간당 강수량이 %smm에 달합니다. 저지대와 지하공간을 피해 즉시 안전한 곳으로 이동하세요.", formatReading(rainfall)),
		), nil
	case rainfall >= e.opts.WatchThreshold:
		return entity.NewTriggerResult(
			entity.ConditionHeavyRainWatch,
			"호우 주의보",
			fmt.Sprintf("시간당 강수량이 %smm입니다. 외출 시 우산을 준비하세요.", formatReading(rainfall)),
		), nil
	default:
		return entity.NotTriggered(), nil
	}
}
