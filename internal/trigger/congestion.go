package trigger

import (
	"context"
	"fmt"
	"strings"

	"pulse/internal/domain/entity"
	"pulse/internal/geo"

	"github.com/paulmach/orb"
)

// crowdedLabels are the congestion levels that trigger a notification.
var crowdedLabels = map[string]struct{}{
	"혼잡":           {},
	"매우혼잡":         {},
	"붐빔":           {},
	"매우 붐빔":        {},
	"crowded":      {},
	"very crowded": {},
}

// CongestionOptions configures the crowd congestion evaluator.
type CongestionOptions struct {
	SearchRadiusKm float64 // Crowd records beyond this distance are ignored. Default 1.0.
	Enabled        bool
}

// DefaultCongestionOptions returns the production defaults.
func DefaultCongestionOptions() CongestionOptions {
	return CongestionOptions{SearchRadiusKm: 1.0, Enabled: true}
}

// CongestionEvaluator flags crowded areas near the user from the realtime
// population snapshot. Requires a known user location.
//
// The interest gate is inverted relative to the other evaluators: users whose
// interests contain the congestion category are skipped. This mirrors the
// behavior observed in production and is pinned by tests; see DESIGN.md.
type CongestionEvaluator struct {
	opts CongestionOptions
}

// NewCongestionEvaluator creates a congestion evaluator.
func NewCongestionEvaluator(opts CongestionOptions) *CongestionEvaluator {
	return &CongestionEvaluator{opts: opts}
}

func (e *CongestionEvaluator) Type() string { return TypeCongestion }

func (e *CongestionEvaluator) Priority() int { return entity.ConditionCongestion.Priority() }

func (e *CongestionEvaluator) Description() string {
	return "주변 지역의 실시간 인구 혼잡도를 알립니다"
}

func (e *CongestionEvaluator) Enabled() bool { return e.opts.Enabled }

func (e *CongestionEvaluator) Evaluate(_ context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error) {
	if ec.HasInterest(entity.InterestCongestion) {
		return entity.NotTriggered(), nil
	}
	if ec.Location() == nil {
		return entity.NotTriggered(), nil
	}

	records, ok := asSlice(ec.Source(entity.SourcePopulation))
	if !ok {
		return entity.NotTriggered(), nil
	}

	for _, record := range records {
		m, ok := asMap(record)
		if !ok {
			continue
		}

		lat, latOK := floatField(m, "latitude")
		lng, lngOK := floatField(m, "longitude")
		if !latOK || !lngOK {
			continue
		}
		if !geo.WithinRadiusKm(*ec.Location(), orb.Point{lng, lat}, e.opts.SearchRadiusKm) {
			continue
		}

		level, ok := stringField(m, "congestionLevel", "AREA_CONGEST_LVL")
		if !ok {
			continue
		}
		if _, crowded := crowdedLabels[strings.ToLower(level)]; !crowded {
			continue
		}

		area, areaOK := stringField(m, "areaName", "AREA_NM")
		if !areaOK {
			continue
		}

		message := e.buildMessage(m, area, level)

		return entity.NewTriggerResult(entity.ConditionCongestion, "혼잡도 알림", message).
			WithLocationName(area).
			WithMetadata(entity.MetadataKeyAreaName, area), nil
	}

	return entity.NotTriggered(), nil
}

func (e *CongestionEvaluator) buildMessage(m map[string]any, area, level string) string {
	message := fmt.Sprintf("%s 지역이 현재 '%s' 상태입니다.", area, level)

	if advisory, ok := stringField(m, "congestionMessage", "AREA_CONGEST_MSG"); ok {
		message = fmt.Sprintf("%s %s", message, advisory)
	}

	minPop, minOK := intField(m, "populationMin", "AREA_PPLTN_MIN")
	maxPop, maxOK := intField(m, "populationMax", "AREA_PPLTN_MAX")
	if minOK && maxOK {
		message = fmt.Sprintf("%s (예상 인구 %d~%d명)", message, minPop, maxPop)
	}

	return message
}
