package trigger

import (
	"context"
	"fmt"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/geo"

	"github.com/paulmach/orb"
)

const eventDateLayout = "2006-01-02"

// CulturalEventOptions configures the cultural event evaluator.
type CulturalEventOptions struct {
	SearchRadiusKm float64 // Events beyond this distance are ignored. Default 2.0.
	LookAheadDays  int     // CULTURAL_EVENT_SOON window after today. Default 7.
	Enabled        bool
}

// DefaultCulturalEventOptions returns the production defaults.
func DefaultCulturalEventOptions() CulturalEventOptions {
	return CulturalEventOptions{SearchRadiusKm: 2.0, LookAheadDays: 7, Enabled: true}
}

// CulturalEventEvaluator flags nearby cultural events starting today or within
// the look-ahead window. Requires the culture interest and a known location.
// An event starting today wins over one merely starting soon.
type CulturalEventEvaluator struct {
	opts CulturalEventOptions
}

// NewCulturalEventEvaluator creates a cultural event evaluator.
func NewCulturalEventEvaluator(opts CulturalEventOptions) *CulturalEventEvaluator {
	return &CulturalEventEvaluator{opts: opts}
}

func (e *CulturalEventEvaluator) Type() string { return TypeCulturalEvent }

func (e *CulturalEventEvaluator) Priority() int { return entity.ConditionCultureToday.Priority() }

func (e *CulturalEventEvaluator) Description() string {
	return "주변에서 시작하는 문화행사를 알립니다"
}

func (e *CulturalEventEvaluator) Enabled() bool { return e.opts.Enabled }

func (e *CulturalEventEvaluator) Evaluate(_ context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error) {
	if !ec.HasInterest(entity.InterestCulture) || ec.Location() == nil {
		return entity.NotTriggered(), nil
	}

	records, ok := asSlice(ec.Source(entity.SourceCulturalEvent))
	if !ok {
		return entity.NotTriggered(), nil
	}

	now := ec.EvaluatedAt()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := today.AddDate(0, 0, e.opts.LookAheadDays)

	var soon *entity.TriggerResult
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

		id, idOK := stringField(m, "eventId")
		title, titleOK := stringField(m, "title", "eventName")
		startRaw, startOK := stringField(m, "startDate")
		if !idOK || !titleOK || !startOK {
			continue
		}

		start, err := time.ParseInLocation(eventDateLayout, startRaw, now.Location())
		if err != nil {
			continue
		}

		place, _ := stringField(m, "place")
		annotated := title
		if free, ok := stringField(m, "isFree"); ok && isFreeOfCharge(free) {
			annotated = fmt.Sprintf("%s (무료)", title)
		}

		switch {
		case start.Equal(today):
			return entity.NewTriggerResult(
				entity.ConditionCultureToday,
				"문화행사 알림",
				fmt.Sprintf("오늘 '%s' 행사가 %s에서 시작합니다.", annotated, placeOr(place)),
			).WithLocationName(place).WithMetadata(entity.MetadataKeyEventID, id), nil
		case start.After(today) && !start.After(windowEnd) && soon == nil:
			soon = entity.NewTriggerResult(
				entity.ConditionCultureSoon,
				"문화행사 알림",
				fmt.Sprintf("'%s' 행사가 %s %s에서 시작합니다.", annotated, start.Format(eventDateLayout), placeOr(place)),
			).WithLocationName(place).WithMetadata(entity.MetadataKeyEventID, id)
		}
	}

	if soon != nil {
		return soon, nil
	}

	return entity.NotTriggered(), nil
}

func isFreeOfCharge(value string) bool {
	switch value {
	case "무료", "true", "Y", "y":
		return true
	default:
		return false
	}
}

func placeOr(place string) string {
	if place == "" {
		return "인근 장소"
	}

	return place
}
