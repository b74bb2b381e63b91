package trigger

import (
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Seoul City Hall, the shared reference location for evaluator tests.
var cityHall = orb.Point{126.9780, 37.5665}

var testEvaluatedAt = time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)

func newTestContext(interests []entity.InterestCategory, location *orb.Point, snapshot map[string]any) *entity.EvaluationContext {
	return entity.NewEvaluationContext(uuid.New(), interests, location, snapshot, testEvaluatedAt)
}

func weatherContext(fields map[string]any) *entity.EvaluationContext {
	return newTestContext(
		[]entity.InterestCategory{entity.InterestWeather},
		&cityHall,
		map[string]any{entity.SourceCityWeather: fields},
	)
}
