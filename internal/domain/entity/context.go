package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// InterestCategory is a user-declared interest that gates evaluators.
type InterestCategory string

const (
	InterestWeather    InterestCategory = "weather"
	InterestBike       InterestCategory = "bike"
	InterestCongestion InterestCategory = "congestion"
	InterestCulture    InterestCategory = "culture"
)

// Names of the public-data sources merged into an evaluation snapshot.
const (
	SourceCityWeather   = "cityWeather"
	SourceAirQuality    = "airQuality"
	SourceBikeShare     = "bikeShare"
	SourcePopulation    = "population"
	SourceCulturalEvent = "culturalEvent"
)

// EvaluationContext is the immutable, read-only snapshot of user, location and
// public data used for one evaluation pass. It is built once per run and never
// mutated afterwards; evaluators read but never write it.
type EvaluationContext struct {
	userID      uuid.UUID
	interests   map[InterestCategory]struct{}
	location    *orb.Point
	snapshot    map[string]any
	evaluatedAt time.Time
}

// NewEvaluationContext assembles a context. The snapshot map is shallow-copied
// so later mutation by the caller cannot leak into a running evaluation.
func NewEvaluationContext(
	userID uuid.UUID,
	interests []InterestCategory,
	location *orb.Point,
	snapshot map[string]any,
	evaluatedAt time.Time,
) *EvaluationContext {
	interestSet := make(map[InterestCategory]struct{}, len(interests))
	for _, interest := range interests {
		interestSet[interest] = struct{}{}
	}

	snapshotCopy := make(map[string]any, len(snapshot))
	for name, data := range snapshot {
		snapshotCopy[name] = data
	}

	return &EvaluationContext{
		userID:      userID,
		interests:   interestSet,
		location:    location,
		snapshot:    snapshotCopy,
		evaluatedAt: evaluatedAt,
	}
}

// UserID returns the identity of the user being evaluated.
func (ec *EvaluationContext) UserID() uuid.UUID {
	return ec.userID
}

// HasInterest reports whether the user declared the given interest category.
func (ec *EvaluationContext) HasInterest(category InterestCategory) bool {
	_, ok := ec.interests[category]

	return ok
}

// Location returns the user's current coordinates, or nil when unknown.
// A nil location disables all location-scoped evaluators.
func (ec *EvaluationContext) Location() *orb.Point {
	return ec.location
}

// Source returns the raw records of one public-data source, or nil when the
// source is absent from the snapshot.
func (ec *EvaluationContext) Source(name string) any {
	return ec.snapshot[name]
}

// EvaluatedAt returns the evaluation timestamp.
func (ec *EvaluationContext) EvaluatedAt() time.Time {
	return ec.evaluatedAt
}
