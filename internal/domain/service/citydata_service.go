// Package service defines interfaces for external collaborators consumed by
// the trigger evaluation core.
package service

import "context"

// CityDataProvider returns a merged snapshot of public city data for the given
// coordinates. Keys are source names (entity.SourceCityWeather etc.), values
// are the raw records as returned by the upstream sources.
//
// Partial upstream failure yields a partial (possibly empty) map rather than
// an error: garbled or missing public data must never abort an evaluation.
type CityDataProvider interface {
	Snapshot(ctx context.Context, lat, lng float64) (map[string]any, error)
}

// DataSource fetches the raw records of one public-data source. Concrete HTTP
// clients for the upstream open-data APIs live outside this service and are
// injected as sources.
type DataSource interface {
	// Name returns the snapshot key the source's records are merged under.
	Name() string

	// Fetch returns the source's raw records for the given coordinates.
	Fetch(ctx context.Context, lat, lng float64) (any, error)
}
