// Package citydata merges the upstream public-data sources into the snapshot
// consumed by the condition evaluators.
package citydata

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pulse/config"
	"pulse/internal/domain/service"
)

const defaultFetchTimeout = 5 * time.Second

// compositeProvider fans a snapshot request out to every registered data
// source and merges the results. A failing or slow source contributes nothing;
// the snapshot is best-effort and never an error.
type compositeProvider struct {
	logger       *slog.Logger
	sources      []service.DataSource
	fetchTimeout time.Duration
	defaultLat   float64
	defaultLng   float64
}

// NewProvider creates the composite snapshot provider over the given sources.
func NewProvider(logger *slog.Logger, cfg *config.CityDataConfig, sources ...service.DataSource) service.CityDataProvider {
	provider := &compositeProvider{
		logger:       logger,
		sources:      sources,
		fetchTimeout: defaultFetchTimeout,
	}
	if cfg != nil {
		if cfg.FetchTimeout > 0 {
			provider.fetchTimeout = cfg.FetchTimeout
		}
		provider.defaultLat = cfg.DefaultLatitude
		provider.defaultLng = cfg.DefaultLongitude
	}

	return provider
}

// Snapshot fetches all sources concurrently with a per-source timeout. Zero
// coordinates mean "location unknown" and fall back to the configured default
// area, so users without a location still get city-wide conditions.
func (p *compositeProvider) Snapshot(ctx context.Context, lat, lng float64) (map[string]any, error) {
	if lat == 0 && lng == 0 {
		lat, lng = p.defaultLat, p.defaultLng
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		snapshot = make(map[string]any, len(p.sources))
	)

	for _, source := range p.sources {
		wg.Add(1)
		go func() {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
			defer cancel()

			records, err := source.Fetch(fetchCtx, lat, lng)
			if err != nil {
				p.logger.Warn("public data source failed, omitting from snapshot",
					slog.String("source", source.Name()),
					slog.Any("error", err),
				)

				return
			}

			mu.Lock()
			snapshot[source.Name()] = records
			mu.Unlock()
		}()
	}
	wg.Wait()

	return snapshot, nil
}
