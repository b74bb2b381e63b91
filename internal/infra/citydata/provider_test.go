package citydata

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name    string
	records any
	err     error
	gotLat  float64
	gotLng  float64
	delay   time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, lat, lng float64) (any, error) {
	s.gotLat, s.gotLng = lat, lng

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	return s.records, s.err
}

func TestCompositeProvider_MergesAllSources(t *testing.T) {
	weather := &stubSource{name: entity.SourceCityWeather, records: map[string]any{"temperature": 36.5}}
	bikes := &stubSource{name: entity.SourceBikeShare, records: []any{map[string]any{"stationId": "ST-1"}}}
	provider := NewProvider(slog.New(slog.DiscardHandler), nil, weather, bikes)

	snapshot, err := provider.Snapshot(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)
	assert.Len(t, snapshot, 2)
	assert.Equal(t, weather.records, snapshot[entity.SourceCityWeather])
	assert.Equal(t, bikes.records, snapshot[entity.SourceBikeShare])
	assert.InDelta(t, 37.5665, weather.gotLat, 1e-9)
}

func TestCompositeProvider_FailingSourceIsOmitted(t *testing.T) {
	weather := &stubSource{name: entity.SourceCityWeather, records: map[string]any{"temperature": 10.0}}
	broken := &stubSource{name: entity.SourceAirQuality, err: assert.AnError}
	provider := NewProvider(slog.New(slog.DiscardHandler), nil, weather, broken)

	snapshot, err := provider.Snapshot(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
	assert.Contains(t, snapshot, entity.SourceCityWeather)
	assert.NotContains(t, snapshot, entity.SourceAirQuality)
}

func TestCompositeProvider_SlowSourceTimesOut(t *testing.T) {
	fast := &stubSource{name: entity.SourceCityWeather, records: map[string]any{"temperature": 10.0}}
	slow := &stubSource{name: entity.SourcePopulation, records: []any{}, delay: time.Second}
	cfg := &config.CityDataConfig{FetchTimeout: 10 * time.Millisecond}
	provider := NewProvider(slog.New(slog.DiscardHandler), cfg, fast, slow)

	snapshot, err := provider.Snapshot(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)
	assert.Contains(t, snapshot, entity.SourceCityWeather)
	assert.NotContains(t, snapshot, entity.SourcePopulation)
}

func TestCompositeProvider_UnknownLocationUsesDefaultArea(t *testing.T) {
	weather := &stubSource{name: entity.SourceCityWeather, records: map[string]any{}}
	cfg := &config.CityDataConfig{DefaultLatitude: 37.5665, DefaultLongitude: 126.9780}
	provider := NewProvider(slog.New(slog.DiscardHandler), cfg, weather)

	_, err := provider.Snapshot(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 37.5665, weather.gotLat, 1e-9)
	assert.InDelta(t, 126.9780, weather.gotLng, 1e-9)
}

func TestCompositeProvider_NoSources(t *testing.T) {
	provider := NewProvider(slog.New(slog.DiscardHandler), nil)

	snapshot, err := provider.Snapshot(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}
