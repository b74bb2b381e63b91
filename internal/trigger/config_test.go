package trigger

import (
	"testing"

	"pulse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNewRegistryFromConfig_NilKeepsDefaults(t *testing.T) {
	registry := NewRegistryFromConfig(nil)

	assert.Len(t, registry.All(), 6)
}

func TestNewRegistryFromConfig_ThresholdOnlySectionStaysEnabled(t *testing.T) {
	registry := NewRegistryFromConfig(&config.TriggerConfig{
		Temperature: &config.TemperatureTriggerConfig{HighThreshold: 33.0},
	})

	subset := registry.Subset([]string{TypeTemperature})

	require.Len(t, subset, 1)
	ev, ok := subset[0].(*TemperatureEvaluator)
	require.True(t, ok)
	assert.True(t, ev.Enabled())
	assert.InDelta(t, 33.0, ev.opts.HighThreshold, 0.001)
}

func TestNewRegistryFromConfig_ExplicitDisable(t *testing.T) {
	registry := NewRegistryFromConfig(&config.TriggerConfig{
		Congestion: &config.CongestionTriggerConfig{Enabled: boolPtr(false)},
	})

	assert.Empty(t, registry.Subset([]string{TypeCongestion}))
	assert.Len(t, registry.All(), 5)
}
