package trigger

import "pulse/config"

// NewRegistryFromConfig builds the evaluator registry from the trigger config
// section. Absent sections, zero thresholds and an unset Enabled flag fall
// back to the built-in defaults, so a section that only tunes a threshold
// keeps its evaluator enabled.
func NewRegistryFromConfig(cfg *config.TriggerConfig) *Registry {
	tempOpts := DefaultTemperatureOptions()
	rainOpts := DefaultHeavyRainOptions()
	airOpts := DefaultAirQualityOptions()
	bikeOpts := DefaultBikeShareOptions()
	congestionOpts := DefaultCongestionOptions()
	cultureOpts := DefaultCulturalEventOptions()

	if cfg != nil {
		if cfg.Temperature != nil {
			if cfg.Temperature.Enabled != nil {
				tempOpts.Enabled = *cfg.Temperature.Enabled
			}
			if cfg.Temperature.HighThreshold != 0 {
				tempOpts.HighThreshold = cfg.Temperature.HighThreshold
			}
			tempOpts.LowThreshold = cfg.Temperature.LowThreshold
		}
		if cfg.HeavyRain != nil {
			if cfg.HeavyRain.Enabled != nil {
				rainOpts.Enabled = *cfg.HeavyRain.Enabled
			}
			if cfg.HeavyRain.WarningThreshold != 0 {
				rainOpts.WarningThreshold = cfg.HeavyRain.WarningThreshold
			}
			if cfg.HeavyRain.WatchThreshold != 0 {
				rainOpts.WatchThreshold = cfg.HeavyRain.WatchThreshold
			}
		}
		if cfg.AirQuality != nil {
			if cfg.AirQuality.Enabled != nil {
				airOpts.Enabled = *cfg.AirQuality.Enabled
			}
		}
		if cfg.BikeShare != nil {
			if cfg.BikeShare.Enabled != nil {
				bikeOpts.Enabled = *cfg.BikeShare.Enabled
			}
			if cfg.BikeShare.SearchRadiusKm != 0 {
				bikeOpts.SearchRadiusKm = cfg.BikeShare.SearchRadiusKm
			}
			if cfg.BikeShare.ShortageThreshold != 0 {
				bikeOpts.ShortageThreshold = cfg.BikeShare.ShortageThreshold
			}
			if cfg.BikeShare.AvailableThreshold != 0 {
				bikeOpts.AvailableThreshold = cfg.BikeShare.AvailableThreshold
			}
		}
		if cfg.Congestion != nil {
			if cfg.Congestion.Enabled != nil {
				congestionOpts.Enabled = *cfg.Congestion.Enabled
			}
			if cfg.Congestion.SearchRadiusKm != 0 {
				congestionOpts.SearchRadiusKm = cfg.Congestion.SearchRadiusKm
			}
		}
		if cfg.CulturalEvent != nil {
			if cfg.CulturalEvent.Enabled != nil {
				cultureOpts.Enabled = *cfg.CulturalEvent.Enabled
			}
			if cfg.CulturalEvent.SearchRadiusKm != 0 {
				cultureOpts.SearchRadiusKm = cfg.CulturalEvent.SearchRadiusKm
			}
			if cfg.CulturalEvent.LookAheadDays != 0 {
				cultureOpts.LookAheadDays = cfg.CulturalEvent.LookAheadDays
			}
		}
	}

	return NewRegistry(
		NewTemperatureEvaluator(tempOpts),
		NewHeavyRainEvaluator(rainOpts),
		NewAirQualityEvaluator(airOpts),
		NewBikeShareEvaluator(bikeOpts),
		NewCongestionEvaluator(congestionOpts),
		NewCulturalEventEvaluator(cultureOpts),
	)
}
