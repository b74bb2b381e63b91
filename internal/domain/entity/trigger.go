// Package entity contains the core business objects of the project.
package entity

// TriggerCondition is a closed enumeration of reasons a notification may fire.
type TriggerCondition string

const (
	ConditionTemperatureHigh  TriggerCondition = "TEMPERATURE_HIGH"
	ConditionTemperatureLow   TriggerCondition = "TEMPERATURE_LOW"
	ConditionHeavyRainWarning TriggerCondition = "HEAVY_RAIN_WARNING"
	ConditionHeavyRainWatch   TriggerCondition = "HEAVY_RAIN_WATCH"
	ConditionAirQualityBad    TriggerCondition = "AIR_QUALITY_BAD"
	ConditionBikeShortage     TriggerCondition = "BIKE_SHORTAGE"
	ConditionBikeSurplus      TriggerCondition = "BIKE_SURPLUS"
	ConditionCongestion       TriggerCondition = "CONGESTION"
	ConditionCultureToday     TriggerCondition = "CULTURAL_EVENT_TODAY"
	ConditionCultureSoon      TriggerCondition = "CULTURAL_EVENT_SOON"
)

// NotificationCategory groups trigger conditions for downstream dispatch routing.
type NotificationCategory string

const (
	CategoryWeather    NotificationCategory = "WEATHER"
	CategoryBikeShare  NotificationCategory = "BIKE_SHARE"
	CategoryCongestion NotificationCategory = "CONGESTION"
	CategoryCulture    NotificationCategory = "CULTURE"
)

// conditionCategories maps each condition to its notification category.
var conditionCategories = map[TriggerCondition]NotificationCategory{
	ConditionTemperatureHigh:  CategoryWeather,
	ConditionTemperatureLow:   CategoryWeather,
	ConditionHeavyRainWarning: CategoryWeather,
	ConditionHeavyRainWatch:   CategoryWeather,
	ConditionAirQualityBad:    CategoryWeather,
	ConditionBikeShortage:     CategoryBikeShare,
	ConditionBikeSurplus:      CategoryBikeShare,
	ConditionCongestion:       CategoryCongestion,
	ConditionCultureToday:     CategoryCulture,
	ConditionCultureSoon:      CategoryCulture,
}

// conditionPriorities maps each condition to its intrinsic priority.
// Lower values are more urgent.
var conditionPriorities = map[TriggerCondition]int{
	ConditionHeavyRainWarning: 5,
	ConditionTemperatureHigh:  10,
	ConditionTemperatureLow:   10,
	ConditionAirQualityBad:    20,
	ConditionHeavyRainWatch:   30,
	ConditionBikeShortage:     40,
	ConditionBikeSurplus:      45,
	ConditionCongestion:       50,
	ConditionCultureToday:     60,
	ConditionCultureSoon:      65,
}

// Category returns the notification category the condition belongs to.
func (c TriggerCondition) Category() NotificationCategory {
	return conditionCategories[c]
}

// Priority returns the intrinsic priority of the condition. Lower is more urgent.
func (c TriggerCondition) Priority() int {
	if p, ok := conditionPriorities[c]; ok {
		return p
	}

	return 100
}

// Valid reports whether the condition is part of the closed enumeration.
func (c TriggerCondition) Valid() bool {
	_, ok := conditionCategories[c]

	return ok
}

// TriggerResult is the outcome of running a single evaluator against a context.
// A non-triggered result carries no other fields.
type TriggerResult struct {
	Triggered    bool                 `json:"triggered"`
	Condition    TriggerCondition     `json:"condition,omitempty"`
	Category     NotificationCategory `json:"category,omitempty"`
	Title        string               `json:"title,omitempty"`
	Message      string               `json:"message,omitempty"`
	LocationName string               `json:"location_name,omitempty"`
	Priority     int                  `json:"priority,omitempty"`
	Metadata     map[string]string    `json:"metadata,omitempty"`
}

// NotTriggered returns the canonical negative result.
func NotTriggered() *TriggerResult {
	return &TriggerResult{Triggered: false}
}

// NewTriggerResult builds a triggered result, deriving category and priority
// from the condition.
func NewTriggerResult(condition TriggerCondition, title, message string) *TriggerResult {
	return &TriggerResult{
		Triggered: true,
		Condition: condition,
		Category:  condition.Category(),
		Title:     title,
		Message:   message,
		Priority:  condition.Priority(),
		Metadata:  map[string]string{},
	}
}

// WithLocationName attaches a human-readable location descriptor.
func (r *TriggerResult) WithLocationName(name string) *TriggerResult {
	r.LocationName = name

	return r
}

// WithMetadata records a metadata entry used later for deduplication.
func (r *TriggerResult) WithMetadata(key, value string) *TriggerResult {
	if r.Metadata == nil {
		r.Metadata = map[string]string{}
	}
	r.Metadata[key] = value

	return r
}

// Metadata keys shared between evaluators and the duplicate-suppression policies.
const (
	MetadataKeyStationID = "stationId"
	MetadataKeyEventID   = "eventId"
	MetadataKeyAreaName  = "areaName"
)
