package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for notification-intent event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Trigger configuration for the condition evaluators
	Trigger *TriggerConfig `json:"trigger" yaml:"trigger"`

	// Dedup configuration overriding the default suppression policies
	Dedup *DedupConfig `json:"dedup" yaml:"dedup"`

	// Batch configuration for population-wide evaluation runs
	Batch *BatchConfig `json:"batch" yaml:"batch"`

	// CityData configuration for the public-data sources
	CityData *CityDataConfig `json:"cityData" yaml:"cityData"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// TriggerConfig holds the per-evaluator thresholds and switches. Zero-valued
// sections fall back to the evaluator defaults.
type TriggerConfig struct {
	Temperature   *TemperatureTriggerConfig `json:"temperature" yaml:"temperature"`
	HeavyRain     *HeavyRainTriggerConfig   `json:"heavyRain" yaml:"heavyRain"`
	AirQuality    *AirQualityTriggerConfig  `json:"airQuality" yaml:"airQuality"`
	BikeShare     *BikeShareTriggerConfig   `json:"bikeShare" yaml:"bikeShare"`
	Congestion    *CongestionTriggerConfig  `json:"congestion" yaml:"congestion"`
	CulturalEvent *CultureTriggerConfig     `json:"culturalEvent" yaml:"culturalEvent"`
}

type TemperatureTriggerConfig struct {
	// Enabled toggles the evaluator; absent means enabled.
	Enabled       *bool   `json:"enabled" yaml:"enabled"`
	HighThreshold float64 `json:"highThreshold" yaml:"highThreshold"`
	LowThreshold  float64 `json:"lowThreshold" yaml:"lowThreshold"`
}

type HeavyRainTriggerConfig struct {
	Enabled          *bool   `json:"enabled" yaml:"enabled"`
	WarningThreshold float64 `json:"warningThreshold" yaml:"warningThreshold"`
	WatchThreshold   float64 `json:"watchThreshold" yaml:"watchThreshold"`
}

type AirQualityTriggerConfig struct {
	Enabled *bool `json:"enabled" yaml:"enabled"`
}

type BikeShareTriggerConfig struct {
	Enabled            *bool   `json:"enabled" yaml:"enabled"`
	SearchRadiusKm     float64 `json:"searchRadiusKm" yaml:"searchRadiusKm"`
	ShortageThreshold  int     `json:"shortageThreshold" yaml:"shortageThreshold"`
	AvailableThreshold int     `json:"availableThreshold" yaml:"availableThreshold"`
}

type CongestionTriggerConfig struct {
	Enabled        *bool   `json:"enabled" yaml:"enabled"`
	SearchRadiusKm float64 `json:"searchRadiusKm" yaml:"searchRadiusKm"`
}

type CultureTriggerConfig struct {
	Enabled        *bool   `json:"enabled" yaml:"enabled"`
	SearchRadiusKm float64 `json:"searchRadiusKm" yaml:"searchRadiusKm"`
	LookAheadDays  int     `json:"lookAheadDays" yaml:"lookAheadDays"`
}

// DedupConfig overrides entries of the built-in suppression policy table.
// Conditions without an override keep their defaults.
type DedupConfig struct {
	Policies []DedupPolicyConfig `json:"policies" yaml:"policies"`
}

type DedupPolicyConfig struct {
	// Condition name, e.g. TEMPERATURE_HIGH
	Condition string `json:"condition" yaml:"condition"`

	// Mode: NONE, IDENTIFIER, LOCATION or CONDITION
	Mode string `json:"mode" yaml:"mode"`

	// Metadata key holding the unique identifier (IDENTIFIER mode only)
	IdentifierKey string `json:"identifierKey" yaml:"identifierKey"`

	// How long repeats stay suppressed; 365 days or more means forever
	PreventionDuration time.Duration `json:"preventionDuration" yaml:"preventionDuration"`
}

// BatchConfig defines configuration for batch evaluation runs
type BatchConfig struct {
	// Number of users evaluated concurrently
	WorkerCount int `json:"workerCount" yaml:"workerCount"`
}

// CityDataConfig defines configuration for the public-data snapshot provider
type CityDataConfig struct {
	// Per-source fetch timeout
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`

	// Fallback coordinates used when a user has no known location
	DefaultLatitude  float64 `json:"defaultLatitude" yaml:"defaultLatitude"`
	DefaultLongitude float64 `json:"defaultLongitude" yaml:"defaultLongitude"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
