package trigger

import (
	"strconv"
	"strings"
)

// Tolerant accessors for the raw upstream snapshot data. Public-data feeds
// routinely return numbers as strings, omit fields, or nest records one level
// deeper than documented; every helper degrades to "absent" instead of
// panicking so partial data can never crash an evaluation.

func asMap(data any) (map[string]any, bool) {
	m, ok := data.(map[string]any)

	return m, ok
}

func asSlice(data any) ([]any, bool) {
	switch v := data.(type) {
	case []any:
		return v, true
	case []map[string]any:
		records := make([]any, len(v))
		for i, record := range v {
			records[i] = record
		}

		return records, true
	default:
		return nil, false
	}
}

// stringField returns the first present, non-empty string value among keys.
func stringField(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), true
		}
	}

	return "", false
}

// floatField returns the first present numeric value among keys, accepting
// native numbers and numeric strings.
func floatField(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		if f, ok := toFloat(raw); ok {
			return f, true
		}
	}

	return 0, false
}

// intField is floatField truncated to an integer.
func intField(m map[string]any, keys ...string) (int, bool) {
	f, ok := floatField(m, keys...)
	if !ok {
		return 0, false
	}

	return int(f), true
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// formatReading renders a parsed numeric reading without trailing zeros, so a
// "36.5" upstream value round-trips into messages as "36.5".
func formatReading(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
