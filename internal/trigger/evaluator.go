// Package trigger contains the condition evaluators ("strategies") and their
// registry. Each evaluator checks one notification-worthy condition against an
// immutable evaluation context; the orchestrator in usecase/impl runs them.
package trigger

import (
	"context"
	"slices"

	"pulse/internal/domain/entity"
)

// Evaluator types, used by callers to request a subset of evaluators.
const (
	TypeTemperature   = "temperature"
	TypeAirQuality    = "airQuality"
	TypeHeavyRain     = "heavyRain"
	TypeBikeShare     = "bikeShare"
	TypeCongestion    = "congestion"
	TypeCulturalEvent = "culturalEvent"
)

// Evaluator is the contract every condition strategy implements. Evaluate
// returns a non-triggered result for malformed or missing upstream data;
// an error is reserved for genuinely exceptional failures and is treated
// as "no trigger" by the orchestrator.
type Evaluator interface {
	// Type returns the evaluator's trigger-type name.
	Type() string

	// Priority orders evaluators; lower runs first and matters more.
	Priority() int

	// Description is a human-readable summary for diagnostics.
	Description() string

	// Enabled reports whether the evaluator participates in evaluation runs.
	Enabled() bool

	// Evaluate checks the condition against the given context.
	Evaluate(ctx context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error)
}

// Registry is the explicit, ordered collection of evaluators built at startup.
type Registry struct {
	evaluators []Evaluator
}

// NewRegistry builds a registry; the stored order is ascending priority.
func NewRegistry(evaluators ...Evaluator) *Registry {
	return &Registry{evaluators: SortByPriority(evaluators)}
}

// All returns the enabled evaluators in ascending priority order.
func (r *Registry) All() []Evaluator {
	return FilterEnabled(r.evaluators)
}

// Subset returns the enabled evaluators whose type is in the given set,
// in ascending priority order. Unknown names are ignored.
func (r *Registry) Subset(types []string) []Evaluator {
	subset := make([]Evaluator, 0, len(r.evaluators))
	for _, ev := range FilterEnabled(r.evaluators) {
		if slices.Contains(types, ev.Type()) {
			subset = append(subset, ev)
		}
	}

	return subset
}

// Size returns the number of registered evaluators, enabled or not.
func (r *Registry) Size() int {
	return len(r.evaluators)
}

// SortByPriority returns a new slice sorted by ascending priority, with type
// name as tiebreaker so ordering stays deterministic.
func SortByPriority(evaluators []Evaluator) []Evaluator {
	sorted := slices.Clone(evaluators)
	slices.SortStableFunc(sorted, func(a, b Evaluator) int {
		if a.Priority() != b.Priority() {
			return a.Priority() - b.Priority()
		}

		return compareStrings(a.Type(), b.Type())
	})

	return sorted
}

// FilterEnabled returns only the enabled evaluators, preserving order.
func FilterEnabled(evaluators []Evaluator) []Evaluator {
	enabled := make([]Evaluator, 0, len(evaluators))
	for _, ev := range evaluators {
		if ev.Enabled() {
			enabled = append(enabled, ev)
		}
	}

	return enabled
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
