package plancast

import "errors"

// FallbackID is the fixed id of the synthetic fallback entity.
const FallbackID = "__fallback__"

// Fallback is the synthetic cash sink present in every Simulation. It
// absorbs transactions whose target no longer resolves to a known
// entity, never produces transactions of its own, and is never written
// to a plan file.
type Fallback struct {
	entityCore
}

// NewFallback creates the fallback entity.
func NewFallback() *Fallback {
	return &Fallback{entityCore: entityCore{id: FallbackID, name: "Cash", templateKey: "fallback"}}
}

// SimulationDays always returns nothing.
func (f *Fallback) SimulationDays(startDay, endDay int) []int { return nil }

// SimulateDay always returns nothing.
func (f *Fallback) SimulateDay(day int, history *History) []Transaction { return nil }

// MarshalJSON always fails: the fallback entity is not part of a plan.
func (f *Fallback) MarshalJSON() ([]byte, error) {
	return nil, errors.New("fallback entity cannot be serialized")
}
