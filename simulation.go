package plancast

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrNoFallback is returned when a Simulation is constructed without a
// fallback entity in its set.
var ErrNoFallback = errors.New("fallback entity is missing")

// DataPoint is the aggregate position on one day.
type DataPoint struct {
	Assets   float64
	Debt     float64
	NetWorth float64
}

// Simulation replays a plan's entities over a bounded day axis and
// answers value queries. The whole replay runs inside NewSimulation;
// afterwards a Simulation is read-only.
type Simulation struct {
	startDay int
	endDay   int

	order      []string // entity ids in constructor order
	entities   map[string]Entity
	histories  map[string]*History
	fallbackID string

	yearly map[int]DataPoint // memoized year-end datapoints
}

// NewSimulation builds the projection eagerly. The entity set must
// contain exactly one fallback entity. The projection window starts at
// the earliest ledger day across all entities (todayDay when none has
// ledger history) and spans years*365 days.
//
// Construction fails on a missing fallback entity or on an internal
// ordering violation; both mean the projection has no usable result.
func NewSimulation(entities []Entity, years int, todayDay int) (*Simulation, error) {
	s := &Simulation{
		entities:  make(map[string]Entity, len(entities)),
		histories: make(map[string]*History, len(entities)),
	}
	for _, e := range entities {
		s.order = append(s.order, e.ID())
		s.entities[e.ID()] = e
		s.histories[e.ID()] = &History{}
		if _, ok := e.(*Fallback); ok {
			s.fallbackID = e.ID()
		}
	}
	if s.fallbackID == "" {
		return nil, ErrNoFallback
	}

	earliest := 0
	for _, e := range entities {
		if first := e.Ledger().earliestDay(); first != 0 && (earliest == 0 || first < earliest) {
			earliest = first
		}
	}
	if earliest == 0 {
		earliest = todayDay
	}
	s.startDay = earliest
	s.endDay = earliest + years*365

	if err := s.run(); err != nil {
		return nil, err
	}
	return s, nil
}

// StartDay returns the first day of the projection window.
func (s *Simulation) StartDay() int { return s.startDay }

// EndDay returns the last day of the projection window.
func (s *Simulation) EndDay() int { return s.endDay }

// run replays all simulation days in chronological order. Within a day,
// entities are visited in the order they were supplied, and every
// transaction is applied before the next entity is simulated: a later
// entity can observe same-day changes to other entities, but never its
// own uncommitted ones.
func (s *Simulation) run() error {
	byDay := make(map[int][]Entity)
	for _, id := range s.order {
		e := s.entities[id]
		for _, day := range e.SimulationDays(s.startDay, s.endDay) {
			byDay[day] = append(byDay[day], e)
		}
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	slices.Sort(days)

	for _, day := range days {
		for _, e := range byDay[day] {
			for _, tx := range e.SimulateDay(day, s.histories[e.ID()]) {
				if err := s.apply(tx); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// apply commits one transaction to its target's history. A target that
// does not resolve is redirected to the fallback entity with the
// transaction otherwise unchanged.
func (s *Simulation) apply(tx Transaction) error {
	if _, ok := s.entities[tx.TargetID]; !ok {
		tx.TargetID = s.fallbackID
	}
	history := s.histories[tx.TargetID]

	var last Snapshot
	if l, ok := history.Latest(); ok {
		last = l
	}

	next := Snapshot{
		Day:           tx.Day,
		Amount:        last.Amount,
		ShareQuantity: last.ShareQuantity,
		SharePrice:    last.SharePrice,
	}
	if tx.Correction {
		if tx.Amount != nil {
			next.Amount = *tx.Amount
		}
		if tx.ShareQuantity != nil {
			next.ShareQuantity = *tx.ShareQuantity
		}
		if tx.SharePrice != nil {
			next.SharePrice = *tx.SharePrice
		}
	} else {
		if tx.Amount != nil {
			next.Amount += *tx.Amount
		}
		if tx.ShareQuantity != nil {
			next.ShareQuantity += *tx.ShareQuantity
		}
		if tx.SharePrice != nil {
			next.SharePrice += *tx.SharePrice
		}
	}

	if err := history.Append(next); err != nil {
		return fmt.Errorf("entity %q: %w", tx.TargetID, err)
	}
	return nil
}

// EntityValueOn returns the entity's value as of the given day: the
// latest snapshot at or before it, or 0 when the entity is unknown or
// has no snapshot that early.
func (s *Simulation) EntityValueOn(id string, day int) float64 {
	history, ok := s.histories[id]
	if !ok {
		return 0
	}
	return history.ValueAsOf(day)
}

// Assets returns the sum of all positive entity values on the day.
func (s *Simulation) Assets(day int) float64 {
	var total float64
	for _, id := range s.order {
		if v := s.EntityValueOn(id, day); v > 0 {
			total += v
		}
	}
	return total
}

// Debt returns the sum of the magnitudes of all negative entity values
// on the day.
func (s *Simulation) Debt(day int) float64 {
	var total float64
	for _, id := range s.order {
		if v := s.EntityValueOn(id, day); v < 0 {
			total += -v
		}
	}
	return total
}

// NetWorth returns assets minus debt on the day.
func (s *Simulation) NetWorth(day int) float64 {
	return s.Assets(day) - s.Debt(day)
}

// YearlyDataPoints returns the aggregate position on December 31 of
// every calendar year the projection window touches, keyed by epoch
// day. The result is computed once and memoized.
func (s *Simulation) YearlyDataPoints() map[int]DataPoint {
	if s.yearly == nil {
		s.yearly = make(map[int]DataPoint)
		for year := DateOfDay(s.startDay).Year(); year <= DateOfDay(s.endDay).Year(); year++ {
			day := NewDate(year, time.December, 31).Days()
			s.yearly[day] = DataPoint{
				Assets:   s.Assets(day),
				Debt:     s.Debt(day),
				NetWorth: s.NetWorth(day),
			}
		}
	}
	return s.yearly
}
