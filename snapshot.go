package plancast

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrOutOfOrder is returned when a snapshot is appended with a day
// earlier than the latest one.
var ErrOutOfOrder = errors.New("snapshot out of order")

// Snapshot is the value of one entity as of one day. It is only ever
// produced by the Simulation applying Transactions; manual records live
// in the entity's ledger instead.
type Snapshot struct {
	Day           int
	Amount        float64
	ShareQuantity float64
	SharePrice    float64
}

// Value returns the snapshot's dollar value: the amount when one is
// set, otherwise the share position marked at the share price.
func (s Snapshot) Value() float64 {
	if s.Amount != 0 {
		return s.Amount
	}
	return s.ShareQuantity * s.SharePrice
}

// History is an append-only series of Snapshots for a single entity,
// strictly ascending by day. It is the only value history the
// Simulation consults.
type History struct {
	snaps []Snapshot
}

// Len returns the number of snapshots in the history.
func (h *History) Len() int { return len(h.snaps) }

// Latest returns the most recent snapshot, and false when the history
// is empty.
func (h *History) Latest() (Snapshot, bool) {
	if len(h.snaps) == 0 {
		return Snapshot{}, false
	}
	return h.snaps[len(h.snaps)-1], true
}

// Append commits a snapshot. A snapshot on the same day as the latest
// one replaces it in place; an earlier day is an ordering violation and
// returns an error, since days must be non-decreasing per entity.
func (h *History) Append(s Snapshot) error {
	last := len(h.snaps) - 1
	if last >= 0 {
		switch {
		case s.Day < h.snaps[last].Day:
			return fmt.Errorf("%w: day %d before latest day %d", ErrOutOfOrder, s.Day, h.snaps[last].Day)
		case s.Day == h.snaps[last].Day:
			h.snaps[last] = s
			return nil
		}
	}
	h.snaps = append(h.snaps, s)
	return nil
}

// SnapshotAsOf returns the latest snapshot on or before the given day,
// and false when no snapshot exists that early.
func (h *History) SnapshotAsOf(day int) (Snapshot, bool) {
	// Days are strictly ascending, so binary search applies.
	i, found := slices.BinarySearchFunc(h.snaps, day, func(s Snapshot, d int) int {
		return s.Day - d
	})
	if found {
		return h.snaps[i], true
	}
	if i == 0 {
		return Snapshot{}, false
	}
	return h.snaps[i-1], true
}

// ValueAsOf returns the entity value on or before the given day, or 0
// when no snapshot exists that early.
func (h *History) ValueAsOf(day int) float64 {
	s, ok := h.SnapshotAsOf(day)
	if !ok {
		return 0
	}
	return s.Value()
}

// Snapshots iterates over the history in chronological order.
func (h *History) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, s := range h.snaps {
			if !yield(s) {
				return
			}
		}
	}
}
