package plancast

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// EntityType identifies the behavior of an entity record.
type EntityType string

const (
	AccountType    EntityType = "account"
	DebtType       EntityType = "debt"
	ExpenseType    EntityType = "expense"
	HoldingType    EntityType = "holding"
	IncomeType     EntityType = "income"
	PossessionType EntityType = "possession"
)

// ParseEntityType parses a string into an EntityType. Matching is
// case-insensitive; an unrecognized value is an error, not a default.
func ParseEntityType(s string) (EntityType, error) {
	switch t := EntityType(strings.ToLower(s)); t {
	case AccountType, DebtType, ExpenseType, HoldingType, IncomeType, PossessionType:
		return t, nil
	default:
		return "", fmt.Errorf("unknown entity type: %q", s)
	}
}

// TypeOf returns the EntityType of an entity variant, or false for the
// runtime-only fallback entity.
func TypeOf(e Entity) (EntityType, bool) {
	switch e.(type) {
	case *Account:
		return AccountType, true
	case *Debt:
		return DebtType, true
	case *Expense:
		return ExpenseType, true
	case *Holding:
		return HoldingType, true
	case *Income:
		return IncomeType, true
	case *Possession:
		return PossessionType, true
	}
	return "", false
}

// LedgerEntry is an externally supplied manual value record for an
// entity on a specific day: an opening balance, a correction, or a lot
// purchase. Amounts are decimals so plan files round-trip exactly; the
// engine reads floats from them.
type LedgerEntry struct {
	ID            string
	Day           int
	Amount        decimal.NullDecimal
	ShareQuantity decimal.NullDecimal
	SharePrice    decimal.NullDecimal
}

// MarshalJSON implements json.Marshaler for LedgerEntry.
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", e.ID)
	w.Append("day", e.Day)
	if e.Amount.Valid {
		w.Append("amount", e.Amount.Decimal)
	}
	if e.ShareQuantity.Valid {
		w.Append("shareQuantity", e.ShareQuantity.Decimal)
	}
	if e.SharePrice.Valid {
		w.Append("sharePrice", e.SharePrice.Decimal)
	}
	return w.MarshalJSON()
}

// Ledger is an entity's manual records, ordered ascending by day.
type Ledger []LedgerEntry

func (l Ledger) sortByDay() {
	sort.SliceStable(l, func(i, j int) bool { return l[i].Day < l[j].Day })
}

// earliestDay returns the day of the first entry, or 0 when the ledger
// is empty.
func (l Ledger) earliestDay() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].Day
}

// entryOn returns the first entry recorded exactly on the given day.
func (l Ledger) entryOn(day int) (LedgerEntry, bool) {
	for _, e := range l {
		if e.Day == day {
			return e, true
		}
	}
	return LedgerEntry{}, false
}

// latestOnOrBefore returns the most recent entry at or before the given
// day.
func (l Ledger) latestOnOrBefore(day int) (LedgerEntry, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Day <= day {
			return l[i], true
		}
	}
	return LedgerEntry{}, false
}

// daysInRange returns the entry days inside the inclusive window.
func (l Ledger) daysInRange(startDay, endDay int) []int {
	var days []int
	for _, e := range l {
		if e.Day >= startDay && e.Day <= endDay {
			days = append(days, e.Day)
		}
	}
	return days
}

// Entity is the contract every plan entity fulfills. An entity is an
// immutable value object; the Simulation owns all derived state.
//
// SimulationDays returns the ordered, deduplicated days in
// [max(startDay, first ledger day), endDay] on which the entity must be
// evaluated; SimulateDay turns one of those days into the transactions
// to apply, given the entity's own committed history.
type Entity interface {
	ID() string
	Name() string
	TemplateKey() string
	ParentID() string
	Ledger() Ledger

	SimulationDays(startDay, endDay int) []int
	SimulateDay(day int, history *History) []Transaction

	// MarshalJSON produces the entity's canonical plan record.
	MarshalJSON() ([]byte, error)
}

// entityCore carries the identity fields common to every variant.
type entityCore struct {
	id          string
	name        string
	templateKey string
	parentID    string
	ledger      Ledger
}

func newEntityCore(id, name, templateKey, parentID string, ledger Ledger) entityCore {
	ledger = slices.Clone(ledger)
	ledger.sortByDay()
	return entityCore{id: id, name: name, templateKey: templateKey, parentID: parentID, ledger: ledger}
}

func (c entityCore) ID() string          { return c.id }
func (c entityCore) Name() string        { return c.name }
func (c entityCore) TemplateKey() string { return c.templateKey }
func (c entityCore) ParentID() string    { return c.parentID }
func (c entityCore) Ledger() Ledger      { return c.ledger }

// window clamps [startDay, endDay] to the entity's first ledger day and
// reports whether any day remains.
func (c entityCore) window(startDay, endDay int) (int, bool) {
	if first := c.ledger.earliestDay(); first > startDay {
		startDay = first
	}
	return startDay, startDay <= endDay
}

// balanceDays is the day set shared by the balance-style variants:
// every ledger day plus the last day of each month, for growth.
func (c entityCore) balanceDays(startDay, endDay int) []int {
	from, ok := c.window(startDay, endDay)
	if !ok {
		return nil
	}
	days := c.ledger.daysInRange(from, endDay)
	days = append(days, lastDaysOfMonths(from, endDay)...)
	return sortedUnique(days)
}

// sortedUnique sorts a day list ascending and drops duplicates.
func sortedUnique(days []int) []int {
	slices.Sort(days)
	return slices.Compact(days)
}
