package plancast

import "math"

// Income is a recurring inflow (salary, pension) credited to a target
// entity on a schedule. The amount extrapolates continuously from the
// most recent ledger entry at the annual growth rate.
type Income struct {
	entityCore
	growthRate float64
	schedule   Schedule
	targetID   string
}

// NewIncome creates an income entity.
func NewIncome(id, name, templateKey, parentID string, ledger Ledger, growthRate float64, schedule Schedule, targetID string) *Income {
	return &Income{
		entityCore: newEntityCore(id, name, templateKey, parentID, ledger),
		growthRate: growthRate,
		schedule:   schedule,
		targetID:   targetID,
	}
}

// GrowthRate returns the annualized growth rate of the amount.
func (n *Income) GrowthRate() float64 { return n.growthRate }

// Schedule returns the recurrence rule the income fires on.
func (n *Income) Schedule() Schedule { return n.schedule }

// TargetID returns the id of the entity the income is credited to.
func (n *Income) TargetID() string { return n.targetID }

// SimulationDays returns only the schedule's days in range; ledger days
// alone do not trigger a simulation.
func (n *Income) SimulationDays(startDay, endDay int) []int {
	from, ok := n.window(startDay, endDay)
	if !ok {
		return nil
	}
	return sortedUnique(n.schedule.DaysInRange(from, endDay))
}

// SimulateDay credits the extrapolated amount to the target entity.
func (n *Income) SimulateDay(day int, _ *History) []Transaction {
	amount, ok := extrapolatedAmount(n.ledger, n.growthRate, day)
	if !ok {
		return nil
	}
	return []Transaction{deltaAmount(day, n.targetID, amount)}
}

// extrapolatedAmount grows the most recent ledger amount at or before
// the given day by (1+rate)^years since that entry. It reports false
// when there is no entry yet or the base amount is zero.
func extrapolatedAmount(ledger Ledger, growthRate float64, day int) (float64, bool) {
	entry, ok := ledger.latestOnOrBefore(day)
	if !ok || !entry.Amount.Valid {
		return 0, false
	}
	base := entry.Amount.Decimal.InexactFloat64()
	if base == 0 {
		return 0, false
	}
	years := float64(day-entry.Day) / 365.25
	return base * math.Pow(1+growthRate, years), true
}

// MarshalJSON implements json.Marshaler for Income.
func (n *Income) MarshalJSON() ([]byte, error) {
	var data jsonObjectWriter
	data.Append("growthRate", n.growthRate)
	data.Append("schedule", n.schedule)
	data.Append("targetEntityId", n.targetID)
	return marshalEntityRecord(n.entityCore, IncomeType, &data)
}
