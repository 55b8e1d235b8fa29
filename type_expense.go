package plancast

// Expense is a recurring outflow (rent, groceries, insurance) drawn
// from a source entity on a schedule. Like Income, the amount
// extrapolates from the most recent ledger entry at the growth rate.
type Expense struct {
	entityCore
	growthRate float64
	schedule   Schedule
	sourceID   string
}

// NewExpense creates an expense entity.
func NewExpense(id, name, templateKey, parentID string, ledger Ledger, growthRate float64, schedule Schedule, sourceID string) *Expense {
	return &Expense{
		entityCore: newEntityCore(id, name, templateKey, parentID, ledger),
		growthRate: growthRate,
		schedule:   schedule,
		sourceID:   sourceID,
	}
}

// GrowthRate returns the annualized growth rate of the amount.
func (x *Expense) GrowthRate() float64 { return x.growthRate }

// Schedule returns the recurrence rule the expense fires on.
func (x *Expense) Schedule() Schedule { return x.schedule }

// SourceID returns the id of the entity the expense is drawn from.
func (x *Expense) SourceID() string { return x.sourceID }

// SimulationDays returns only the schedule's days in range.
func (x *Expense) SimulationDays(startDay, endDay int) []int {
	from, ok := x.window(startDay, endDay)
	if !ok {
		return nil
	}
	return sortedUnique(x.schedule.DaysInRange(from, endDay))
}

// SimulateDay debits the extrapolated amount from the source entity.
func (x *Expense) SimulateDay(day int, _ *History) []Transaction {
	amount, ok := extrapolatedAmount(x.ledger, x.growthRate, day)
	if !ok {
		return nil
	}
	return []Transaction{deltaAmount(day, x.sourceID, -amount)}
}

// MarshalJSON implements json.Marshaler for Expense.
func (x *Expense) MarshalJSON() ([]byte, error) {
	var data jsonObjectWriter
	data.Append("growthRate", x.growthRate)
	data.Append("schedule", x.schedule)
	data.Append("sourceEntityId", x.sourceID)
	return marshalEntityRecord(x.entityCore, ExpenseType, &data)
}
