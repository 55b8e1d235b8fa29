package plancast

// Account is a balance-style entity (checking, savings, brokerage cash)
// that compounds an annual growth rate monthly.
type Account struct {
	entityCore
	growthRate float64
}

// NewAccount creates an account entity. growthRate is an annualized
// fractional rate (0.05 for 5%/yr) compounded monthly.
func NewAccount(id, name, templateKey, parentID string, ledger Ledger, growthRate float64) *Account {
	return &Account{entityCore: newEntityCore(id, name, templateKey, parentID, ledger), growthRate: growthRate}
}

// GrowthRate returns the annualized growth rate.
func (a *Account) GrowthRate() float64 { return a.growthRate }

// SimulationDays returns every ledger day and every month-end in range.
func (a *Account) SimulationDays(startDay, endDay int) []int {
	return a.balanceDays(startDay, endDay)
}

// SimulateDay emits a verbatim correction on ledger days; on any other
// simulated day (a month-end) it emits one month of growth on the
// current balance.
func (a *Account) SimulateDay(day int, history *History) []Transaction {
	if entry, ok := a.ledger.entryOn(day); ok {
		return []Transaction{entryCorrection(day, a.id, entry)}
	}

	var value float64
	if last, ok := history.Latest(); ok {
		value = last.Value()
	}
	if a.growthRate == 0 || value == 0 {
		return nil
	}
	growth := value * (a.growthRate / 12)
	if growth == 0 {
		return nil
	}
	return []Transaction{deltaAmount(day, a.id, growth)}
}

// MarshalJSON implements json.Marshaler for Account.
func (a *Account) MarshalJSON() ([]byte, error) {
	var data jsonObjectWriter
	data.Append("growthRate", a.growthRate)
	return marshalEntityRecord(a.entityCore, AccountType, &data)
}
