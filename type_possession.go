package plancast

// Possession is a balance-style entity for physical property (house,
// car) appreciating or depreciating at an annual rate compounded
// monthly. Depreciation is a negative growth rate.
type Possession struct {
	entityCore
	growthRate float64
}

// NewPossession creates a possession entity.
func NewPossession(id, name, templateKey, parentID string, ledger Ledger, growthRate float64) *Possession {
	return &Possession{entityCore: newEntityCore(id, name, templateKey, parentID, ledger), growthRate: growthRate}
}

// GrowthRate returns the annualized growth rate.
func (p *Possession) GrowthRate() float64 { return p.growthRate }

// SimulationDays returns every ledger day and every month-end in range.
func (p *Possession) SimulationDays(startDay, endDay int) []int {
	return p.balanceDays(startDay, endDay)
}

// SimulateDay mirrors Account: ledger corrections take precedence,
// month-ends accrue one month of growth on the current value.
func (p *Possession) SimulateDay(day int, history *History) []Transaction {
	if entry, ok := p.ledger.entryOn(day); ok {
		return []Transaction{entryCorrection(day, p.id, entry)}
	}

	var value float64
	if last, ok := history.Latest(); ok {
		value = last.Value()
	}
	if p.growthRate == 0 || value == 0 {
		return nil
	}
	growth := value * (p.growthRate / 12)
	if growth == 0 {
		return nil
	}
	return []Transaction{deltaAmount(day, p.id, growth)}
}

// MarshalJSON implements json.Marshaler for Possession.
func (p *Possession) MarshalJSON() ([]byte, error) {
	var data jsonObjectWriter
	data.Append("growthRate", p.growthRate)
	return marshalEntityRecord(p.entityCore, PossessionType, &data)
}
