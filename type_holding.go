package plancast

// Holding is a share-based entity (stock, ETF, fund). Growth applies to
// the share price, not the dollar amount: the position size only changes
// through ledger entries.
type Holding struct {
	entityCore
	symbol     string
	growthRate float64
}

// NewHolding creates a holding entity.
func NewHolding(id, name, templateKey, parentID string, ledger Ledger, symbol string, growthRate float64) *Holding {
	return &Holding{entityCore: newEntityCore(id, name, templateKey, parentID, ledger), symbol: symbol, growthRate: growthRate}
}

// Symbol returns the holding's ticker symbol.
func (h *Holding) Symbol() string { return h.symbol }

// GrowthRate returns the annualized growth rate.
func (h *Holding) GrowthRate() float64 { return h.growthRate }

// SimulationDays returns every ledger day and every month-end in range.
func (h *Holding) SimulationDays(startDay, endDay int) []int {
	return h.balanceDays(startDay, endDay)
}

// SimulateDay emits a verbatim correction on ledger days. On month-ends
// it emits a correction that moves only the share price by one month of
// growth, leaving amount and quantity at their committed values.
func (h *Holding) SimulateDay(day int, history *History) []Transaction {
	if entry, ok := h.ledger.entryOn(day); ok {
		return []Transaction{entryCorrection(day, h.id, entry)}
	}

	last, ok := history.Latest()
	if h.growthRate == 0 || !ok || last.SharePrice <= 0 {
		return nil
	}
	price := last.SharePrice + last.SharePrice*(h.growthRate/12)
	return []Transaction{priceCorrection(day, h.id, price)}
}

// MarshalJSON implements json.Marshaler for Holding.
func (h *Holding) MarshalJSON() ([]byte, error) {
	var data jsonObjectWriter
	data.Append("symbol", h.symbol)
	data.Append("growthRate", h.growthRate)
	return marshalEntityRecord(h.entityCore, HoldingType, &data)
}
