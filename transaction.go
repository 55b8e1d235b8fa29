package plancast

// Transaction instructs the Simulation to change one entity's value on
// one day. Optional fields are pointers: a correction replaces exactly
// the fields it carries, a delta adds exactly the fields it carries
// (absent fields count as zero). Transactions are consumed immediately
// during the replay and never persisted.
type Transaction struct {
	Day           int
	TargetID      string
	Amount        *float64
	ShareQuantity *float64
	SharePrice    *float64
	Correction    bool
}

func ref(v float64) *float64 { return &v }

// deltaAmount builds an additive transaction changing the target's
// amount by v.
func deltaAmount(day int, targetID string, v float64) Transaction {
	return Transaction{Day: day, TargetID: targetID, Amount: ref(v)}
}

// priceCorrection builds a correction that sets only the share price,
// leaving amount and quantity at their last committed values.
func priceCorrection(day int, targetID string, price float64) Transaction {
	return Transaction{Day: day, TargetID: targetID, SharePrice: ref(price), Correction: true}
}

// entryCorrection builds a correction carrying the ledger entry's
// fields verbatim; fields absent from the entry stay untouched.
func entryCorrection(day int, targetID string, e LedgerEntry) Transaction {
	tx := Transaction{Day: day, TargetID: targetID, Correction: true}
	if e.Amount.Valid {
		tx.Amount = ref(e.Amount.Decimal.InexactFloat64())
	}
	if e.ShareQuantity.Valid {
		tx.ShareQuantity = ref(e.ShareQuantity.Decimal.InexactFloat64())
	}
	if e.SharePrice.Valid {
		tx.SharePrice = ref(e.SharePrice.Decimal.InexactFloat64())
	}
	return tx
}
