package plancast

import "fmt"

// WithLedgerEntry returns a copy of the entity with one more ledger
// entry. Entities are immutable values, so editing tools rebuild them.
func WithLedgerEntry(e Entity, entry LedgerEntry) (Entity, error) {
	ledger := append(Ledger{entry}, e.Ledger()...)
	switch v := e.(type) {
	case *Account:
		return NewAccount(v.ID(), v.Name(), v.TemplateKey(), v.ParentID(), ledger, v.GrowthRate()), nil
	case *Possession:
		return NewPossession(v.ID(), v.Name(), v.TemplateKey(), v.ParentID(), ledger, v.GrowthRate()), nil
	case *Holding:
		return NewHolding(v.ID(), v.Name(), v.TemplateKey(), v.ParentID(), ledger, v.Symbol(), v.GrowthRate()), nil
	case *Debt:
		return NewDebt(v.ID(), v.Name(), v.TemplateKey(), v.ParentID(), ledger,
			v.InterestRate(), v.PaymentAmount(), v.PaymentSchedule(), v.PaymentSourceID()), nil
	case *Income:
		return NewIncome(v.ID(), v.Name(), v.TemplateKey(), v.ParentID(), ledger,
			v.GrowthRate(), v.Schedule(), v.TargetID()), nil
	case *Expense:
		return NewExpense(v.ID(), v.Name(), v.TemplateKey(), v.ParentID(), ledger,
			v.GrowthRate(), v.Schedule(), v.SourceID()), nil
	}
	return nil, fmt.Errorf("entity %q cannot take ledger entries", e.ID())
}
