package plancast

// Debt is a liability with scheduled payments and monthly interest
// accrual. Its balance is negative while outstanding; ledger entries
// override the principal directly.
type Debt struct {
	entityCore
	interestRate    float64
	paymentAmount   float64
	paymentSchedule Schedule
	paymentSourceID string
}

// NewDebt creates a debt entity. interestRate is the annualized rate
// accrued monthly; each payment moves paymentAmount from the source
// entity to the debt on the schedule's days.
func NewDebt(id, name, templateKey, parentID string, ledger Ledger, interestRate, paymentAmount float64, paymentSchedule Schedule, paymentSourceID string) *Debt {
	return &Debt{
		entityCore:      newEntityCore(id, name, templateKey, parentID, ledger),
		interestRate:    interestRate,
		paymentAmount:   paymentAmount,
		paymentSchedule: paymentSchedule,
		paymentSourceID: paymentSourceID,
	}
}

// InterestRate returns the annualized interest rate.
func (d *Debt) InterestRate() float64 { return d.interestRate }

// PaymentAmount returns the amount moved per scheduled payment.
func (d *Debt) PaymentAmount() float64 { return d.paymentAmount }

// PaymentSchedule returns the payment recurrence rule.
func (d *Debt) PaymentSchedule() Schedule { return d.paymentSchedule }

// PaymentSourceID returns the id of the entity payments are drawn from.
func (d *Debt) PaymentSourceID() string { return d.paymentSourceID }

// SimulationDays returns ledger days (principal corrections),
// month-ends (interest accrual) and scheduled payment days in range.
func (d *Debt) SimulationDays(startDay, endDay int) []int {
	from, ok := d.window(startDay, endDay)
	if !ok {
		return nil
	}
	days := d.ledger.daysInRange(from, endDay)
	days = append(days, lastDaysOfMonths(from, endDay)...)
	days = append(days, d.paymentSchedule.DaysInRange(from, endDay)...)
	return sortedUnique(days)
}

// SimulateDay applies, in order: a ledger correction when one exists
// for the day (and nothing else), the scheduled payment, then monthly
// interest. Once the balance reaches zero or above the debt is settled
// and emits nothing further.
//
// Interest is computed from the balance read before the same-day
// payment: both transactions derive from the same committed state and
// are applied after this call returns.
func (d *Debt) SimulateDay(day int, history *History) []Transaction {
	if entry, ok := d.ledger.entryOn(day); ok {
		return []Transaction{entryCorrection(day, d.id, entry)}
	}

	var balance float64
	if last, ok := history.Latest(); ok {
		balance = last.Value()
		if balance >= 0 {
			return nil // paid off
		}
	}

	var txs []Transaction

	if days := d.paymentSchedule.DaysInRange(day, day); len(days) == 1 && days[0] == day && d.paymentAmount > 0 {
		txs = append(txs,
			deltaAmount(day, d.paymentSourceID, -d.paymentAmount),
			deltaAmount(day, d.id, d.paymentAmount),
		)
	}

	on := DateOfDay(day)
	if on.Day() == on.EndOfMonth().Day() && d.interestRate != 0 && balance < 0 {
		interest := -balance * (d.interestRate / 12)
		txs = append(txs, deltaAmount(day, d.id, -interest))
	}

	return txs
}

// MarshalJSON implements json.Marshaler for Debt.
func (d *Debt) MarshalJSON() ([]byte, error) {
	var data jsonObjectWriter
	data.Append("interestRate", d.interestRate)
	data.Append("paymentAmount", d.paymentAmount)
	data.Append("paymentSchedule", d.paymentSchedule)
	data.Append("paymentSourceEntityId", d.paymentSourceID)
	return marshalEntityRecord(d.entityCore, DebtType, &data)
}
