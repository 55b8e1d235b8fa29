package plancast

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeSimulationDaysFollowSchedule(t *testing.T) {
	entry := day(2024, time.January, 1)
	sched := mustSchedule(t, ScheduleConfig{
		Type:        Monthly,
		DaysOfMonth: []int{1},
		Start:       NewDate(2024, time.January, 1),
	})
	salary := NewIncome("salary", "Salary", "income", "", Ledger{
		{Day: entry, Amount: nd("1000")},
	}, 0, sched, "checking")

	got := salary.SimulationDays(entry, day(2024, time.March, 31))
	want := []int{entry, day(2024, time.February, 1), day(2024, time.March, 1)}
	assert.Equal(t, want, got)
}

func TestIncomeExtrapolation(t *testing.T) {
	entry := day(2024, time.January, 1)
	sched := mustSchedule(t, ScheduleConfig{
		Type:        Monthly,
		DaysOfMonth: []int{1},
		Start:       NewDate(2024, time.January, 1),
	})
	salary := NewIncome("salary", "Salary", "income", "", Ledger{
		{Day: entry, Amount: nd("1000")},
	}, 0.05, sched, "checking")

	// On the entry day itself the amount is the base.
	txs := salary.SimulateDay(entry, nil)
	require.Len(t, txs, 1)
	assert.InDelta(t, 1000, *txs[0].Amount, 1e-9)
	assert.False(t, txs[0].Correction)
	assert.Equal(t, "checking", txs[0].TargetID)

	// A year later the base has grown at 5%/yr, prorated on 365.25.
	later := entry + 365
	txs = salary.SimulateDay(later, nil)
	require.Len(t, txs, 1)
	want := 1000 * math.Pow(1.05, 365.0/365.25)
	assert.InDelta(t, want, *txs[0].Amount, 1e-9)
}

func TestIncomeWithoutBaseAmountIsSilent(t *testing.T) {
	sched := mustSchedule(t, ScheduleConfig{
		Type:        Monthly,
		DaysOfMonth: []int{1},
		Start:       NewDate(2024, time.January, 1),
	})

	t.Run("no ledger entry yet", func(t *testing.T) {
		salary := NewIncome("salary", "Salary", "income", "", nil, 0.05, sched, "checking")
		assert.Nil(t, salary.SimulateDay(day(2024, time.February, 1), nil))
	})

	t.Run("zero base amount", func(t *testing.T) {
		salary := NewIncome("salary", "Salary", "income", "", Ledger{
			{Day: day(2024, time.January, 1), Amount: nd("0")},
		}, 0.05, sched, "checking")
		assert.Nil(t, salary.SimulateDay(day(2024, time.February, 1), nil))
	})

	t.Run("entry without amount", func(t *testing.T) {
		salary := NewIncome("salary", "Salary", "income", "", Ledger{
			{Day: day(2024, time.January, 1)},
		}, 0.05, sched, "checking")
		assert.Nil(t, salary.SimulateDay(day(2024, time.February, 1), nil))
	})
}

func TestExpenseDebitsSource(t *testing.T) {
	entry := day(2024, time.January, 1)
	sched := mustSchedule(t, ScheduleConfig{
		Type:        Monthly,
		DaysOfMonth: []int{1},
		Start:       NewDate(2024, time.January, 1),
	})
	rent := NewExpense("rent", "Rent", "expense", "", Ledger{
		{Day: entry, Amount: nd("800")},
	}, 0, sched, "checking")

	txs := rent.SimulateDay(entry, nil)
	require.Len(t, txs, 1)
	assert.InDelta(t, -800, *txs[0].Amount, 1e-9)
	assert.Equal(t, "checking", txs[0].TargetID)
}
