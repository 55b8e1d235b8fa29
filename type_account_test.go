package plancast

import (
	"testing"
	"time"
)

func TestAccountSimulationDays(t *testing.T) {
	entry := day(2024, time.January, 10)
	account := NewAccount("a", "A", "account", "", Ledger{{Day: entry, Amount: nd("100")}}, 0.05)

	got := account.SimulationDays(day(2024, time.January, 1), day(2024, time.March, 15))
	want := []int{
		entry,
		day(2024, time.January, 31),
		day(2024, time.February, 29),
	}
	if len(got) != len(want) {
		t.Fatalf("SimulationDays() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SimulationDays()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAccountLedgerPrecedence(t *testing.T) {
	// A ledger entry on a month-end replaces the balance instead of
	// growing it.
	entry := day(2024, time.January, 31)
	account := NewAccount("a", "A", "account", "", Ledger{{Day: entry, Amount: nd("777")}}, 0.05)

	var h History
	if err := h.Append(Snapshot{Day: entry - 10, Amount: 100}); err != nil {
		t.Fatal(err)
	}
	txs := account.SimulateDay(entry, &h)
	if len(txs) != 1 || !txs[0].Correction || txs[0].Amount == nil || *txs[0].Amount != 777 {
		t.Fatalf("SimulateDay(ledger day) = %+v, want one correction to 777", txs)
	}
}

func TestAccountNoGrowthWithoutValue(t *testing.T) {
	account := NewAccount("a", "A", "account", "", nil, 0.05)

	var h History
	if txs := account.SimulateDay(day(2024, time.January, 31), &h); txs != nil {
		t.Errorf("SimulateDay() on empty history = %+v, want nil", txs)
	}

	flat := NewAccount("b", "B", "account", "", nil, 0)
	if err := h.Append(Snapshot{Day: 1, Amount: 100}); err != nil {
		t.Fatal(err)
	}
	if txs := flat.SimulateDay(day(2024, time.January, 31), &h); txs != nil {
		t.Errorf("SimulateDay() with zero rate = %+v, want nil", txs)
	}
}

func TestAccountWindowBeforeLedgerIsEmpty(t *testing.T) {
	entry := day(2024, time.June, 1)
	account := NewAccount("a", "A", "account", "", Ledger{{Day: entry, Amount: nd("100")}}, 0.05)

	if got := account.SimulationDays(day(2024, time.January, 1), day(2024, time.March, 1)); got != nil {
		t.Errorf("SimulationDays() before the first ledger day = %v, want nil", got)
	}
}
