package plancast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingPriceGrowth(t *testing.T) {
	start := day(2024, time.January, 1)
	etf := NewHolding("etf", "World ETF", "holding", "", Ledger{
		{Day: start, ShareQuantity: nd("10"), SharePrice: nd("100")},
	}, "SWDA", 0.06)

	sim, err := NewSimulation([]Entity{etf, NewFallback()}, 1, start)
	require.NoError(t, err)

	// The ledger entry sets the position: 10 shares at 100.
	assert.InDelta(t, 1000, sim.EntityValueOn("etf", start), 1e-9)

	// At month-end only the price moves: 100 * (1 + 0.06/12) = 100.5.
	jan31 := day(2024, time.January, 31)
	assert.InDelta(t, 10*100.5, sim.EntityValueOn("etf", jan31), 1e-9)
}

func TestHoldingQuantityOnlyChangesThroughLedger(t *testing.T) {
	start := day(2024, time.January, 1)
	buyMore := day(2024, time.February, 15)
	etf := NewHolding("etf", "World ETF", "holding", "", Ledger{
		{Day: start, ShareQuantity: nd("10"), SharePrice: nd("100")},
		{Day: buyMore, ShareQuantity: nd("20")},
	}, "SWDA", 0)

	sim, err := NewSimulation([]Entity{etf, NewFallback()}, 1, start)
	require.NoError(t, err)

	// The second entry carries only a quantity; the committed price is
	// kept, not zeroed.
	assert.InDelta(t, 20*100, sim.EntityValueOn("etf", buyMore), 1e-9)
}

func TestHoldingNoGrowthWithoutPrice(t *testing.T) {
	etf := NewHolding("etf", "World ETF", "holding", "", nil, "SWDA", 0.06)

	var h History
	if txs := etf.SimulateDay(day(2024, time.January, 31), &h); txs != nil {
		t.Errorf("SimulateDay() on empty history = %+v, want nil", txs)
	}

	require.NoError(t, h.Append(Snapshot{Day: 1, ShareQuantity: 10}))
	if txs := etf.SimulateDay(day(2024, time.January, 31), &h); txs != nil {
		t.Errorf("SimulateDay() with zero price = %+v, want nil", txs)
	}
}

func TestPossessionDepreciation(t *testing.T) {
	start := day(2024, time.January, 1)
	car := NewPossession("car", "Car", "possession", "", Ledger{
		{Day: start, Amount: nd("24000")},
	}, -0.12)

	sim, err := NewSimulation([]Entity{car, NewFallback()}, 1, start)
	require.NoError(t, err)

	// One month of depreciation at -12%/yr is -1%.
	jan31 := day(2024, time.January, 31)
	assert.InDelta(t, 24000*0.99, sim.EntityValueOn("car", jan31), 1e-9)
}
