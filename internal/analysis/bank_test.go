package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateBank(t *testing.T) {
	// Bank path: 100 -> 102.5 -> 101.5 -> 100.5 -> 103
	pnls := []float64{2.5, -1, -1, 2.5}
	result := SimulateBank(pnls, BankConfig{InitialBank: 100, Stake: 1})

	assert.InDelta(t, 103.0, result.FinalBank, 1e-9)
	assert.InDelta(t, 2.0, result.MaxDrawdown, 1e-9, "peak 102.5 to trough 100.5")
	assert.Equal(t, 2, result.WorstLosingStreak)
}

func TestSimulateBankLosingStreakResets(t *testing.T) {
	pnls := []float64{-1, -1, 2.5, -1, -1, -1, 2.5}
	result := SimulateBank(pnls, BankConfig{InitialBank: 100, Stake: 1})
	assert.Equal(t, 3, result.WorstLosingStreak)
}

func TestSimulateBankBlocks(t *testing.T) {
	pnls := []float64{1, 1, 1, 1}
	result := SimulateBank(pnls, BankConfig{InitialBank: 100, Stake: 1, BlockSizes: []int{2, 10}})

	require.Len(t, result.Blocks, 2)
	assert.Equal(t, 2, result.Blocks[0].Size)
	assert.InDelta(t, 102.0, result.Blocks[0].Bank, 1e-9)

	// Block size beyond the sequence clamps to the final bank
	assert.Equal(t, 10, result.Blocks[1].Size)
	assert.InDelta(t, 104.0, result.Blocks[1].Bank, 1e-9)
}

func TestSimulateBankEmptySequence(t *testing.T) {
	result := SimulateBank(nil, BankConfig{InitialBank: 100, Stake: 1, BlockSizes: []int{10}})
	assert.InDelta(t, 100.0, result.FinalBank, 1e-9)
	assert.Zero(t, result.MaxDrawdown)
	assert.Zero(t, result.WorstLosingStreak)
	assert.Empty(t, result.Blocks)
}

func TestSimulateBankExactCentArithmetic(t *testing.T) {
	// Repeated 0.1 additions drift under float64; the ledger must not
	pnls := make([]float64, 1000)
	for i := range pnls {
		pnls[i] = 0.1
	}
	result := SimulateBank(pnls, BankConfig{InitialBank: 100, Stake: 1})
	assert.Equal(t, 200.0, result.FinalBank)
}
