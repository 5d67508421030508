package analysis

import "github.com/shopspring/decimal"

// BankConfig parameterizes the sequential bankroll simulation.
type BankConfig struct {
	InitialBank float64
	Stake       float64
	BlockSizes  []int
}

// BlockBank is the bank level after a fixed number of picks.
type BlockBank struct {
	Size int
	Bank float64
}

// BankResult summarizes a bankroll simulation over a P&L sequence.
type BankResult struct {
	FinalBank         float64
	MaxDrawdown       float64 // absolute peak-to-trough, bank units
	WorstLosingStreak int
	Blocks            []BlockBank
}

// SimulateBank replays the P&L sequence against a bankroll, tracking
// peak drawdown and the longest run of losing picks. Money arithmetic
// runs on decimals so long sequences of odd cent values stay exact.
func SimulateBank(pnls []float64, cfg BankConfig) BankResult {
	bank := decimal.NewFromFloat(cfg.InitialBank)
	peak := bank
	maxDrawdown := decimal.Zero
	worstStreak, currentStreak := 0, 0

	banks := make([]decimal.Decimal, 0, len(pnls))
	for _, pnl := range pnls {
		bank = bank.Add(decimal.NewFromFloat(pnl))
		banks = append(banks, bank)

		if bank.GreaterThan(peak) {
			peak = bank
		}
		if drawdown := peak.Sub(bank); drawdown.GreaterThan(maxDrawdown) {
			maxDrawdown = drawdown
		}

		if pnl < 0 {
			currentStreak++
			if currentStreak > worstStreak {
				worstStreak = currentStreak
			}
		} else {
			currentStreak = 0
		}
	}

	result := BankResult{
		FinalBank:         cfg.InitialBank,
		MaxDrawdown:       maxDrawdown.InexactFloat64(),
		WorstLosingStreak: worstStreak,
	}
	if len(banks) > 0 {
		result.FinalBank = banks[len(banks)-1].InexactFloat64()
	}

	for _, size := range cfg.BlockSizes {
		if len(banks) == 0 {
			break
		}
		idx := size - 1
		if idx >= len(banks) {
			idx = len(banks) - 1
		}
		result.Blocks = append(result.Blocks, BlockBank{Size: size, Bank: banks[idx].InexactFloat64()})
	}
	return result
}
