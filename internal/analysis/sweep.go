package analysis

import "github.com/yourusername/draw-value/internal/models"

// ThresholdSweepConfig defines the stepped grid of minimum draw-odds
// thresholds, half-open at Stop.
type ThresholdSweepConfig struct {
	Start float64
	Stop  float64
	Step  float64
	Stake float64
}

// ThresholdResult is the aggregate outcome of backing every draw at or
// above one threshold.
type ThresholdResult struct {
	Threshold float64
	Bets      int
	Hits      int
	Profit    float64
	Yield     float64 // Profit / Bets
}

// SweepThresholds filters the records at each threshold of the grid
// and computes the aggregate P&L. Thresholds matching zero rows are
// omitted, not emitted as zero rows. Sample counts are monotonically
// non-increasing across the grid.
func SweepThresholds(records []models.MatchRecord, cfg ThresholdSweepConfig) []ThresholdResult {
	if cfg.Step <= 0 {
		return nil
	}
	stake := cfg.Stake
	if stake == 0 {
		stake = DefaultStake
	}

	results := []ThresholdResult{}
	for i := 0; ; i++ {
		threshold := cfg.Start + float64(i)*cfg.Step
		if threshold >= cfg.Stop {
			break
		}

		bets, hits := 0, 0
		profit := 0.0
		for _, record := range records {
			if record.DrawOdds == nil || *record.DrawOdds < threshold {
				continue
			}
			bets++
			if record.Outcome.IsDraw() {
				hits++
				profit += (*record.DrawOdds - 1) * stake
			} else {
				profit -= stake
			}
		}
		if bets == 0 {
			continue
		}
		results = append(results, ThresholdResult{
			Threshold: threshold,
			Bets:      bets,
			Hits:      hits,
			Profit:    profit,
			Yield:     profit / float64(bets),
		})
	}
	return results
}
