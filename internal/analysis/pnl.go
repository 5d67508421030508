package analysis

import "github.com/yourusername/draw-value/internal/models"

// RangeFilter is the conjunctive odds-range predicate applied before
// the backtest sweeps: home odds in [HomeMin, HomeMax), draw odds at
// least DrawMin. Rows missing any of the three odds are excluded.
type RangeFilter struct {
	HomeMin float64
	HomeMax float64
	DrawMin float64
}

// Apply returns the records passing the filter, in input order.
func (f RangeFilter) Apply(records []models.MatchRecord) []models.MatchRecord {
	filtered := make([]models.MatchRecord, 0, len(records))
	for _, record := range records {
		if !record.HasOdds(true, true, true) {
			continue
		}
		if *record.HomeOdds < f.HomeMin || *record.HomeOdds >= f.HomeMax {
			continue
		}
		if *record.DrawOdds < f.DrawMin {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// PnLSeries computes the per-pick profit and loss of always backing
// the draw: (drawOdds-1)*stake on a draw, -stake otherwise. Rows
// without draw odds are skipped.
func PnLSeries(records []models.MatchRecord, stake float64) []float64 {
	pnls := make([]float64, 0, len(records))
	for _, record := range records {
		if record.DrawOdds == nil {
			continue
		}
		if record.Outcome.IsDraw() {
			pnls = append(pnls, (*record.DrawOdds-1)*stake)
		} else {
			pnls = append(pnls, -stake)
		}
	}
	return pnls
}
