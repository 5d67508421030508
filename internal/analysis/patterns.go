package analysis

import "github.com/yourusername/draw-value/internal/models"

// PatternRow captures the 1X2 price pattern of one home-odds bin.
type PatternRow struct {
	Label    string
	Matches  int
	Draws    int
	DrawRate float64
	AvgHome  float64
	AvgDraw  float64
	AvgAway  float64
}

// HomeOddsPatterns groups records by home-odds bin and reports match
// counts, draw rates and the mean 1X2 prices per bin. Rows missing any
// of the three odds are excluded; empty bins are omitted.
func HomeOddsPatterns(records []models.MatchRecord, p Partition) []PatternRow {
	type acc struct {
		matches int
		draws   int
		homeSum float64
		drawSum float64
		awaySum float64
	}
	accumulators := make([]acc, p.Bins())

	for _, record := range records {
		if !record.HasOdds(true, true, true) {
			continue
		}
		bin := p.Locate(*record.HomeOdds)
		if bin < 0 {
			continue
		}
		a := &accumulators[bin]
		a.matches++
		if record.Outcome.IsDraw() {
			a.draws++
		}
		a.homeSum += *record.HomeOdds
		a.drawSum += *record.DrawOdds
		a.awaySum += *record.AwayOdds
	}

	rows := make([]PatternRow, 0, p.Bins())
	for i, a := range accumulators {
		if a.matches == 0 {
			continue
		}
		n := float64(a.matches)
		rows = append(rows, PatternRow{
			Label:    p.Labels()[i],
			Matches:  a.matches,
			Draws:    a.draws,
			DrawRate: float64(a.draws) / n,
			AvgHome:  a.homeSum / n,
			AvgDraw:  a.drawSum / n,
			AvgAway:  a.awaySum / n,
		})
	}
	return rows
}
