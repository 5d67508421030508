package analysis

import (
	"math"
	"sort"

	"github.com/yourusername/draw-value/internal/models"
)

// wilsonZ is the critical value for the fixed 95% confidence level.
const wilsonZ = 1.96

// BinStat holds the derived statistics for one odds bin. Computed once
// per run and never mutated.
type BinStat struct {
	Label       string
	N           int
	Draws       int
	DrawRate    float64 // fraction, draws/n exactly
	ProbLowPct  float64 // Wilson 95% lower bound, percent, unclamped
	ProbHighPct float64 // Wilson 95% upper bound, percent, unclamped
	AvgDrawOdds float64 // mean draw odds in the bin, prices the EV
	AvgHomeOdds float64 // informative only, cross-referential mode
	EV          float64 // DrawRate*AvgDrawOdds - 1
	Reliable    bool    // N >= min-sample threshold
}

// GroupByDrawOdds groups records into draw-odds bins and computes the
// per-bin statistics. EV uses the same draw odds that define the bins.
// Rows missing draw odds are excluded; empty bins are omitted.
func GroupByDrawOdds(records []models.MatchRecord, p Partition, minSamples int) []BinStat {
	return aggregate(records, p, minSamples, func(m models.MatchRecord) (float64, bool) {
		if m.DrawOdds == nil {
			return 0, false
		}
		return *m.DrawOdds, true
	}, false)
}

// GroupByHomeOdds groups records into home-odds bins while EV and the
// draw rate still use the draw-odds column. The grouping variable is
// never substituted into the EV formula; an earlier study priced the
// draw with home odds here and its results were invalid.
func GroupByHomeOdds(records []models.MatchRecord, p Partition, minSamples int) []BinStat {
	return aggregate(records, p, minSamples, func(m models.MatchRecord) (float64, bool) {
		if m.HomeOdds == nil || m.DrawOdds == nil {
			return 0, false
		}
		return *m.HomeOdds, true
	}, true)
}

// TopByEV returns the reliable bins ordered by descending EV, at most
// n entries.
func TopByEV(stats []BinStat, n int) []BinStat {
	reliable := make([]BinStat, 0, len(stats))
	for _, s := range stats {
		if s.Reliable {
			reliable = append(reliable, s)
		}
	}
	sort.SliceStable(reliable, func(i, j int) bool { return reliable[i].EV > reliable[j].EV })
	if n > 0 && len(reliable) > n {
		reliable = reliable[:n]
	}
	return reliable
}

type binAccumulator struct {
	n        int
	draws    float64
	drawSum  float64
	groupSum float64
}

func aggregate(records []models.MatchRecord, p Partition, minSamples int, groupValue func(models.MatchRecord) (float64, bool), withHomeAvg bool) []BinStat {
	accumulators := make([]binAccumulator, p.Bins())
	for _, record := range records {
		value, ok := groupValue(record)
		if !ok || record.DrawOdds == nil {
			continue
		}
		flag, ok := record.Outcome.DrawFlag()
		if !ok {
			continue
		}
		bin := p.Locate(value)
		if bin < 0 {
			continue
		}
		accumulators[bin].n++
		accumulators[bin].draws += flag
		accumulators[bin].drawSum += *record.DrawOdds
		accumulators[bin].groupSum += value
	}

	stats := make([]BinStat, 0, p.Bins())
	for i, acc := range accumulators {
		if acc.n == 0 {
			continue
		}
		n := float64(acc.n)
		rate := acc.draws / n
		avgDraw := acc.drawSum / n
		low, high := wilsonInterval(rate, n)
		stat := BinStat{
			Label:       p.Labels()[i],
			N:           acc.n,
			Draws:       int(acc.draws),
			DrawRate:    rate,
			ProbLowPct:  low,
			ProbHighPct: high,
			AvgDrawOdds: avgDraw,
			EV:          rate*avgDraw - 1,
			Reliable:    acc.n >= minSamples,
		}
		if withHomeAvg {
			stat.AvgHomeOdds = acc.groupSum / n
		}
		stats = append(stats, stat)
	}
	return stats
}

// wilsonInterval returns the Wilson score bounds for a binomial
// proportion, in percent. The bounds are deliberately not clamped to
// [0,100], matching the historical report outputs.
func wilsonInterval(p float64, n float64) (low, high float64) {
	if n <= 0 {
		return 0, 0
	}
	z := wilsonZ
	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt((p*(1-p)+z*z/(4*n))/n) / denom
	return (center - margin) * 100, (center + margin) * 100
}
