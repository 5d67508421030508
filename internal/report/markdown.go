package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/draw-value/internal/analysis"
)

// Overview renders the per-file overview document: row counts, the
// global draw rate and which columns were resolved to each role.
func Overview(name string, rows int, drawPct float64, resultCol, drawCol, homeCol string) string {
	var b strings.Builder
	b.WriteString("| metric | value |\n")
	b.WriteString("|:-------|:------|\n")
	fmt.Fprintf(&b, "| file | %s |\n", name)
	fmt.Fprintf(&b, "| rows | %d |\n", rows)
	fmt.Fprintf(&b, "| %%draw_global | %.2f |\n", drawPct)
	fmt.Fprintf(&b, "| result_col | %s |\n", orDash(resultCol))
	fmt.Fprintf(&b, "| draw_odds_col | %s |\n", orDash(drawCol))
	fmt.Fprintf(&b, "| home_odds_col | %s |\n", orDash(homeCol))
	return b.String()
}

// SummaryParams carries the run parameters echoed into summaries.
type SummaryParams struct {
	RunID      string
	MinSamples int
	DrawEdges  []float64
	HomeEdges  []float64
}

// Summary renders the per-file summary with the top EV bins among
// reliable bins, for both grouping modes.
func Summary(name string, params SummaryParams, topDraw, topHome []analysis.BinStat, homeResolved bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary: %s\n\n", name)
	b.WriteString("Parameters:\n")
	if params.RunID != "" {
		fmt.Fprintf(&b, "- run_id: %s\n", params.RunID)
	}
	fmt.Fprintf(&b, "- min_n: %d\n", params.MinSamples)
	fmt.Fprintf(&b, "- draw_bins: %s\n", FormatEdges(params.DrawEdges))
	fmt.Fprintf(&b, "- home_bins: %s\n\n", FormatEdges(params.HomeEdges))

	b.WriteString("## Top bins by EV (Draw odds bins, EV uses draw odds)\n")
	b.WriteString(binStatsTable(topDraw, false))
	b.WriteString("\n")

	b.WriteString("## Top bins by EV (Home odds bins, EV uses draw odds)\n")
	if homeResolved {
		b.WriteString(binStatsTable(topHome, true))
	} else {
		b.WriteString("(No home-odds column detected)\n")
	}
	return b.String()
}

// CombinedSummary accumulates the cross-file summary document.
type CombinedSummary struct {
	b     strings.Builder
	files int
}

// NewCombinedSummary starts an empty combined summary.
func NewCombinedSummary() *CombinedSummary {
	c := &CombinedSummary{}
	c.b.WriteString("# Combined summary (top EV bins per file)\n\n")
	return c
}

// AddFile appends one analyzed file's top bins.
func (c *CombinedSummary) AddFile(name string, topDraw, topHome []analysis.BinStat, homeResolved bool) {
	c.files++
	fmt.Fprintf(&c.b, "## %s\n", name)
	c.b.WriteString("### Draw odds (EV uses draw odds)\n")
	c.b.WriteString(binStatsTable(topDraw, false))
	if homeResolved {
		c.b.WriteString("### Home odds (grouped by home, EV uses draw odds)\n")
		c.b.WriteString(binStatsTable(topHome, true))
	}
	c.b.WriteString("\n")
}

// Files returns how many files were added.
func (c *CombinedSummary) Files() int { return c.files }

// String renders the accumulated document.
func (c *CombinedSummary) String() string { return c.b.String() }

// BlockYieldReport renders the chunked or rolling backtest tables: one
// row per block/window size. withPositive adds the share of strictly
// positive yields.
func BlockYieldReport(title string, unit string, totalPicks int, sizes []int, summaries map[int]analysis.YieldSummary, withPositive bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- **Total picks filtered:** %d\n\n", totalPicks)
	fmt.Fprintf(&b, "## Statistics per %s size\n\n", unit)

	b.WriteString(fmt.Sprintf("| %s (picks) | count | mean yield (%%) | median yield (%%) | max yield (%%) | min yield (%%) |", unit))
	if withPositive {
		b.WriteString(" positive (%) |")
	}
	b.WriteString("\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|")
	if withPositive {
		b.WriteString("---:|")
	}
	b.WriteString("\n")

	for _, size := range sizes {
		s, ok := summaries[size]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %d | %d | %.2f | %.2f | %.2f | %.2f |",
			size, s.Count, s.Mean*100, s.Median*100, s.Max*100, s.Min*100)
		if withPositive {
			fmt.Fprintf(&b, " %.2f |", s.PositiveShare*100)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// BankReport renders the bankroll simulation document.
func BankReport(initialBank, stake float64, result analysis.BankResult) string {
	var b strings.Builder
	b.WriteString("# Bankroll backtest\n\n")
	fmt.Fprintf(&b, "- **Initial bank:** %.2f\n", initialBank)
	fmt.Fprintf(&b, "- **Stake:** %.2f\n", stake)
	fmt.Fprintf(&b, "- **Final bank:** %.2f\n", result.FinalBank)
	fmt.Fprintf(&b, "- **Max drawdown:** %.2f\n", result.MaxDrawdown)
	fmt.Fprintf(&b, "- **Worst losing streak:** %d picks\n\n", result.WorstLosingStreak)

	if len(result.Blocks) > 0 {
		b.WriteString("## Bank after N picks\n\n")
		b.WriteString("| picks | bank |\n")
		b.WriteString("|---:|---:|\n")
		for _, block := range result.Blocks {
			fmt.Fprintf(&b, "| %d | %.2f |\n", block.Size, block.Bank)
		}
	}
	return b.String()
}

// FormatEdges renders an edge list the way summaries echo it.
func FormatEdges(edges []float64) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		if math.IsInf(e, 1) {
			parts[i] = "inf"
		} else {
			parts[i] = fmt.Sprintf("%g", e)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func binStatsTable(stats []analysis.BinStat, withHomeAvg bool) string {
	var b strings.Builder
	b.WriteString("| bin | n | draws | draw_rate_% | prob_low_% | prob_high_% |")
	if withHomeAvg {
		b.WriteString(" avg_home_odds |")
	}
	b.WriteString(" avg_draw_odds | ev_est |\n")
	b.WriteString("|:----|---:|---:|---:|---:|---:|")
	if withHomeAvg {
		b.WriteString("---:|")
	}
	b.WriteString("---:|---:|\n")

	for _, s := range stats {
		fmt.Fprintf(&b, "| %s | %d | %d | %.2f | %.2f | %.2f |",
			s.Label, s.N, s.Draws, s.DrawRate*100, s.ProbLowPct, s.ProbHighPct)
		if withHomeAvg {
			fmt.Fprintf(&b, " %.3f |", s.AvgHomeOdds)
		}
		fmt.Fprintf(&b, " %.3f | %.4f |\n", s.AvgDrawOdds, s.EV)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
