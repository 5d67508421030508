package report

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/draw-value/internal/analysis"
)

func TestOverview(t *testing.T) {
	doc := Overview("E0", 380, 26.05, "ftr", "b365d", "")

	assert.Contains(t, doc, "| file | E0 |")
	assert.Contains(t, doc, "| rows | 380 |")
	assert.Contains(t, doc, "| %draw_global | 26.05 |")
	assert.Contains(t, doc, "| result_col | ftr |")
	assert.Contains(t, doc, "| home_odds_col | - |", "absent columns render as a dash")
}

func TestSummary(t *testing.T) {
	params := SummaryParams{
		RunID:      "run_001",
		MinSamples: 30,
		DrawEdges:  []float64{0, 2.5, math.Inf(1)},
		HomeEdges:  []float64{0, 2.0, math.Inf(1)},
	}
	topDraw := []analysis.BinStat{
		{Label: "≤2.50", N: 120, Draws: 31, DrawRate: 0.2583, AvgDrawOdds: 3.235, EV: -0.1654},
	}

	doc := Summary("E0", params, topDraw, nil, false)

	assert.Contains(t, doc, "# Summary: E0")
	assert.Contains(t, doc, "run_id: run_001")
	assert.Contains(t, doc, "min_n: 30")
	assert.Contains(t, doc, "[0, 2.5, inf]")
	assert.Contains(t, doc, "≤2.50")
	assert.Contains(t, doc, "(No home-odds column detected)")
}

func TestCombinedSummary(t *testing.T) {
	combined := NewCombinedSummary()
	topDraw := []analysis.BinStat{{Label: ">3.50", N: 40, DrawRate: 0.3, AvgDrawOdds: 3.8, EV: 0.14}}
	topHome := []analysis.BinStat{{Label: "2.00–2.50", N: 50, DrawRate: 0.28, AvgHomeOdds: 2.2, AvgDrawOdds: 3.3, EV: -0.076}}

	combined.AddFile("E0", topDraw, topHome, true)
	combined.AddFile("E1", topDraw, nil, false)

	assert.Equal(t, 2, combined.Files())
	doc := combined.String()
	assert.Contains(t, doc, "# Combined summary")
	assert.Contains(t, doc, "## E0")
	assert.Contains(t, doc, "## E1")
	assert.Contains(t, doc, "### Home odds")
	assert.Equal(t, 1, strings.Count(doc, "### Home odds (grouped by home, EV uses draw odds)"))
}

func TestBlockYieldReport(t *testing.T) {
	summaries := map[int]analysis.YieldSummary{
		10: {Count: 21, Mean: 0.0525, Median: 0.04, Max: 0.9, Min: -0.5, PositiveShare: 0.62},
	}

	doc := BlockYieldReport("Rolling-window backtest", "window", 215, []int{10, 999}, summaries, true)

	assert.Contains(t, doc, "# Rolling-window backtest")
	assert.Contains(t, doc, "**Total picks filtered:** 215")
	assert.Contains(t, doc, "| 10 | 21 | 5.25 | 4.00 | 90.00 | -50.00 | 62.00 |")
	assert.NotContains(t, doc, "| 999 |", "sizes without a summary are omitted")
}

func TestBankReport(t *testing.T) {
	result := analysis.BankResult{
		FinalBank:         112.4,
		MaxDrawdown:       8.5,
		WorstLosingStreak: 7,
		Blocks:            []analysis.BlockBank{{Size: 50, Bank: 104.5}},
	}

	doc := BankReport(100, 1, result)

	assert.Contains(t, doc, "# Bankroll backtest")
	assert.Contains(t, doc, "**Initial bank:** 100.00")
	assert.Contains(t, doc, "**Final bank:** 112.40")
	assert.Contains(t, doc, "**Max drawdown:** 8.50")
	assert.Contains(t, doc, "**Worst losing streak:** 7 picks")
	assert.Contains(t, doc, "| 50 | 104.50 |")
}

func TestFormatEdges(t *testing.T) {
	assert.Equal(t, "[0, 2.25, 3.5, inf]", FormatEdges([]float64{0, 2.25, 3.5, math.Inf(1)}))
	assert.Equal(t, "[]", FormatEdges(nil))
}
