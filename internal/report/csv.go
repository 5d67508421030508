package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yourusername/draw-value/internal/analysis"
	"github.com/yourusername/draw-value/internal/models"
)

// WriteBinStatsCSV writes one row per bin. When withHomeAvg is set the
// cross-referential avg_home_odds column is included; avg_draw_odds is
// always present because it prices the EV in both modes.
func WriteBinStatsCSV(path string, stats []analysis.BinStat, withHomeAvg bool) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"bin", "n", "draws", "draw_rate_%", "prob_low_%", "prob_high_%"}
	if withHomeAvg {
		header = append(header, "avg_home_odds")
	}
	header = append(header, "avg_draw_odds", "ev_est", "enough_n")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range stats {
		row := []string{
			s.Label,
			strconv.Itoa(s.N),
			strconv.Itoa(s.Draws),
			fmt.Sprintf("%.2f", s.DrawRate*100),
			fmt.Sprintf("%.2f", s.ProbLowPct),
			fmt.Sprintf("%.2f", s.ProbHighPct),
		}
		if withHomeAvg {
			row = append(row, fmt.Sprintf("%.3f", s.AvgHomeOdds))
		}
		row = append(row,
			fmt.Sprintf("%.3f", s.AvgDrawOdds),
			fmt.Sprintf("%.4f", s.EV),
			strconv.FormatBool(s.Reliable),
		)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}

// WriteThresholdCSV writes the threshold sweep results.
func WriteThresholdCSV(path string, results []analysis.ThresholdResult) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"min_draw_odds", "n_bets", "n_hits", "profit", "yield"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			fmt.Sprintf("%.2f", r.Threshold),
			strconv.Itoa(r.Bets),
			strconv.Itoa(r.Hits),
			fmt.Sprintf("%.2f", r.Profit),
			fmt.Sprintf("%.4f", r.Yield),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}

// WritePatternsCSV writes the 1X2 pattern table.
func WritePatternsCSV(path string, rows []analysis.PatternRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"bucket", "matches", "draws", "draw_rate", "avg_home", "avg_draw", "avg_away"}); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Label,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Draws),
			fmt.Sprintf("%.4f", r.DrawRate),
			fmt.Sprintf("%.3f", r.AvgHome),
			fmt.Sprintf("%.3f", r.AvgDraw),
			fmt.Sprintf("%.3f", r.AvgAway),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}

// WriteCorrelationsCSV writes feature/profit Pearson correlations.
func WriteCorrelationsCSV(path string, correlations []analysis.FeatureCorrelation) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"feature", "pearson_r"}); err != nil {
		return err
	}
	for _, c := range correlations {
		if err := w.Write([]string{c.Feature, fmt.Sprintf("%.4f", c.R)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}

// WriteValueBetsCSV exports the filtered picks with their per-pick
// profit column for downstream correlation studies.
func WriteValueBetsCSV(path string, records []models.MatchRecord, stake float64) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"outcome", "home_odds", "draw_odds", "away_odds", "profit"}); err != nil {
		return err
	}
	for _, record := range records {
		if !record.HasOdds(true, true, true) {
			continue
		}
		profit := -stake
		if record.Outcome.IsDraw() {
			profit = (*record.DrawOdds - 1) * stake
		}
		row := []string{
			string(record.Outcome),
			fmt.Sprintf("%.2f", *record.HomeOdds),
			fmt.Sprintf("%.2f", *record.DrawOdds),
			fmt.Sprintf("%.2f", *record.AwayOdds),
			fmt.Sprintf("%.2f", profit),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}
