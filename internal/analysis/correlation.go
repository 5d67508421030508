package analysis

import (
	"math"

	"github.com/yourusername/draw-value/internal/models"
)

// FeatureCorrelation pairs a derived odds feature with its Pearson
// correlation against per-pick profit.
type FeatureCorrelation struct {
	Feature string
	R       float64
}

// Pearson computes the Pearson correlation coefficient between two
// equal-length series. A zero denominator returns 0.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	n := float64(len(x))
	xMean, yMean := 0.0, 0.0
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= n
	yMean /= n

	num, xVar, yVar := 0.0, 0.0, 0.0
	for i := range x {
		dx := x[i] - xMean
		dy := y[i] - yMean
		num += dx * dy
		xVar += dx * dx
		yVar += dy * dy
	}
	denom := math.Sqrt(xVar) * math.Sqrt(yVar)
	if denom == 0 {
		return 0
	}
	return num / denom
}

// ProfitCorrelations correlates the per-pick draw-backing profit with
// the raw odds and the derived spread/ratio features. Only rows with
// all three odds present contribute.
func ProfitCorrelations(records []models.MatchRecord, stake float64) []FeatureCorrelation {
	type feature struct {
		name  string
		value func(h, d, a float64) float64
	}
	features := []feature{
		{"home_odds", func(h, d, a float64) float64 { return h }},
		{"draw_odds", func(h, d, a float64) float64 { return d }},
		{"away_odds", func(h, d, a float64) float64 { return a }},
		{"spread_max_min", func(h, d, a float64) float64 { return math.Max(h, math.Max(d, a)) - math.Min(h, math.Min(d, a)) }},
		{"ratio_hd", func(h, d, a float64) float64 { return h / d }},
		{"ratio_ad", func(h, d, a float64) float64 { return a / d }},
		{"ratio_1x", func(h, d, a float64) float64 { return h / a }},
	}

	profits := []float64{}
	columns := make([][]float64, len(features))
	for _, record := range records {
		if !record.HasOdds(true, true, true) {
			continue
		}
		h, d, a := *record.HomeOdds, *record.DrawOdds, *record.AwayOdds
		if record.Outcome.IsDraw() {
			profits = append(profits, (d-1)*stake)
		} else {
			profits = append(profits, -stake)
		}
		for i, f := range features {
			columns[i] = append(columns[i], f.value(h, d, a))
		}
	}

	correlations := make([]FeatureCorrelation, len(features))
	for i, f := range features {
		correlations[i] = FeatureCorrelation{Feature: f.name, R: Pearson(columns[i], profits)}
	}
	return correlations
}
