package analysis

import (
	"math"
	"testing"

	"github.com/yourusername/draw-value/internal/models"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}
	if r := Pearson(x, y); math.Abs(r-1) > 1e-12 {
		t.Errorf("expected r=1, got %v", r)
	}

	inverse := []float64{8, 6, 4, 2}
	if r := Pearson(x, inverse); math.Abs(r+1) > 1e-12 {
		t.Errorf("expected r=-1, got %v", r)
	}
}

func TestPearsonDegenerateInputs(t *testing.T) {
	if r := Pearson([]float64{1, 2}, []float64{1}); r != 0 {
		t.Errorf("expected 0 for length mismatch, got %v", r)
	}
	if r := Pearson(nil, nil); r != 0 {
		t.Errorf("expected 0 for empty series, got %v", r)
	}
	if r := Pearson([]float64{3, 3, 3}, []float64{1, 2, 3}); r != 0 {
		t.Errorf("expected 0 for constant series, got %v", r)
	}
}

func TestProfitCorrelationsFeatures(t *testing.T) {
	full := func(outcome models.Outcome, h, d, a float64) models.MatchRecord {
		return models.MatchRecord{Outcome: outcome, HomeOdds: &h, DrawOdds: &d, AwayOdds: &a}
	}
	records := []models.MatchRecord{
		full(models.OutcomeDraw, 2.4, 3.2, 3.0),
		full(models.OutcomeHome, 2.5, 3.3, 2.9),
		full(models.OutcomeDraw, 2.6, 3.4, 2.8),
		full(models.OutcomeAway, 2.7, 3.5, 2.7),
	}

	correlations := ProfitCorrelations(records, 1.0)

	want := []string{"home_odds", "draw_odds", "away_odds", "spread_max_min", "ratio_hd", "ratio_ad", "ratio_1x"}
	if len(correlations) != len(want) {
		t.Fatalf("expected %d features, got %d", len(want), len(correlations))
	}
	for i, name := range want {
		if correlations[i].Feature != name {
			t.Errorf("feature %d: expected %q, got %q", i, name, correlations[i].Feature)
		}
		if correlations[i].R < -1-1e-12 || correlations[i].R > 1+1e-12 {
			t.Errorf("feature %q: r out of range: %v", name, correlations[i].R)
		}
	}
}

func TestProfitCorrelationsSkipsIncompleteRows(t *testing.T) {
	records := []models.MatchRecord{
		{Outcome: models.OutcomeDraw, DrawOdds: fptr(3.2)}, // home and away missing
	}
	correlations := ProfitCorrelations(records, 1.0)
	for _, c := range correlations {
		if c.R != 0 {
			t.Errorf("expected 0 correlation with no complete rows, got %v for %s", c.R, c.Feature)
		}
	}
}
