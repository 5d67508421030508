package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/draw-value/internal/models"
)

func fullRecord(outcome models.Outcome, h, d, a float64) models.MatchRecord {
	return models.MatchRecord{Outcome: outcome, HomeOdds: &h, DrawOdds: &d, AwayOdds: &a}
}

func TestHomeOddsPatterns(t *testing.T) {
	p, err := NewPartition([]float64{2.0, 3.0})
	require.NoError(t, err)

	records := []models.MatchRecord{
		fullRecord(models.OutcomeDraw, 2.4, 3.2, 3.0),
		fullRecord(models.OutcomeHome, 2.6, 3.4, 2.8),
		fullRecord(models.OutcomeAway, 1.5, 4.0, 6.0),
	}

	rows := HomeOddsPatterns(records, p)
	require.Len(t, rows, 2)

	assert.Equal(t, "≤2.00", rows[0].Label)
	assert.Equal(t, 1, rows[0].Matches)
	assert.Zero(t, rows[0].Draws)

	assert.Equal(t, "2.00–3.00", rows[1].Label)
	assert.Equal(t, 2, rows[1].Matches)
	assert.Equal(t, 1, rows[1].Draws)
	assert.InDelta(t, 0.5, rows[1].DrawRate, 1e-12)
	assert.InDelta(t, 2.5, rows[1].AvgHome, 1e-12)
	assert.InDelta(t, 3.3, rows[1].AvgDraw, 1e-12)
	assert.InDelta(t, 2.9, rows[1].AvgAway, 1e-12)
}

func TestHomeOddsPatternsRequiresAllOdds(t *testing.T) {
	p, err := NewPartition([]float64{3.0})
	require.NoError(t, err)

	records := []models.MatchRecord{
		{Outcome: models.OutcomeDraw, HomeOdds: fptr(2.5), DrawOdds: fptr(3.2)}, // away missing
	}
	assert.Empty(t, HomeOddsPatterns(records, p))
}

func TestRangeFilter(t *testing.T) {
	filter := RangeFilter{HomeMin: 2.4, HomeMax: 3.0, DrawMin: 3.3}

	records := []models.MatchRecord{
		fullRecord(models.OutcomeDraw, 2.4, 3.3, 3.0),  // in: both boundaries inclusive at min
		fullRecord(models.OutcomeHome, 3.0, 3.5, 2.5),  // out: home at the open upper bound
		fullRecord(models.OutcomeHome, 2.5, 3.2, 2.9),  // out: draw below minimum
		{Outcome: models.OutcomeAway, HomeOdds: fptr(2.5), DrawOdds: fptr(3.5)}, // out: away missing
	}

	filtered := filter.Apply(records)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.OutcomeDraw, filtered[0].Outcome)
}

func TestPnLSeries(t *testing.T) {
	records := []models.MatchRecord{
		record(models.OutcomeDraw, 2.5, 3.5),
		record(models.OutcomeHome, 2.5, 3.5),
		{Outcome: models.OutcomeDraw}, // no draw odds, skipped
	}

	pnls := PnLSeries(records, 2.0)
	require.Len(t, pnls, 2)
	assert.InDelta(t, 5.0, pnls[0], 1e-12)
	assert.InDelta(t, -2.0, pnls[1], 1e-12)
}
