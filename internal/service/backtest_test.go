package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/draw-value/internal/logger"
	"github.com/yourusername/draw-value/internal/models"
)

func TestBacktestLoadPicksAppliesFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backtest.Filter.HomeMin = 2.4
	cfg.Backtest.Filter.HomeMax = 2.6
	cfg.Backtest.Filter.DrawMin = 3.2

	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	dataDir := t.TempDir()
	file := writeFixtureCSV(t, dataDir, "E0.csv", fixtureRows())

	picks, err := svc.LoadPicks([]string{file})
	require.NoError(t, err)

	// Home odds in [2.4, 2.6) and draw odds >= 3.2
	assert.Len(t, picks, 2)
	for _, pick := range picks {
		require.NotNil(t, pick.HomeOdds)
		require.NotNil(t, pick.DrawOdds)
		assert.GreaterOrEqual(t, *pick.HomeOdds, 2.4)
		assert.Less(t, *pick.HomeOdds, 2.6)
		assert.GreaterOrEqual(t, *pick.DrawOdds, 3.2)
	}
}

func TestBacktestLoadPicksAllFilesFail(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	_, err := svc.LoadPicks([]string{filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}

func TestBacktestThresholds(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	dataDir := t.TempDir()
	file := writeFixtureCSV(t, dataDir, "E0.csv", fixtureRows())
	picks, err := svc.LoadPicks([]string{file})
	require.NoError(t, err)

	results, err := svc.Thresholds(picks)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// Raising the threshold can only shrink the bet count
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Bets, results[i-1].Bets)
	}

	_, err = os.Stat(filepath.Join(cfg.Reports.OutputDir, "threshold_sweep.csv"))
	assert.NoError(t, err)
}

func TestBacktestChunksAndRolling(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	dataDir := t.TempDir()
	file := writeFixtureCSV(t, dataDir, "E0.csv", fixtureRows())
	picks, err := svc.LoadPicks([]string{file})
	require.NoError(t, err)

	require.NoError(t, svc.Chunks(picks))
	require.NoError(t, svc.Rolling(picks))

	for _, name := range []string{"backtest_chunks.md", "backtest_rolling.md"} {
		_, err := os.Stat(filepath.Join(cfg.Reports.OutputDir, name))
		assert.NoError(t, err, "expected report %s", name)
	}
}

func TestBacktestBank(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	dataDir := t.TempDir()
	file := writeFixtureCSV(t, dataDir, "E0.csv", fixtureRows())
	picks, err := svc.LoadPicks([]string{file})
	require.NoError(t, err)

	result, err := svc.Bank(picks)
	require.NoError(t, err)
	assert.Greater(t, result.FinalBank, 0.0)
	assert.GreaterOrEqual(t, result.MaxDrawdown, 0.0)

	_, err = os.Stat(filepath.Join(cfg.Reports.OutputDir, "backtest_bank.md"))
	assert.NoError(t, err)
}

func TestBacktestExport(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	dataDir := t.TempDir()
	file := writeFixtureCSV(t, dataDir, "E0.csv", fixtureRows())
	picks, err := svc.LoadPicks([]string{file})
	require.NoError(t, err)

	require.NoError(t, svc.Export(picks))

	for _, name := range []string{"value_bets.csv", "patterns_1x2.csv", "correlations.csv"} {
		_, err := os.Stat(filepath.Join(cfg.Reports.OutputDir, name))
		assert.NoError(t, err, "expected report %s", name)
	}
}

func TestBacktestEmptyPicks(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBacktestService(cfg, logger.NewLogger("error", "development"))

	require.NoError(t, svc.Chunks([]models.MatchRecord{}))
	require.NoError(t, svc.Rolling([]models.MatchRecord{}))
}
