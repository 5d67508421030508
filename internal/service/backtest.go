package service

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/draw-value/internal/analysis"
	"github.com/yourusername/draw-value/internal/config"
	"github.com/yourusername/draw-value/internal/dataset"
	"github.com/yourusername/draw-value/internal/logger"
	"github.com/yourusername/draw-value/internal/metrics"
	"github.com/yourusername/draw-value/internal/models"
	"github.com/yourusername/draw-value/internal/report"
)

// BacktestService runs flat-stake backtests over filtered picks
type BacktestService struct {
	cfg         *config.Config
	log         *logrus.Logger
	analysisLog *logger.AnalysisLogger
	runID       string
}

// NewBacktestService creates a new backtest service
func NewBacktestService(cfg *config.Config, log *logrus.Logger) *BacktestService {
	return &BacktestService{
		cfg:         cfg,
		log:         log,
		analysisLog: logger.NewAnalysisLogger(log),
		runID:       uuid.New().String(),
	}
}

// RunID returns the identifier assigned to this service's runs.
func (s *BacktestService) RunID() string {
	return s.runID
}

// LoadPicks reads every input file, resolves its schema and applies the
// configured odds-range filter. Picks keep file order, then row order.
// A failing file is logged and skipped.
func (s *BacktestService) LoadPicks(files []string) ([]models.MatchRecord, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	filter := analysis.RangeFilter{
		HomeMin: s.cfg.Backtest.Filter.HomeMin,
		HomeMax: s.cfg.Backtest.Filter.HomeMax,
		DrawMin: s.cfg.Backtest.Filter.DrawMin,
	}

	var picks []models.MatchRecord
	loaded := 0
	for _, file := range files {
		table, err := dataset.ReadCSV(file)
		if err != nil {
			s.analysisLog.LogFileFailure(s.runID, file, err)
			continue
		}
		schema, err := dataset.Resolve(table)
		if err != nil {
			s.analysisLog.LogFileFailure(s.runID, file, err)
			continue
		}
		records := dataset.Records(table, schema)
		dropped := table.Len() - len(records)
		if dropped > 0 {
			metrics.RecordRowsDropped(dropped)
		}
		picks = append(picks, filter.Apply(records)...)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("all %d input files failed", len(files))
	}

	s.log.WithFields(logrus.Fields{
		"run_id": s.runID,
		"files":  loaded,
		"picks":  len(picks),
	}).Info("Picks loaded")

	return picks, nil
}

// Thresholds sweeps minimum draw-odds thresholds over the picks and
// writes one CSV row per threshold with at least one bet.
func (s *BacktestService) Thresholds(picks []models.MatchRecord) ([]analysis.ThresholdResult, error) {
	start := time.Now()
	results := analysis.SweepThresholds(picks, analysis.ThresholdSweepConfig{
		Start: s.cfg.Backtest.Threshold.Start,
		Stop:  s.cfg.Backtest.Threshold.Stop,
		Step:  s.cfg.Backtest.Threshold.Step,
		Stake: s.cfg.Backtest.Stake,
	})

	path := filepath.Join(s.cfg.Reports.OutputDir, "threshold_sweep.csv")
	if err := report.WriteThresholdCSV(path, results); err != nil {
		return nil, fmt.Errorf("threshold sweep: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "threshold_sweep")

	s.recordRun(picks, time.Since(start))
	return results, nil
}

// Chunks splits the pick sequence into consecutive fixed-size blocks
// and reports the yield distribution per block size.
func (s *BacktestService) Chunks(picks []models.MatchRecord) error {
	start := time.Now()
	pnls := analysis.PnLSeries(picks, s.cfg.Backtest.Stake)

	sizes := s.blockSizes()
	summaries := make(map[int]analysis.YieldSummary, len(sizes))
	for _, size := range sizes {
		summaries[size] = analysis.SummarizeYields(analysis.ChunkYields(pnls, size))
	}

	doc := report.BlockYieldReport("Chunked backtest", "block", len(picks), sizes, summaries, false)
	path := filepath.Join(s.cfg.Reports.OutputDir, "backtest_chunks.md")
	if err := report.WriteFile(path, []byte(doc)); err != nil {
		return fmt.Errorf("chunk report: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "backtest_chunks")

	s.recordRun(picks, time.Since(start))
	return nil
}

// Rolling computes yields over every contiguous window of each
// configured size and reports the distribution per window size.
func (s *BacktestService) Rolling(picks []models.MatchRecord) error {
	start := time.Now()
	pnls := analysis.PnLSeries(picks, s.cfg.Backtest.Stake)

	sizes := s.windowSizes()
	summaries := make(map[int]analysis.YieldSummary, len(sizes))
	for _, size := range sizes {
		summaries[size] = analysis.SummarizeYields(analysis.RollingYields(pnls, size))
	}

	doc := report.BlockYieldReport("Rolling-window backtest", "window", len(picks), sizes, summaries, true)
	path := filepath.Join(s.cfg.Reports.OutputDir, "backtest_rolling.md")
	if err := report.WriteFile(path, []byte(doc)); err != nil {
		return fmt.Errorf("rolling report: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "backtest_rolling")

	s.recordRun(picks, time.Since(start))
	return nil
}

// Bank simulates a sequential flat-stake bank over the picks and
// reports the final bank, maximum drawdown and worst losing streak.
func (s *BacktestService) Bank(picks []models.MatchRecord) (analysis.BankResult, error) {
	start := time.Now()
	pnls := analysis.PnLSeries(picks, s.cfg.Backtest.Stake)

	result := analysis.SimulateBank(pnls, analysis.BankConfig{
		InitialBank: s.cfg.Backtest.InitialBank,
		Stake:       s.cfg.Backtest.Stake,
		BlockSizes:  s.blockSizes(),
	})

	doc := report.BankReport(s.cfg.Backtest.InitialBank, s.cfg.Backtest.Stake, result)
	path := filepath.Join(s.cfg.Reports.OutputDir, "backtest_bank.md")
	if err := report.WriteFile(path, []byte(doc)); err != nil {
		return result, fmt.Errorf("bank report: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "backtest_bank")

	s.recordRun(picks, time.Since(start))
	return result, nil
}

// Export writes the raw value-bet picks together with the home-odds
// 1X2 pattern table and feature/profit correlations.
func (s *BacktestService) Export(picks []models.MatchRecord) error {
	start := time.Now()
	outDir := s.cfg.Reports.OutputDir

	path := filepath.Join(outDir, "value_bets.csv")
	if err := report.WriteValueBetsCSV(path, picks, s.cfg.Backtest.Stake); err != nil {
		return fmt.Errorf("value bets: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "value_bets")

	homeEdges, err := analysis.ParseEdges(s.cfg.Analysis.HomeEdges, analysis.DefaultHomeEdges)
	if err != nil {
		return fmt.Errorf("home edges: %w", err)
	}
	homeBins, err := analysis.NewPartition(homeEdges)
	if err != nil {
		return fmt.Errorf("home edges: %w", err)
	}

	path = filepath.Join(outDir, "patterns_1x2.csv")
	if err := report.WritePatternsCSV(path, analysis.HomeOddsPatterns(picks, homeBins)); err != nil {
		return fmt.Errorf("patterns: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "patterns_1x2")

	path = filepath.Join(outDir, "correlations.csv")
	if err := report.WriteCorrelationsCSV(path, analysis.ProfitCorrelations(picks, s.cfg.Backtest.Stake)); err != nil {
		return fmt.Errorf("correlations: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", path, "correlations")

	s.recordRun(picks, time.Since(start))
	return nil
}

func (s *BacktestService) recordRun(picks []models.MatchRecord, elapsed time.Duration) {
	pnls := analysis.PnLSeries(picks, s.cfg.Backtest.Stake)
	profit := 0.0
	for _, p := range pnls {
		profit += p
	}
	yield := 0.0
	if staked := float64(len(pnls)) * s.cfg.Backtest.Stake; staked > 0 {
		yield = profit / staked
	}
	metrics.RecordBacktest(yield, elapsed.Seconds())
	s.analysisLog.LogBacktestResult(s.runID, len(picks), profit, yield)
}

func (s *BacktestService) blockSizes() []int {
	if len(s.cfg.Backtest.BlockSizes) > 0 {
		return s.cfg.Backtest.BlockSizes
	}
	return analysis.DefaultBlockSizes
}

func (s *BacktestService) windowSizes() []int {
	if len(s.cfg.Backtest.WindowSizes) > 0 {
		return s.cfg.Backtest.WindowSizes
	}
	return analysis.DefaultWindowSizes
}
