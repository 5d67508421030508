// Package service orchestrates the analysis and backtest workflows.
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

// AnalyzerService runs the per-file draw value analysis workflow
type AnalyzerService struct {
	cfg         *config.Config
	log         *logrus.Logger
	analysisLog *logger.AnalysisLogger
	drawBins    analysis.Partition
	homeBins    analysis.Partition
	runID       string
}

// combinedTopN caps the per-file bin lists in the combined summary.
const combinedTopN = 3

// FileResult holds the outcome of analysing one input file
type FileResult struct {
	Name         string
	Rows         int
	Dropped      int
	DrawRate     float64
	TopDraw      []analysis.BinStat
	TopHome      []analysis.BinStat
	CombinedDraw []analysis.BinStat
	CombinedHome []analysis.BinStat
	HomeResolved bool
}

// RunSummary holds the outcome of a whole analysis run
type RunSummary struct {
	RunID     string
	Processed int
	Failed    int
	Results   []FileResult
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(cfg *config.Config, log *logrus.Logger) (*AnalyzerService, error) {
	drawEdges, err := analysis.ParseEdges(cfg.Analysis.DrawEdges, analysis.DefaultDrawEdges)
	if err != nil {
		return nil, fmt.Errorf("draw edges: %w", err)
	}
	homeEdges, err := analysis.ParseEdges(cfg.Analysis.HomeEdges, analysis.DefaultHomeEdges)
	if err != nil {
		return nil, fmt.Errorf("home edges: %w", err)
	}
	drawBins, err := analysis.NewPartition(drawEdges)
	if err != nil {
		return nil, fmt.Errorf("draw edges: %w", err)
	}
	homeBins, err := analysis.NewPartition(homeEdges)
	if err != nil {
		return nil, fmt.Errorf("home edges: %w", err)
	}

	return &AnalyzerService{
		cfg:         cfg,
		log:         log,
		analysisLog: logger.NewAnalysisLogger(log),
		drawBins:    drawBins,
		homeBins:    homeBins,
		runID:       uuid.New().String(),
	}, nil
}

// RunID returns the identifier assigned to this service's runs.
func (s *AnalyzerService) RunID() string {
	return s.runID
}

// Run analyses every input file and writes per-file reports plus a
// combined summary. A failing file is logged and skipped; the run
// continues with the remaining files.
func (s *AnalyzerService) Run(files []string) (*RunSummary, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	summary := &RunSummary{RunID: s.runID}
	combined := report.NewCombinedSummary()

	for _, file := range files {
		result, err := s.AnalyzeFile(file)
		if err != nil {
			summary.Failed++
			metrics.RecordFileFailed()
			s.analysisLog.LogFileFailure(s.runID, file, err)
			continue
		}
		summary.Processed++
		summary.Results = append(summary.Results, *result)
		combined.AddFile(result.Name, result.CombinedDraw, result.CombinedHome, result.HomeResolved)
	}

	if summary.Processed == 0 {
		return summary, fmt.Errorf("all %d input files failed", len(files))
	}

	combinedPath := filepath.Join(s.cfg.Reports.OutputDir, "_combined_summary.md")
	if err := report.WriteFile(combinedPath, []byte(combined.String())); err != nil {
		return summary, fmt.Errorf("combined summary: %w", err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, "", combinedPath, "combined_summary")

	return summary, nil
}

// AnalyzeFile runs the full pipeline for a single CSV file: schema
// resolution, draw-odds and home-odds binning, and report output.
func (s *AnalyzerService) AnalyzeFile(path string) (*FileResult, error) {
	start := time.Now()
	s.analysisLog.LogFileStart(s.runID, path)

	table, err := dataset.ReadCSV(path)
	if err != nil {
		return nil, err
	}

	schema, err := dataset.Resolve(table)
	if err != nil {
		return nil, err
	}
	s.analysisLog.LogSchemaDetection(s.runID, table.Name(), schema.ResultColumn, schema.DrawOdds, schema.HomeOdds, schema.Derived())

	records := dataset.Records(table, schema)
	dropped := table.Len() - len(records)
	if dropped > 0 {
		metrics.RecordRowsDropped(dropped)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", table.Name(), models.ErrEmptyTable)
	}

	draws := 0
	for _, r := range records {
		if r.Outcome.IsDraw() {
			draws++
		}
	}
	drawRate := float64(draws) / float64(len(records))

	drawStats := analysis.GroupByDrawOdds(records, s.drawBins, s.cfg.Analysis.MinSamples)
	homeResolved := schema.HomeOdds != ""
	var homeStats []analysis.BinStat
	if homeResolved {
		homeStats = analysis.GroupByHomeOdds(records, s.homeBins, s.cfg.Analysis.MinSamples)
	}

	result := &FileResult{
		Name:         table.Name(),
		Rows:         table.Len(),
		Dropped:      dropped,
		DrawRate:     drawRate,
		TopDraw:      analysis.TopByEV(drawStats, s.cfg.Analysis.TopN),
		TopHome:      analysis.TopByEV(homeStats, s.cfg.Analysis.TopN),
		CombinedDraw: analysis.TopByEV(drawStats, combinedTopN),
		CombinedHome: analysis.TopByEV(homeStats, combinedTopN),
		HomeResolved: homeResolved,
	}

	if err := s.writeFileReports(table.Name(), schema, result, drawStats, homeStats); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordFileProcessed(table.Len(), elapsed.Seconds())
	s.analysisLog.LogFileComplete(s.runID, path, table.Len(), dropped, drawRate, float64(elapsed.Milliseconds()))

	return result, nil
}

func (s *AnalyzerService) writeFileReports(name string, schema dataset.Schema, result *FileResult, drawStats, homeStats []analysis.BinStat) error {
	outDir := s.cfg.Reports.OutputDir

	overview := report.Overview(name, result.Rows, result.DrawRate*100, schema.ResultColumn, schema.DrawOdds, schema.HomeOdds)
	if err := s.writeReport(name, filepath.Join(outDir, name+"_overview.md"), []byte(overview), "overview"); err != nil {
		return err
	}

	drawPath := filepath.Join(outDir, name+"_by_draw_odds.csv")
	if err := report.WriteBinStatsCSV(drawPath, drawStats, false); err != nil {
		return fmt.Errorf("%s draw bins: %w", name, err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, name, drawPath, "by_draw_odds")

	if result.HomeResolved {
		homePath := filepath.Join(outDir, name+"_by_home_odds.csv")
		if err := report.WriteBinStatsCSV(homePath, homeStats, true); err != nil {
			return fmt.Errorf("%s home bins: %w", name, err)
		}
		metrics.RecordReportWritten()
		s.analysisLog.LogReportWritten(s.runID, name, homePath, "by_home_odds")
	}

	params := report.SummaryParams{
		RunID:      s.runID,
		MinSamples: s.cfg.Analysis.MinSamples,
		DrawEdges:  s.drawBins.Edges(),
		HomeEdges:  s.homeBins.Edges(),
	}
	summary := report.Summary(name, params, result.TopDraw, result.TopHome, result.HomeResolved)
	return s.writeReport(name, filepath.Join(outDir, name+"_summary.md"), []byte(summary), "summary")
}

func (s *AnalyzerService) writeReport(name, path string, content []byte, kind string) error {
	if err := report.WriteFile(path, content); err != nil {
		return fmt.Errorf("%s %s: %w", name, kind, err)
	}
	metrics.RecordReportWritten()
	s.analysisLog.LogReportWritten(s.runID, name, path, kind)
	return nil
}
