// Package main provides the entry point for the draw value analysis CLI tool.
package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/draw-value/internal/config"
	applogger "github.com/yourusername/draw-value/internal/logger"
	"github.com/yourusername/draw-value/internal/metrics"
	"github.com/yourusername/draw-value/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		outDir     = flag.String("outdir", "", "Override report output directory")
		drawBins   = flag.String("draw-bins", "", "Comma-separated draw-odds bin edges (inf allowed)")
		homeBins   = flag.String("home-bins", "", "Comma-separated home-odds bin edges (inf allowed)")
		minSamples = flag.Int("min-n", 0, "Override minimum bin size for reliability")
	)
	flag.Parse()

	files := flag.Args()

	cfg := loadConfig(*configPath)
	applyOverrides(cfg, *outDir, *drawBins, *homeBins, *minSamples)

	logger := applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	metrics.InitRegistry()

	svc, err := service.NewAnalyzerService(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create analyzer: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"run_id": svc.RunID(),
		"files":  len(files),
		"outdir": cfg.Reports.OutputDir,
	}).Info("Starting analysis")

	summary, err := svc.Run(files)
	if err != nil {
		logger.Fatalf("Analysis failed: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"run_id":    summary.RunID,
		"processed": summary.Processed,
		"failed":    summary.Failed,
	}).Info("Analysis complete")
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func applyOverrides(cfg *config.Config, outDir, drawBins, homeBins string, minSamples int) {
	if outDir != "" {
		cfg.Reports.OutputDir = outDir
	}
	if drawBins != "" {
		cfg.Analysis.DrawEdges = drawBins
	}
	if homeBins != "" {
		cfg.Analysis.HomeEdges = homeBins
	}
	if minSamples > 0 {
		cfg.Analysis.MinSamples = minSamples
	}
}
