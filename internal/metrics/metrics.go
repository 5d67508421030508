// Package metrics provides centralized Prometheus metrics registry for the analyzer.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	FilesProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "draw_value",
		Name:      "files_processed_total",
		Help:      "Total number of input files analysed successfully",
	})
	FilesFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "draw_value",
		Name:      "files_failed_total",
		Help:      "Total number of input files that failed analysis",
	})
	RowsDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "draw_value",
		Name:      "rows_dropped_total",
		Help:      "Total number of rows dropped for missing or unclassifiable values",
	})
	ReportsWrittenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "draw_value",
		Name:      "reports_written_total",
		Help:      "Total number of report artifacts written",
	})
	BacktestRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "draw_value",
		Name:      "backtest_runs_total",
		Help:      "Total number of backtest runs",
	})
)

// Gauge metrics
var (
	LastRunRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "draw_value",
		Name:      "last_run_rows",
		Help:      "Number of rows in the most recent analysis run",
	})
	LastBacktestYield = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "draw_value",
		Name:      "last_backtest_yield",
		Help:      "Yield per unit staked of the most recent backtest",
	})
)

// Histogram metrics
var (
	FileAnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "draw_value",
		Name:      "file_analysis_duration_seconds",
		Help:      "Duration of per-file analysis in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "draw_value",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of backtest runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(FilesProcessedTotal)
		registry.MustRegister(FilesFailedTotal)
		registry.MustRegister(RowsDroppedTotal)
		registry.MustRegister(ReportsWrittenTotal)
		registry.MustRegister(BacktestRunsTotal)

		// Register gauge metrics
		registry.MustRegister(LastRunRows)
		registry.MustRegister(LastBacktestYield)

		// Register histogram metrics
		registry.MustRegister(FileAnalysisDuration)
		registry.MustRegister(BacktestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// RecordFileProcessed records a successful file analysis.
func RecordFileProcessed(rows int, durationSeconds float64) {
	FilesProcessedTotal.Inc()
	LastRunRows.Set(float64(rows))
	FileAnalysisDuration.Observe(durationSeconds)
}

// RecordFileFailed records a failed file analysis.
func RecordFileFailed() {
	FilesFailedTotal.Inc()
}

// RecordRowsDropped records rows dropped during schema resolution.
func RecordRowsDropped(n int) {
	RowsDroppedTotal.Add(float64(n))
}

// RecordReportWritten records a written report artifact.
func RecordReportWritten() {
	ReportsWrittenTotal.Inc()
}

// RecordBacktest records a completed backtest run.
func RecordBacktest(yield, durationSeconds float64) {
	BacktestRunsTotal.Inc()
	LastBacktestYield.Set(yield)
	BacktestDuration.Observe(durationSeconds)
}
