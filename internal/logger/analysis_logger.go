// Package logger provides analysis-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides dedicated logging for analysis runs.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogFileStart logs the start of a file analysis.
func (al *AnalysisLogger) LogFileStart(runID, file string) {
	al.WithFields(logrus.Fields{
		"run_id": runID,
		"file":   file,
	}).Info("File analysis started")
}

// LogFileComplete logs a completed file analysis.
func (al *AnalysisLogger) LogFileComplete(runID, file string, rows, dropped int, drawRate float64, durationMs float64) {
	al.WithFields(logrus.Fields{
		"run_id":       runID,
		"file":         file,
		"rows":         rows,
		"rows_dropped": dropped,
		"draw_rate":    drawRate,
		"duration_ms":  durationMs,
	}).Info("File analysis completed")
}

// LogFileFailure logs a failed file analysis.
func (al *AnalysisLogger) LogFileFailure(runID, file string, err error) {
	al.WithFields(logrus.Fields{
		"run_id": runID,
		"file":   file,
		"error":  err.Error(),
	}).Error("File analysis failed")
}

// LogSchemaDetection logs the resolved column schema for a file.
func (al *AnalysisLogger) LogSchemaDetection(runID, file, resultCol, drawOddsCol, homeOddsCol string, derived bool) {
	al.WithFields(logrus.Fields{
		"run_id":        runID,
		"file":          file,
		"result_col":    resultCol,
		"draw_odds_col": drawOddsCol,
		"home_odds_col": homeOddsCol,
		"derived":       derived,
	}).Debug("Column schema resolved")
}

// LogReportWritten logs a written report artifact.
func (al *AnalysisLogger) LogReportWritten(runID, file, path, kind string) {
	al.WithFields(logrus.Fields{
		"run_id": runID,
		"file":   file,
		"path":   path,
		"kind":   kind,
	}).Info("Report written")
}

// LogBacktestResult logs a backtest summary.
func (al *AnalysisLogger) LogBacktestResult(runID string, picks int, profit, yield float64) {
	al.WithFields(logrus.Fields{
		"run_id": runID,
		"picks":  picks,
		"profit": profit,
		"yield":  yield,
	}).Info("Backtest completed")
}
