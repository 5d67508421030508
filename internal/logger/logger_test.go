package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	log := NewLogger("not-a-level", "development")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerDebugLevel(t *testing.T) {
	log := NewLogger("debug", "development")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestAnalysisLoggerFileStart(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogFileStart("run_001", "E0.csv")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "run_001", logEntry["run_id"])
	assert.Equal(t, "E0.csv", logEntry["file"])
	assert.Equal(t, "analysis", logEntry["component"])
}

func TestAnalysisLoggerFileComplete(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogFileComplete("run_001", "E0.csv", 380, 3, 0.26, 12.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(380), logEntry["rows"])
	assert.Equal(t, float64(3), logEntry["rows_dropped"])
	assert.Equal(t, 0.26, logEntry["draw_rate"])
}

func TestAnalysisLoggerFileFailure(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogFileFailure("run_001", "broken.csv", errors.New("no draw-odds column"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "broken.csv", logEntry["file"])
	assert.Equal(t, "no draw-odds column", logEntry["error"])
	assert.Equal(t, "error", logEntry["level"])
}

func TestAnalysisLoggerSchemaDetection(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogSchemaDetection("run_001", "E0.csv", "ftr", "b365d", "b365h", false)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "ftr", logEntry["result_col"])
	assert.Equal(t, "b365d", logEntry["draw_odds_col"])
	assert.Equal(t, false, logEntry["derived"])
}

func TestAnalysisLoggerReportWritten(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogReportWritten("run_001", "E0.csv", "reports/E0_draw_bins.csv", "draw_bins")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "reports/E0_draw_bins.csv", logEntry["path"])
	assert.Equal(t, "draw_bins", logEntry["kind"])
}

func TestAnalysisLoggerBacktestResult(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogBacktestResult("run_001", 215, 12.4, 0.0577)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(215), logEntry["picks"])
	assert.Equal(t, 12.4, logEntry["profit"])
}

func TestLoggerJSONFormat(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogFileComplete("run_001", "E0.csv", 380, 3, 0.26, 12.5)

	// Verify output is valid JSON
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	assert.NoError(t, err)
	assert.NotEmpty(t, logEntry)
}

func BenchmarkAnalysisLoggerFileComplete(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	analysisLogger := NewAnalysisLogger(log)

	for i := 0; i < b.N; i++ {
		analysisLogger.LogFileComplete("run_001", "E0.csv", 380, 3, 0.26, 12.5)
	}
}
