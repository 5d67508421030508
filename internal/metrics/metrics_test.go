package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistry(t *testing.T) {
	registry := InitRegistry()
	require.NotNil(t, registry)

	// Calling again returns the same registry
	assert.Same(t, registry, InitRegistry())
	assert.Same(t, registry, GetRegistry())
}

func TestRegisteredMetricsGather(t *testing.T) {
	registry := GetRegistry()

	RecordFileProcessed(380, 0.02)
	RecordFileFailed()
	RecordRowsDropped(3)
	RecordReportWritten()
	RecordBacktest(0.05, 0.5)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["draw_value_files_processed_total"])
	assert.True(t, names["draw_value_files_failed_total"])
	assert.True(t, names["draw_value_rows_dropped_total"])
	assert.True(t, names["draw_value_reports_written_total"])
	assert.True(t, names["draw_value_backtest_runs_total"])
	assert.True(t, names["draw_value_file_analysis_duration_seconds"])
}

func TestRecordHelpersDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordFileProcessed(0, 0)
		RecordFileFailed()
		RecordRowsDropped(0)
		RecordReportWritten()
		RecordBacktest(-0.1, 0.001)
	})
}
