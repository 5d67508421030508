// Package dataset loads heterogeneous match CSVs into typed tables and
// resolves their schemas to the canonical column roles.
package dataset

import (
	"strconv"
	"strings"
)

// NullFloat64 is a float64 that may be missing. Missing values are
// carried explicitly rather than as NaN so downstream aggregation has
// to filter on purpose.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// Table is an immutable in-memory view of one input file with
// normalized column names.
type Table struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a table from a raw header and rows. Column names are
// normalized: trimmed, lowercased, inner spaces replaced with underscores.
func NewTable(name string, header []string, rows [][]string) *Table {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		normalized := NormalizeColumnName(h)
		columns[i] = normalized
		if _, exists := index[normalized]; !exists {
			index[normalized] = i
		}
	}
	return &Table{name: name, columns: columns, index: index, rows: rows}
}

// NormalizeColumnName applies the canonical header normalization.
func NormalizeColumnName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Name returns the table name (input file stem).
func (t *Table) Name() string { return t.name }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the normalized column names in file order.
func (t *Table) Columns() []string { return t.columns }

// HasColumn reports whether the normalized column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Strings returns the raw cell values of a column, or nil when the
// column does not exist.
func (t *Table) Strings(name string) []string {
	idx, ok := t.index[name]
	if !ok {
		return nil
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		if idx < len(row) {
			values[i] = strings.TrimSpace(row[idx])
		}
	}
	return values
}

// Floats parses a column as numbers. Empty or unparseable cells become
// invalid entries. Returns nil when the column does not exist.
func (t *Table) Floats(name string) []NullFloat64 {
	idx, ok := t.index[name]
	if !ok {
		return nil
	}
	values := make([]NullFloat64, len(t.rows))
	for i, row := range t.rows {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			values[i] = NullFloat64{Float64: f, Valid: true}
		}
	}
	return values
}

// IsNumeric reports whether a column parses predominantly as numbers:
// every non-empty cell must be numeric and at least one must be present.
func (t *Table) IsNumeric(name string) bool {
	idx, ok := t.index[name]
	if !ok {
		return false
	}
	parsed := 0
	for _, row := range t.rows {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return false
		}
		parsed++
	}
	return parsed > 0
}
