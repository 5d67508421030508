// Package report renders analysis output to CSV and Markdown files.
// It is a thin adapter around the statistics engine; nothing here
// computes, it only formats and writes.
package report

import (
	"os"
	"path/filepath"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
