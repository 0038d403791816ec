// Package fs renders audit reports to files on disk.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/siteaudit"
)

// Ensure JSONRenderer implements siteaudit.ReportRenderer at compile time.
var _ siteaudit.ReportRenderer = (*JSONRenderer)(nil)

// JSONRenderer writes the full report as indented JSON to report.json in the
// output directory.
type JSONRenderer struct {
	dir string
}

// NewJSONRenderer creates a new JSONRenderer writing to dir.
func NewJSONRenderer(dir string) *JSONRenderer {
	return &JSONRenderer{dir: dir}
}

// Path returns the file the renderer writes to.
func (r *JSONRenderer) Path() string {
	return filepath.Join(r.dir, "report.json")
}

// Render encodes the report and writes it to disk.
func (r *JSONRenderer) Render(ctx context.Context, report *siteaudit.Report) error {
	if report == nil {
		return siteaudit.Errorf(siteaudit.EINVALID, "report required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(r.Path(), append(data, '\n'), 0644)
}
