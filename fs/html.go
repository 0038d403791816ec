package fs

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"os"
	"path/filepath"

	"github.com/fwojciec/siteaudit"
)

//go:embed report.html.tmpl
var reportTemplate string

// Ensure HTMLRenderer implements siteaudit.ReportRenderer at compile time.
var _ siteaudit.ReportRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer writes a human-readable report to report.html in the output
// directory.
type HTMLRenderer struct {
	dir  string
	tmpl *template.Template
}

// NewHTMLRenderer creates a new HTMLRenderer writing to dir.
func NewHTMLRenderer(dir string) *HTMLRenderer {
	return &HTMLRenderer{
		dir:  dir,
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Path returns the file the renderer writes to.
func (r *HTMLRenderer) Path() string {
	return filepath.Join(r.dir, "report.html")
}

// Render executes the report template and writes the result to disk.
func (r *HTMLRenderer) Render(ctx context.Context, report *siteaudit.Report) error {
	if report == nil {
		return siteaudit.Errorf(siteaudit.EINVALID, "report required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, report); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(r.Path(), buf.Bytes(), 0644)
}
