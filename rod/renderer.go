// Package rod renders the audit report to PDF through a headless Chrome
// browser.
package rod

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/fs"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure PDFRenderer implements siteaudit.ReportRenderer at compile time.
var _ siteaudit.ReportRenderer = (*PDFRenderer)(nil)

// PDFRenderer renders the HTML report through Chrome's print pipeline and
// writes report.pdf to the output directory. PDFRenderer is safe for
// concurrent use by multiple goroutines.
type PDFRenderer struct {
	dir      string
	browser  *rod.Browser
	launcher *launcher.Launcher

	mu     sync.Mutex
	closed bool
}

// NewPDFRenderer launches a headless Chrome browser for PDF rendering.
// Close must be called when the renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewPDFRenderer(dir string) (*PDFRenderer, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &PDFRenderer{dir: dir, browser: browser, launcher: l}, nil
}

// Path returns the file the renderer writes to.
func (r *PDFRenderer) Path() string {
	return filepath.Join(r.dir, "report.pdf")
}

// Render writes the report as HTML to a temporary directory, loads it in the
// browser, and prints it to PDF.
func (r *PDFRenderer) Render(ctx context.Context, report *siteaudit.Report) error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return siteaudit.Errorf(siteaudit.EINVALID, "renderer is closed")
	}
	if report == nil {
		return siteaudit.Errorf(siteaudit.EINVALID, "report required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "siteaudit-pdf-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	html := fs.NewHTMLRenderer(tmpDir)
	if err := html.Render(ctx, report); err != nil {
		return err
	}
	htmlPath, err := filepath.Abs(html.Path())
	if err != nil {
		return err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return err
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.Navigate("file://" + htmlPath); err != nil {
		return err
	}
	if err := page.WaitLoad(); err != nil {
		return err
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{PrintBackground: true})
	if err != nil {
		return err
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(r.Path(), data, 0644)
}

// Close releases browser resources. It is safe to call more than once.
func (r *PDFRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	return r.browser.Close()
}
