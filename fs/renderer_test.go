package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *siteaudit.Report {
	return &siteaudit.Report{
		ID:          "run-1",
		StartURL:    "https://acme.test/",
		Origin:      "https://acme.test",
		GeneratedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		Summary: siteaudit.Summary{
			CrawledPages: 2,
			BrokenLinks:  1,
		},
		Pages: []siteaudit.PageReport{
			{URL: "https://acme.test/", StatusCode: 200, Title: "Home", MetaTags: map[string]string{}},
			{URL: "https://acme.test/about", StatusCode: 200, Title: "About", MetaTags: map[string]string{}},
		},
		BrokenLinks: []siteaudit.BrokenLink{
			{URL: "https://acme.test/missing", Status: 404},
		},
		StaticResources: []string{"https://acme.test/logo.png"},
		SitemapURLs:     []string{},
		Reconciliation: &siteaudit.Reconciliation{
			NotInSitemap:        []string{"https://acme.test/about"},
			InSitemapNotCrawled: []string{},
		},
		Issues: []string{"broken link: https://acme.test/missing (status 404)"},
	}
}

func TestJSONRenderer_Render(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := fs.NewJSONRenderer(dir)

	err := r.Render(context.Background(), sampleReport())

	require.NoError(t, err)
	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)

	var decoded siteaudit.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded.ID)
	assert.Len(t, decoded.Pages, 2)
	assert.Equal(t, 404, decoded.BrokenLinks[0].Status)
}

func TestJSONRenderer_Render_NilReport(t *testing.T) {
	t.Parallel()

	r := fs.NewJSONRenderer(t.TempDir())

	err := r.Render(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, siteaudit.EINVALID, siteaudit.ErrorCode(err))
}

func TestJSONRenderer_Render_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() + "/nested/out"
	r := fs.NewJSONRenderer(dir)

	err := r.Render(context.Background(), sampleReport())

	require.NoError(t, err)
	_, err = os.Stat(r.Path())
	require.NoError(t, err)
}

func TestHTMLRenderer_Render(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := fs.NewHTMLRenderer(dir)

	err := r.Render(context.Background(), sampleReport())

	require.NoError(t, err)
	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "https://acme.test/about")
	assert.Contains(t, html, "broken link: https://acme.test/missing (status 404)")
	assert.Contains(t, html, "logo.png")
	assert.Contains(t, html, "run-1")
}

func TestHTMLRenderer_Render_EscapesContent(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.Pages[0].Title = `<script>alert("x")</script>`

	r := fs.NewHTMLRenderer(t.TempDir())
	err := r.Render(context.Background(), report)

	require.NoError(t, err)
	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), `<script>alert`)
}

func TestHTMLRenderer_Render_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := fs.NewHTMLRenderer(t.TempDir())
	err := r.Render(ctx, sampleReport())

	require.ErrorIs(t, err, context.Canceled)
}
