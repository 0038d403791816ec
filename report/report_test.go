package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildState(t *testing.T) *siteaudit.CrawlState {
	t.Helper()

	state := siteaudit.NewCrawlState()

	state.MarkVisited("https://acme.test/")
	state.SetStatus("https://acme.test/", 200)
	state.SetPage("https://acme.test/", &siteaudit.PageRecord{
		URL:         "https://acme.test/",
		Title:       "Acme Widgets — quality industrial widgets",
		Description: strings.Repeat("Widgets for every industrial need. ", 4),
		H1:          "Welcome",
		MetaTags:    map[string]string{"keywords": "widgets"},
		ContentHash: "aaaa",
	})
	state.AddInternalLink("https://acme.test/", "https://acme.test/about")
	state.AddInternalLink("https://acme.test/", "https://acme.test/missing")
	state.AddExternalLink("https://acme.test/", "https://other.test/")

	state.MarkVisited("https://acme.test/about")
	state.SetStatus("https://acme.test/about", 200)
	state.SetPage("https://acme.test/about", &siteaudit.PageRecord{
		URL:         "https://acme.test/about",
		Title:       "Hi",
		ContentHash: "aaaa",
	})

	state.MarkVisited("https://acme.test/missing")
	state.SetStatus("https://acme.test/missing", 404)
	state.AddBroken(siteaudit.BrokenLink{URL: "https://acme.test/missing", Status: 404})

	state.AddStatic("https://acme.test/logo.png")

	return state
}

func TestBuild_Summary(t *testing.T) {
	t.Parallel()

	state := buildState(t)
	got := report.Build(state, nil, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	assert.Equal(t, 2, got.Summary.CrawledPages)
	assert.Equal(t, 1, got.Summary.StaticResources)
	assert.Equal(t, 1, got.Summary.BrokenLinks)
	assert.Equal(t, 2, got.Summary.InternalLinks)
	assert.Equal(t, 1, got.Summary.ExternalLinks)
}

func TestBuild_MetadataFindings(t *testing.T) {
	t.Parallel()

	state := buildState(t)
	got := report.Build(state, nil, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	// about page: title "Hi" too short, no description, no h1
	assert.Equal(t, 1, got.Summary.TitlesOutOfRange)
	assert.Equal(t, 1, got.Summary.MissingDescriptions)
	assert.Equal(t, 1, got.Summary.MissingH1s)
	assert.Equal(t, 0, got.Summary.MissingTitles)

	joined := strings.Join(got.Issues, "\n")
	assert.Contains(t, joined, "missing description: https://acme.test/about")
	assert.Contains(t, joined, "missing h1: https://acme.test/about")
	assert.Contains(t, joined, "broken link: https://acme.test/missing (status 404)")
}

func TestBuild_DuplicateContent(t *testing.T) {
	t.Parallel()

	state := buildState(t)
	got := report.Build(state, nil, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	assert.Equal(t, 2, got.Summary.DuplicateContentPages)
	joined := strings.Join(got.Issues, "\n")
	assert.Contains(t, joined, "duplicate content on 2 pages")
}

func TestBuild_Reconciliation(t *testing.T) {
	t.Parallel()

	state := buildState(t)
	sitemapURLs := []string{"https://acme.test/", "https://acme.test/pricing"}

	got := report.Build(state, sitemapURLs, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	require.NotNil(t, got.Reconciliation)
	assert.Contains(t, got.Reconciliation.NotInSitemap, "https://acme.test/about")
	assert.Equal(t, []string{"https://acme.test/pricing"}, got.Reconciliation.InSitemapNotCrawled)
}

func TestBuild_PagesSortedAndComplete(t *testing.T) {
	t.Parallel()

	state := buildState(t)
	got := report.Build(state, nil, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	require.Len(t, got.Pages, 3)
	assert.Equal(t, "https://acme.test/", got.Pages[0].URL)
	assert.Equal(t, "https://acme.test/about", got.Pages[1].URL)
	assert.Equal(t, "https://acme.test/missing", got.Pages[2].URL)
	assert.Equal(t, 404, got.Pages[2].StatusCode)
}

func TestBuild_JSONHasNoNullCollections(t *testing.T) {
	t.Parallel()

	state := siteaudit.NewCrawlState()
	state.MarkVisited("https://acme.test/")
	state.SetStatus("https://acme.test/", 200)
	state.SetPage("https://acme.test/", &siteaudit.PageRecord{URL: "https://acme.test/"})

	got := report.Build(state, nil, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "null")
}

func TestBuild_AssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	state := siteaudit.NewCrawlState()
	got := report.Build(state, nil, siteaudit.DefaultLimits, "https://acme.test/", "https://acme.test")

	assert.NotEmpty(t, got.ID)
	assert.False(t, got.GeneratedAt.IsZero())
}
