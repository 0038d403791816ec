package siteaudit

import (
	"context"
	"time"
)

// DefaultLimits are the conventional SEO bounds for metadata lengths.
var DefaultLimits = Limits{
	TitleMin:       30,
	TitleMax:       60,
	DescriptionMin: 120,
	DescriptionMax: 160,
}

// Limits configures the acceptable length ranges for page metadata.
type Limits struct {
	TitleMin       int `json:"titleMin"`
	TitleMax       int `json:"titleMax"`
	DescriptionMin int `json:"descriptionMin"`
	DescriptionMax int `json:"descriptionMax"`
}

// Summary holds the computed statistics for one audit run.
// Link counts are total instances (sum of per-page list lengths), not
// deduplicated targets.
type Summary struct {
	CrawledPages           int `json:"crawledPages"`
	StaticResources        int `json:"staticResources"`
	BrokenLinks            int `json:"brokenLinks"`
	InternalLinks          int `json:"internalLinks"`
	ExternalLinks          int `json:"externalLinks"`
	MissingTitles          int `json:"missingTitles"`
	MissingDescriptions    int `json:"missingDescriptions"`
	MissingH1s             int `json:"missingH1s"`
	TitlesOutOfRange       int `json:"titlesOutOfRange"`
	DescriptionsOutOfRange int `json:"descriptionsOutOfRange"`
	DuplicateContentPages  int `json:"duplicateContentPages"`
}

// PageReport is the merged record emitted for one crawled URL.
// Fields are always present: absent values default to the empty string,
// zero, or an empty structure, never a missing key.
type PageReport struct {
	URL             string            `json:"url"`
	StatusCode      int               `json:"statusCode"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	H1              string            `json:"h1"`
	InternalLinks   int               `json:"internalLinks"`
	ExternalLinks   int               `json:"externalLinks"`
	MetaTags        map[string]string `json:"metaTags"`
	ContentHash     string            `json:"contentHash"`
	Suggestions     MetaSuggestions   `json:"suggestions"`
	ContentAnalysis ContentAnalysis   `json:"contentAnalysis"`
}

// Report is the immutable snapshot assembled once at the end of a run.
type Report struct {
	ID              string          `json:"id"`
	StartURL        string          `json:"startUrl"`
	Origin          string          `json:"origin"`
	GeneratedAt     time.Time       `json:"generatedAt"`
	Summary         Summary         `json:"summary"`
	Pages           []PageReport    `json:"pages"`
	BrokenLinks     []BrokenLink    `json:"brokenLinks"`
	StaticResources []string        `json:"staticResources"`
	SitemapURLs     []string        `json:"sitemapUrls"`
	Reconciliation  *Reconciliation `json:"reconciliation"`

	// Issues is the advisory list of human-readable diagnostics, one per
	// detected problem instance. It never drives control flow.
	Issues []string `json:"issues"`
}

// ReportRenderer emits a report in one output format (JSON file, HTML file,
// PDF through a headless browser).
type ReportRenderer interface {
	Render(ctx context.Context, report *Report) error
}

// ReportStore persists run summaries as an audit trail across runs.
type ReportStore interface {
	SaveReport(ctx context.Context, report *Report) error
}

// DomainLimiter provides per-domain rate limiting for polite crawling.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
