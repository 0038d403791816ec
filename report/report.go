// Package report assembles the final audit report from the accumulated crawl
// state. Building a report is a pure aggregation step: it reads the state,
// computes summary statistics and advisory issues, and never mutates its
// inputs.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/fwojciec/siteaudit"
	"github.com/google/uuid"
)

// Build assembles a Report snapshot from the crawl state and the discovered
// sitemap URLs. Every collection field in the result is non-nil so encoded
// output never contains missing keys or nulls.
func Build(state *siteaudit.CrawlState, sitemapURLs []string, limits siteaudit.Limits, startURL, origin string) *siteaudit.Report {
	visited := state.VisitedURLs()
	records := state.Pages()
	internal := state.InternalLinks()
	external := state.ExternalLinks()

	report := &siteaudit.Report{
		ID:              uuid.NewString(),
		StartURL:        startURL,
		Origin:          origin,
		GeneratedAt:     time.Now().UTC(),
		Pages:           make([]siteaudit.PageReport, 0, len(visited)),
		BrokenLinks:     state.BrokenLinks(),
		StaticResources: state.StaticResources(),
		SitemapURLs:     append([]string{}, sitemapURLs...),
		Reconciliation:  siteaudit.Reconcile(visited, sitemapURLs),
		Issues:          []string{},
	}
	if report.BrokenLinks == nil {
		report.BrokenLinks = []siteaudit.BrokenLink{}
	}

	hashes := make(map[string][]string)

	for _, url := range visited {
		page := siteaudit.PageReport{
			URL:           url,
			StatusCode:    state.StatusCode(url),
			InternalLinks: len(internal[url]),
			ExternalLinks: len(external[url]),
			MetaTags:      map[string]string{},
		}

		rec, crawled := records[url]
		if crawled {
			page.Title = rec.Title
			page.Description = rec.Description
			page.H1 = rec.H1
			page.ContentHash = rec.ContentHash
			for k, v := range rec.MetaTags {
				page.MetaTags[k] = v
			}
			if rec.Suggestions != nil {
				page.Suggestions = *rec.Suggestions
			}
			if rec.ContentAnalysis != nil {
				page.ContentAnalysis = *rec.ContentAnalysis
			}
			if rec.ContentHash != "" {
				hashes[rec.ContentHash] = append(hashes[rec.ContentHash], url)
			}
		}
		normalizePage(&page)

		report.Summary.InternalLinks += page.InternalLinks
		report.Summary.ExternalLinks += page.ExternalLinks

		if crawled {
			report.Summary.CrawledPages++
			auditPage(&report.Summary, &report.Issues, page, limits)
		}

		report.Pages = append(report.Pages, page)
	}

	report.Summary.StaticResources = len(report.StaticResources)
	report.Summary.BrokenLinks = len(report.BrokenLinks)
	for _, link := range report.BrokenLinks {
		report.Issues = append(report.Issues, fmt.Sprintf("broken link: %s (status %d)", link.URL, link.Status))
	}

	auditDuplicates(&report.Summary, &report.Issues, hashes)

	return report
}

// auditPage records metadata findings for one crawled page.
func auditPage(summary *siteaudit.Summary, issues *[]string, page siteaudit.PageReport, limits siteaudit.Limits) {
	switch {
	case page.Title == "":
		summary.MissingTitles++
		*issues = append(*issues, fmt.Sprintf("missing title: %s", page.URL))
	case len(page.Title) < limits.TitleMin || len(page.Title) > limits.TitleMax:
		summary.TitlesOutOfRange++
		*issues = append(*issues, fmt.Sprintf("title length %d outside %d-%d: %s", len(page.Title), limits.TitleMin, limits.TitleMax, page.URL))
	}

	switch {
	case page.Description == "":
		summary.MissingDescriptions++
		*issues = append(*issues, fmt.Sprintf("missing description: %s", page.URL))
	case len(page.Description) < limits.DescriptionMin || len(page.Description) > limits.DescriptionMax:
		summary.DescriptionsOutOfRange++
		*issues = append(*issues, fmt.Sprintf("description length %d outside %d-%d: %s", len(page.Description), limits.DescriptionMin, limits.DescriptionMax, page.URL))
	}

	if page.H1 == "" {
		summary.MissingH1s++
		*issues = append(*issues, fmt.Sprintf("missing h1: %s", page.URL))
	}
}

// auditDuplicates flags groups of pages sharing a content hash.
func auditDuplicates(summary *siteaudit.Summary, issues *[]string, hashes map[string][]string) {
	keys := make([]string, 0, len(hashes))
	for hash := range hashes {
		if len(hashes[hash]) > 1 {
			keys = append(keys, hash)
		}
	}
	sort.Strings(keys)

	for _, hash := range keys {
		urls := hashes[hash]
		sort.Strings(urls)
		summary.DuplicateContentPages += len(urls)
		*issues = append(*issues, fmt.Sprintf("duplicate content on %d pages: %v", len(urls), urls))
	}
}

// normalizePage replaces nil slices with empty ones so JSON output always
// carries the keys.
func normalizePage(page *siteaudit.PageReport) {
	if page.Suggestions.Suggestions == nil {
		page.Suggestions.Suggestions = []string{}
	}
	for _, field := range []*[]string{
		&page.ContentAnalysis.MainKeywords,
		&page.ContentAnalysis.LongTailKeywords,
		&page.ContentAnalysis.RelatedTopics,
		&page.ContentAnalysis.ContentStructure,
		&page.ContentAnalysis.SEOSuggestions,
	} {
		if *field == nil {
			*field = []string{}
		}
	}
}
