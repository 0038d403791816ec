package siteaudit

import (
	"context"
	"sort"
)

// SitemapService discovers URLs declared by a site's sitemap.
type SitemapService interface {
	// DiscoverURLs fetches {origin}/sitemap.xml and returns the flattened
	// set of page URLs. Sitemap indexes are expanded recursively with a
	// visited-sitemap guard, so a self-referential index terminates.
	//
	// Absence of a sitemap is not an error: the result is an empty slice.
	// A broken child sitemap is skipped without aborting its siblings.
	DiscoverURLs(ctx context.Context, origin string) ([]string, error)
}

// Reconciliation holds the two set-differences between the crawled URL set
// and the sitemap-declared URL set. Both slices are sorted.
type Reconciliation struct {
	// NotInSitemap lists crawled URLs the sitemap does not declare.
	NotInSitemap []string `json:"notInSitemap"`

	// InSitemapNotCrawled lists sitemap URLs the crawl never reached.
	InSitemapNotCrawled []string `json:"inSitemapNotCrawled"`
}

// Reconcile computes both set-differences between the visited URL set and
// the sitemap URL set. It is a pure function of its inputs.
func Reconcile(visited, sitemapURLs []string) *Reconciliation {
	visitedSet := make(map[string]bool, len(visited))
	for _, u := range visited {
		visitedSet[u] = true
	}
	sitemapSet := make(map[string]bool, len(sitemapURLs))
	for _, u := range sitemapURLs {
		sitemapSet[u] = true
	}

	r := &Reconciliation{
		NotInSitemap:        []string{},
		InSitemapNotCrawled: []string{},
	}
	for u := range visitedSet {
		if !sitemapSet[u] {
			r.NotInSitemap = append(r.NotInSitemap, u)
		}
	}
	for u := range sitemapSet {
		if !visitedSet[u] {
			r.InSitemapNotCrawled = append(r.InSitemapNotCrawled, u)
		}
	}
	sort.Strings(r.NotInSitemap)
	sort.Strings(r.InSitemapNotCrawled)
	return r
}
