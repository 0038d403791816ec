// Package crawl provides the site audit traversal engine.
// It drives fetching, metadata extraction, link classification, and
// AI enrichment over the internal link graph of a single site.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siteaudit"
)

// DefaultMaxDepth bounds traversal when no depth is configured.
const DefaultMaxDepth = 10

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during traversal.
const (
	ProgressFetched ProgressType = iota
	ProgressBroken
	ProgressStatic
	ProgressLinkSkipped
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type   ProgressType
	URL    string
	Depth  int
	Status int
	Err    error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawler is the depth-bounded traversal engine. It owns no state between
// runs; each Run creates a fresh CrawlState.
//
// Optimizer, Content, and Limiter are optional. When Optimizer is nil no AI
// enrichment happens; when Limiter is nil requests are not throttled.
type Crawler struct {
	Fetcher     siteaudit.Fetcher
	Extractor   siteaudit.Extractor
	Content     siteaudit.ContentExtractor
	Optimizer   siteaudit.MetaOptimizer
	Limiter     siteaudit.DomainLimiter
	MaxDepth    int
	RetryDelays []time.Duration
	Progress    ProgressFunc
}

// Run crawls the site reachable from startURL and returns the accumulated
// state. Traversal is depth-first in link-discovery order, visits each URL
// at most once, and always terminates: it is bounded by MaxDepth and by the
// visited set.
func (c *Crawler) Run(ctx context.Context, startURL string) (*siteaudit.CrawlState, error) {
	origin, err := siteaudit.OriginOf(startURL)
	if err != nil {
		return nil, err
	}

	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	state := siteaudit.NewCrawlState()
	c.crawl(ctx, state, origin, startURL, 0, maxDepth)
	return state, nil
}

// crawl visits a single URL and recurses into its internal links.
//
// The URL enters the visited set before its fetch begins; that is the one
// synchronization invariant that guarantees at-most-once visitation should
// traversal ever run concurrently.
func (c *Crawler) crawl(ctx context.Context, state *siteaudit.CrawlState, origin, pageURL string, depth, maxDepth int) {
	if depth > maxDepth || ctx.Err() != nil {
		return
	}
	if state.Visited(pageURL) {
		return
	}
	if !siteaudit.ShouldCrawl(pageURL) {
		state.AddStatic(pageURL)
		c.emit(ProgressEvent{Type: ProgressStatic, URL: pageURL, Depth: depth})
		return
	}
	if !state.MarkVisited(pageURL) {
		return
	}

	if c.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err == nil {
			if err := c.Limiter.Wait(ctx, u.Host); err != nil {
				return // context canceled
			}
		}
	}

	res, err := c.fetchWithRetry(ctx, pageURL)
	if err != nil {
		state.SetStatus(pageURL, 0)
		state.AddBroken(siteaudit.BrokenLink{URL: pageURL, Status: 0, Detail: err.Error()})
		c.emit(ProgressEvent{Type: ProgressBroken, URL: pageURL, Depth: depth, Err: err})
		return
	}

	state.SetStatus(pageURL, res.StatusCode)
	if res.StatusCode != 200 {
		state.AddBroken(siteaudit.BrokenLink{URL: pageURL, Status: res.StatusCode})
		c.emit(ProgressEvent{Type: ProgressBroken, URL: pageURL, Depth: depth, Status: res.StatusCode})
		return
	}
	if res.HTML == "" {
		return
	}

	meta, err := c.Extractor.Extract(res.HTML, pageURL)
	if err != nil {
		c.emit(ProgressEvent{Type: ProgressLinkSkipped, URL: pageURL, Depth: depth, Err: err})
		return
	}

	rec := c.buildRecord(ctx, pageURL, res.HTML, meta)
	state.SetPage(pageURL, rec)
	c.emit(ProgressEvent{Type: ProgressFetched, URL: pageURL, Depth: depth, Status: res.StatusCode})

	for _, link := range meta.Links {
		if siteaudit.SkipLink(link) {
			continue
		}
		if !siteaudit.IsInternal(link, origin) {
			state.AddExternalLink(pageURL, link)
			continue
		}

		abs, err := siteaudit.Normalize(link, pageURL, origin)
		if err != nil {
			c.emit(ProgressEvent{Type: ProgressLinkSkipped, URL: link, Depth: depth, Err: err})
			continue
		}
		if !siteaudit.ShouldCrawl(abs) {
			state.AddStatic(abs)
			c.emit(ProgressEvent{Type: ProgressStatic, URL: abs, Depth: depth})
			continue
		}

		state.AddInternalLink(pageURL, abs)
		c.crawl(ctx, state, origin, abs, depth+1, maxDepth)
	}
}

// buildRecord assembles the page record, including the content hash and any
// AI enrichment. Optimizer failures never abort the crawl; the record keeps
// its extracted values.
func (c *Crawler) buildRecord(ctx context.Context, pageURL, html string, meta *siteaudit.PageMeta) *siteaudit.PageRecord {
	rec := &siteaudit.PageRecord{
		URL:         pageURL,
		Title:       meta.Title,
		Description: meta.Description,
		H1:          meta.H1,
		MetaTags:    meta.MetaTags,
	}
	if rec.MetaTags == nil {
		rec.MetaTags = map[string]string{}
	}

	text := ""
	if c.Content != nil {
		if t, err := c.Content.ExtractText(html); err == nil {
			text = t
		}
	}
	if text != "" {
		rec.ContentHash = hashContent(text)
	} else {
		rec.ContentHash = hashContent(html)
	}

	if c.Optimizer == nil {
		return rec
	}

	keywords := keywordsFrom(meta.MetaTags)
	if sug, err := c.Optimizer.OptimizeMeta(ctx, meta.Title, meta.Description, keywords); err == nil {
		rec.Suggestions = sug
	}
	if text != "" {
		if analysis, err := c.Optimizer.AnalyzeContent(ctx, text, keywords); err == nil {
			rec.ContentAnalysis = analysis
		}
	}

	return rec
}

func (c *Crawler) fetchWithRetry(ctx context.Context, pageURL string) (*siteaudit.FetchResult, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, delays)
}

func (c *Crawler) emit(event ProgressEvent) {
	if c.Progress != nil {
		c.Progress(event)
	}
}

// keywordsFrom extracts the keyword list from a page's keywords meta tag.
func keywordsFrom(metaTags map[string]string) []string {
	raw, ok := metaTags["keywords"]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// hashContent computes a hash of the content using xxhash.
// Pages sharing a hash are flagged as duplicate content in the report.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
