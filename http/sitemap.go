package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/siteaudit"
)

// Ensure SitemapService implements siteaudit.SitemapService.
var _ siteaudit.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs declared by a site's sitemap over HTTP.
type SitemapService struct {
	client *http.Client
	logger *slog.Logger
}

// SitemapOption configures a SitemapService.
type SitemapOption func(*SitemapService)

// WithSitemapLogger sets the logger used for skipped child sitemaps.
func WithSitemapLogger(logger *slog.Logger) SitemapOption {
	return func(s *SitemapService) {
		s.logger = logger
	}
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client, opts ...SitemapOption) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	s := &SitemapService{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs fetches {origin}/sitemap.xml and returns the flattened set of
// page URLs in encounter order, deduplicated.
//
// Absence or malformedness of the top-level sitemap yields an empty slice,
// not an error; a missing sitemap is not a failure of the audit run. Child
// sitemaps of an index that fail to fetch or parse are skipped individually
// so one broken child cannot abort its siblings. Visited sitemap URLs are
// tracked so a self-referential index terminates.
func (s *SitemapService) DiscoverURLs(ctx context.Context, origin string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sitemapURL := strings.TrimSuffix(origin, "/") + "/sitemap.xml"

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string

	if err := s.processSitemap(ctx, sitemapURL, seenSitemaps, seenURLs, &urls); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// No sitemap (or an unusable one) is not an error for the run.
		s.log("sitemap unavailable", "url", sitemapURL, "err", err)
		return []string{}, nil
	}

	return urls, nil
}

// processSitemap fetches and parses one sitemap document, handling both
// urlset and sitemapindex roots.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seenSitemaps, seenURLs map[string]bool, urls *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Cycle guard: a self-referential index must still terminate.
	if seenSitemaps[sitemapURL] {
		return nil
	}
	seenSitemaps[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return siteaudit.Errorf(siteaudit.EINVALID, "parsing sitemap XML at %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return siteaudit.Errorf(siteaudit.EINVALID, "empty sitemap XML at %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		return s.processIndex(ctx, root, seenSitemaps, seenURLs, urls)
	case "urlset":
		s.collectURLSet(root, seenURLs, urls)
		return nil
	default:
		return siteaudit.Errorf(siteaudit.EINVALID, "unexpected sitemap root element <%s> at %s", root.Tag, sitemapURL)
	}
}

// processIndex expands a <sitemapindex> element recursively.
// A failing child sitemap is logged and skipped.
func (s *SitemapService) processIndex(ctx context.Context, root *etree.Element, seenSitemaps, seenURLs map[string]bool, urls *[]string) error {
	for _, sm := range root.SelectElements("sitemap") {
		loc := sm.SelectElement("loc")
		if loc == nil {
			continue
		}
		childURL := strings.TrimSpace(loc.Text())
		if childURL == "" {
			continue
		}

		if err := s.processSitemap(ctx, childURL, seenSitemaps, seenURLs, urls); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log("skipping child sitemap", "url", childURL, "err", err)
		}
	}
	return nil
}

// collectURLSet appends the <loc> entries of a <urlset> element, deduplicated.
func (s *SitemapService) collectURLSet(root *etree.Element, seenURLs map[string]bool, urls *[]string) {
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" || seenURLs[u] {
			continue
		}
		seenURLs[u] = true
		*urls = append(*urls, u)
	}
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "creating request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, siteaudit.Errorf(siteaudit.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

func (s *SitemapService) log(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
