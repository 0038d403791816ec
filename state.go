package siteaudit

import (
	"sort"
	"sync"
)

// BrokenLink records a single failed fetch. Status 0 means the failure
// happened at the transport layer and no HTTP response was received.
type BrokenLink struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// PageRecord holds the metadata collected for one successfully crawled page.
type PageRecord struct {
	URL             string            `json:"url"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	H1              string            `json:"h1"`
	MetaTags        map[string]string `json:"metaTags"`
	ContentHash     string            `json:"contentHash,omitempty"`
	Suggestions     *MetaSuggestions  `json:"suggestions,omitempty"`
	ContentAnalysis *ContentAnalysis  `json:"contentAnalysis,omitempty"`
}

// CrawlState accumulates the results of a single crawl run. It is created at
// run start, mutated only by the traversal engine, and read by the report
// aggregator after the run completes.
//
// All methods are safe for concurrent use; insertion into the visited set is
// atomic so the at-most-once visitation invariant holds at any concurrency
// level.
type CrawlState struct {
	mu       sync.Mutex
	visited  map[string]bool
	static   map[string]bool
	broken   []BrokenLink
	internal map[string][]string
	external map[string][]string
	status   map[string]int
	pages    map[string]*PageRecord
}

// NewCrawlState returns an empty CrawlState for one crawl run.
func NewCrawlState() *CrawlState {
	return &CrawlState{
		visited:  make(map[string]bool),
		static:   make(map[string]bool),
		internal: make(map[string][]string),
		external: make(map[string][]string),
		status:   make(map[string]int),
		pages:    make(map[string]*PageRecord),
	}
}

// MarkVisited records a URL as visited before its fetch begins.
// It returns false if the URL was already in the visited set, in which case
// the caller must not fetch it again.
func (s *CrawlState) MarkVisited(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visited[url] {
		return false
	}
	s.visited[url] = true
	return true
}

// Visited reports whether a URL has had a fetch attempt initiated.
func (s *CrawlState) Visited(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visited[url]
}

// AddStatic records a URL recognized as a non-crawlable static resource.
func (s *CrawlState) AddStatic(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.static[url] = true
}

// AddBroken appends one broken-link entry for a failed fetch.
func (s *CrawlState) AddBroken(link BrokenLink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broken = append(s.broken, link)
}

// SetStatus records the last observed HTTP status for a URL.
// Status 0 is the sentinel for a network-level failure.
func (s *CrawlState) SetStatus(url string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[url] = status
}

// AddInternalLink records an internal outgoing link found on page from.
func (s *CrawlState) AddInternalLink(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.internal[from] = append(s.internal[from], to)
}

// AddExternalLink records an external outgoing link found on page from.
func (s *CrawlState) AddExternalLink(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.external[from] = append(s.external[from], to)
}

// SetPage stores the metadata record for a crawled page.
func (s *CrawlState) SetPage(url string, rec *PageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[url] = rec
}

// VisitedURLs returns the visited set as a sorted slice.
func (s *CrawlState) VisitedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.visited)
}

// StaticResources returns the recorded static resources as a sorted slice.
func (s *CrawlState) StaticResources() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.static)
}

// BrokenLinks returns a copy of the broken-link entries in append order.
func (s *CrawlState) BrokenLinks() []BrokenLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]BrokenLink, len(s.broken))
	copy(out, s.broken)
	return out
}

// InternalLinks returns a copy of the per-page internal link lists.
func (s *CrawlState) InternalLinks() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLinkMap(s.internal)
}

// ExternalLinks returns a copy of the per-page external link lists.
func (s *CrawlState) ExternalLinks() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLinkMap(s.external)
}

// StatusCode returns the recorded HTTP status for a URL, or 0 if none.
func (s *CrawlState) StatusCode(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[url]
}

// Pages returns a copy of the per-URL page records.
func (s *CrawlState) Pages() map[string]*PageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]*PageRecord, len(s.pages))
	for k, v := range s.pages {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func copyLinkMap(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		links := make([]string, len(v))
		copy(links, v)
		out[k] = links
	}
	return out
}
