// Package goquery provides a goquery-based implementation of
// siteaudit.Extractor for pulling SEO metadata and outgoing links from HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteaudit"
)

// Ensure Extractor implements siteaudit.Extractor at compile time.
var _ siteaudit.Extractor = (*Extractor)(nil)

// Extractor parses HTML and extracts the title, description meta tag, first
// H1, all named meta tags, and outgoing anchor hrefs in document order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns page metadata.
func (e *Extractor) Extract(html, pageURL string) (*siteaudit.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "parsing HTML for %s: %v", pageURL, err)
	}

	meta := &siteaudit.PageMeta{
		MetaTags: map[string]string{},
	}

	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	meta.H1 = strings.TrimSpace(doc.Find("h1").First().Text())

	doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		content, _ := sel.Attr("content")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return
		}
		meta.MetaTags[name] = strings.TrimSpace(content)
	})
	meta.Description = meta.MetaTags["description"]

	// Anchors in document order; fragment-only and non-HTTP schemes are
	// dropped here so the traversal engine never sees them.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if siteaudit.SkipLink(href) {
			return
		}
		meta.Links = append(meta.Links, href)
	})

	return meta, nil
}
