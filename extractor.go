package siteaudit

// PageMeta holds metadata extracted from a parsed HTML page.
type PageMeta struct {
	// Title is the text of the <title> element.
	Title string

	// Description is the content of the description meta tag.
	Description string

	// H1 is the text of the first <h1> element.
	H1 string

	// MetaTags maps meta tag names to their content attributes.
	MetaTags map[string]string

	// Links lists raw href values of anchors in document order.
	// Fragment-only and non-HTTP-scheme hrefs are already filtered out.
	Links []string
}

// Extractor pulls SEO-relevant metadata and outgoing links from HTML.
type Extractor interface {
	// Extract parses HTML and returns page metadata.
	// The pageURL identifies the page the HTML came from.
	Extract(html, pageURL string) (*PageMeta, error)
}

// ContentExtractor extracts the main content text of a page, with
// boilerplate (nav, footer, sidebar) removed. The text feeds AI content
// analysis.
type ContentExtractor interface {
	ExtractText(html string) (string, error)
}
