package mock

import "github.com/fwojciec/siteaudit"

var _ siteaudit.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteaudit.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*siteaudit.PageMeta, error)
}

func (e *Extractor) Extract(html, pageURL string) (*siteaudit.PageMeta, error) {
	return e.ExtractFn(html, pageURL)
}

var _ siteaudit.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of siteaudit.ContentExtractor.
type ContentExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
