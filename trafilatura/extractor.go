// Package trafilatura wraps go-trafilatura to extract the main content text
// of a page, with navigation and other boilerplate removed.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/siteaudit"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements siteaudit.ContentExtractor at compile time.
var _ siteaudit.ContentExtractor = (*Extractor)(nil)

// Extractor extracts main content text from HTML. The text feeds the AI
// content analysis and the duplicate-content hash.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the main content as plain text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", siteaudit.Errorf(siteaudit.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
