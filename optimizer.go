package siteaudit

import "context"

// MetaSuggestions holds AI-generated improvements for a page's metadata.
type MetaSuggestions struct {
	OptimizedTitle       string   `json:"optimizedTitle"`
	OptimizedDescription string   `json:"optimizedDescription"`
	Suggestions          []string `json:"suggestions"`
}

// ContentAnalysis holds AI-generated analysis of a page's main content.
// All fields are arrays; a degraded response yields empty arrays, never nil
// maps or missing keys.
type ContentAnalysis struct {
	MainKeywords     []string `json:"mainKeywords"`
	LongTailKeywords []string `json:"longTailKeywords"`
	RelatedTopics    []string `json:"relatedTopics"`
	ContentStructure []string `json:"contentStructure"`
	SEOSuggestions   []string `json:"seoSuggestions"`
}

// MetaOptimizer produces SEO suggestions from page metadata and content.
//
// Implementations must degrade safely: a malformed or unparsable model
// response returns the original inputs unchanged (and the keyword list as
// the suggestions), never an error that would abort a crawl.
type MetaOptimizer interface {
	// OptimizeMeta suggests improved title and description for a page.
	OptimizeMeta(ctx context.Context, title, description string, keywords []string) (*MetaSuggestions, error)

	// AnalyzeContent analyzes the page's main content text.
	AnalyzeContent(ctx context.Context, text string, keywords []string) (*ContentAnalysis, error)
}
