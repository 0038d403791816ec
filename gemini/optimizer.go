package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/siteaudit"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Optimizer implements siteaudit.MetaOptimizer at compile time.
var _ siteaudit.MetaOptimizer = (*Optimizer)(nil)

// Optimizer implements siteaudit.MetaOptimizer using Google Gemini. Responses
// that cannot be parsed degrade to safe defaults rather than returning errors,
// so a flaky model never interrupts an audit.
type Optimizer struct {
	client *genai.Client
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(client *genai.Client) *Optimizer {
	return &Optimizer{client: client}
}

// OptimizeMeta suggests improved title and description tags for a page.
func (o *Optimizer) OptimizeMeta(ctx context.Context, title, description string, keywords []string) (*siteaudit.MetaSuggestions, error) {
	prompt := BuildMetaPrompt(title, description, keywords)

	result, err := o.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, siteaudit.Errorf(siteaudit.EINTERNAL, "gemini returned nil result")
	}

	return ParseMetaSuggestions(result.Text(), title, description, keywords), nil
}

// AnalyzeContent extracts keyword and structure suggestions from page text.
func (o *Optimizer) AnalyzeContent(ctx context.Context, text string, keywords []string) (*siteaudit.ContentAnalysis, error) {
	prompt := BuildAnalysisPrompt(text, keywords)

	result, err := o.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, siteaudit.Errorf(siteaudit.EINTERNAL, "gemini returned nil result")
	}

	return ParseContentAnalysis(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an SEO specialist. Respond with a single JSON object only, no prose and no markdown fences.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildMetaPrompt builds the user prompt for title/description optimization.
func BuildMetaPrompt(title, description string, keywords []string) string {
	var sb strings.Builder
	sb.WriteString("Optimize the following page metadata for search engines.\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Description: %s\n", description)
	fmt.Fprintf(&sb, "Keywords: %s\n\n", strings.Join(keywords, ", "))
	sb.WriteString(`Respond with JSON of the shape {"optimizedTitle": string, "optimizedDescription": string, "suggestions": [string]}. ` +
		"Keep the title between 30 and 60 characters and the description between 120 and 160 characters.")
	return sb.String()
}

// BuildAnalysisPrompt builds the user prompt for content analysis.
func BuildAnalysisPrompt(text string, keywords []string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following page content for SEO.\n")
	fmt.Fprintf(&sb, "Target keywords: %s\n\n", strings.Join(keywords, ", "))
	sb.WriteString("<content>\n")
	sb.WriteString(text)
	sb.WriteString("\n</content>\n\n")
	sb.WriteString(`Respond with JSON of the shape {"mainKeywords": [string], "longTailKeywords": [string], "relatedTopics": [string], "contentStructure": [string], "seoSuggestions": [string]}.`)
	return sb.String()
}

// ParseMetaSuggestions parses a model response into MetaSuggestions. Any
// response that fails to parse falls back to the original title, description
// and keywords, so callers always get usable values.
func ParseMetaSuggestions(raw, title, description string, keywords []string) *siteaudit.MetaSuggestions {
	fallback := &siteaudit.MetaSuggestions{
		OptimizedTitle:       title,
		OptimizedDescription: description,
		Suggestions:          append([]string{}, keywords...),
	}

	var parsed siteaudit.MetaSuggestions
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return fallback
	}

	if parsed.OptimizedTitle == "" {
		parsed.OptimizedTitle = title
	}
	if parsed.OptimizedDescription == "" {
		parsed.OptimizedDescription = description
	}
	if parsed.Suggestions == nil {
		parsed.Suggestions = []string{}
	}
	return &parsed
}

// ParseContentAnalysis parses a model response into ContentAnalysis. A
// response that fails to parse yields empty (non-nil) slices.
func ParseContentAnalysis(raw string) *siteaudit.ContentAnalysis {
	var parsed siteaudit.ContentAnalysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		parsed = siteaudit.ContentAnalysis{}
	}

	for _, field := range []*[]string{
		&parsed.MainKeywords,
		&parsed.LongTailKeywords,
		&parsed.RelatedTopics,
		&parsed.ContentStructure,
		&parsed.SEOSuggestions,
	} {
		if *field == nil {
			*field = []string{}
		}
	}
	return &parsed
}

// stripFences removes a markdown code fence the model sometimes wraps JSON in
// despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
