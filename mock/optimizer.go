package mock

import (
	"context"

	"github.com/fwojciec/siteaudit"
)

var _ siteaudit.MetaOptimizer = (*MetaOptimizer)(nil)

// MetaOptimizer is a mock implementation of siteaudit.MetaOptimizer.
type MetaOptimizer struct {
	OptimizeMetaFn   func(ctx context.Context, title, description string, keywords []string) (*siteaudit.MetaSuggestions, error)
	AnalyzeContentFn func(ctx context.Context, text string, keywords []string) (*siteaudit.ContentAnalysis, error)
}

func (m *MetaOptimizer) OptimizeMeta(ctx context.Context, title, description string, keywords []string) (*siteaudit.MetaSuggestions, error) {
	return m.OptimizeMetaFn(ctx, title, description, keywords)
}

func (m *MetaOptimizer) AnalyzeContent(ctx context.Context, text string, keywords []string) (*siteaudit.ContentAnalysis, error) {
	return m.AnalyzeContentFn(ctx, text, keywords)
}
