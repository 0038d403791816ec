package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteaudit"
)

// Ensure LoggingMetaOptimizer implements siteaudit.MetaOptimizer.
var _ siteaudit.MetaOptimizer = (*LoggingMetaOptimizer)(nil)

// LoggingMetaOptimizer wraps a MetaOptimizer with debug logging.
type LoggingMetaOptimizer struct {
	next   siteaudit.MetaOptimizer
	logger *slog.Logger
}

// NewLoggingMetaOptimizer creates a new LoggingMetaOptimizer.
func NewLoggingMetaOptimizer(next siteaudit.MetaOptimizer, logger *slog.Logger) *LoggingMetaOptimizer {
	return &LoggingMetaOptimizer{next: next, logger: logger}
}

// OptimizeMeta delegates to the wrapped optimizer and logs the operation.
func (o *LoggingMetaOptimizer) OptimizeMeta(ctx context.Context, title, description string, keywords []string) (result *siteaudit.MetaSuggestions, err error) {
	defer func(begin time.Time) {
		o.logger.Info("meta optimization",
			"title", title,
			"keywords", len(keywords),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.OptimizeMeta(ctx, title, description, keywords)
}

// AnalyzeContent delegates to the wrapped optimizer and logs the operation.
func (o *LoggingMetaOptimizer) AnalyzeContent(ctx context.Context, text string, keywords []string) (result *siteaudit.ContentAnalysis, err error) {
	defer func(begin time.Time) {
		o.logger.Info("content analysis",
			"bytes", len(text),
			"keywords", len(keywords),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.AnalyzeContent(ctx, text, keywords)
}
