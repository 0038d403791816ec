package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/mock"
	auditslog "github.com/fwojciec/siteaudit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMetaOptimizer_OptimizeMeta(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.MetaOptimizer{
		OptimizeMetaFn: func(ctx context.Context, title, description string, keywords []string) (*siteaudit.MetaSuggestions, error) {
			return &siteaudit.MetaSuggestions{OptimizedTitle: "Better"}, nil
		},
	}

	opt := auditslog.NewLoggingMetaOptimizer(inner, logger)
	got, err := opt.OptimizeMeta(context.Background(), "Home", "Desc", []string{"widgets"})

	require.NoError(t, err)
	assert.Equal(t, "Better", got.OptimizedTitle)
	output := buf.String()
	assert.Contains(t, output, "meta optimization")
	assert.Contains(t, output, "title=Home")
	assert.Contains(t, output, "keywords=1")
	assert.Contains(t, output, "duration=")
}

func TestLoggingMetaOptimizer_AnalyzeContent_LogsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.MetaOptimizer{
		AnalyzeContentFn: func(ctx context.Context, text string, keywords []string) (*siteaudit.ContentAnalysis, error) {
			return nil, errors.New("quota exceeded")
		},
	}

	opt := auditslog.NewLoggingMetaOptimizer(inner, logger)
	_, err := opt.AnalyzeContent(context.Background(), "body text", nil)

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "content analysis")
	assert.Contains(t, output, "err=\"quota exceeded\"")
}
