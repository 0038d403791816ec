package mock

import (
	"context"

	"github.com/fwojciec/siteaudit"
)

var _ siteaudit.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer is a mock implementation of siteaudit.ReportRenderer.
type ReportRenderer struct {
	RenderFn func(ctx context.Context, report *siteaudit.Report) error
}

func (r *ReportRenderer) Render(ctx context.Context, report *siteaudit.Report) error {
	return r.RenderFn(ctx, report)
}

var _ siteaudit.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of siteaudit.ReportStore.
type ReportStore struct {
	SaveReportFn func(ctx context.Context, report *siteaudit.Report) error
}

func (s *ReportStore) SaveReport(ctx context.Context, report *siteaudit.Report) error {
	return s.SaveReportFn(ctx, report)
}
