// Package mock provides function-field mock implementations of the
// siteaudit interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/siteaudit"
)

var _ siteaudit.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of siteaudit.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*siteaudit.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*siteaudit.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
