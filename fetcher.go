package siteaudit

import "context"

// FetchResult holds the outcome of fetching a page over HTTP.
// A non-200 StatusCode comes back with an empty HTML body and a nil error so
// the caller can record the status without treating it as a transport
// failure.
type FetchResult struct {
	HTML       string
	StatusCode int
}

// Fetcher retrieves page bodies over HTTP.
// Transport-level failures (DNS, connection, timeout) are returned as errors;
// HTTP error statuses are returned in the result.
type Fetcher interface {
	// Fetch retrieves the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases client resources.
	Close() error
}
