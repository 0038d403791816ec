package siteaudit_test

import (
	"testing"

	"github.com/fwojciec/siteaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginOf(t *testing.T) {
	t.Parallel()

	origin, err := siteaudit.OriginOf("https://example.test/docs/page?q=1")

	require.NoError(t, err)
	assert.Equal(t, "https://example.test", origin)
}

func TestOriginOf_NoHost(t *testing.T) {
	t.Parallel()

	_, err := siteaudit.OriginOf("/relative/path")

	require.Error(t, err)
	assert.Equal(t, siteaudit.EINVALID, siteaudit.ErrorCode(err))
}

func TestIsInternal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		link string
		want bool
	}{
		{"root relative", "/about", true},
		{"same origin", "https://example.test/about", true},
		{"external", "https://other.test/", false},
		{"prefix quirk", "https://example.testing.evil/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, siteaudit.IsInternal(tt.link, "https://example.test"))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	const (
		origin = "https://example.test"
		page   = "https://example.test/docs/intro"
	)

	tests := []struct {
		name string
		link string
		want string
	}{
		{"root relative", "/about", "https://example.test/about"},
		{"absolute passthrough", "https://other.test/page", "https://other.test/page"},
		{"schemeless sibling", "guide", "https://example.test/docs/guide"},
		{"schemeless parent", "../pricing", "https://example.test/pricing"},
		{"protocol relative", "//cdn.example.test/a", "https://cdn.example.test/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := siteaudit.Normalize(tt.link, page, origin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	const origin = "https://example.test"

	once, err := siteaudit.Normalize("/a/b", origin+"/", origin)
	require.NoError(t, err)

	twice, err := siteaudit.Normalize(once, origin+"/", origin)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestNormalize_EmptyLink(t *testing.T) {
	t.Parallel()

	_, err := siteaudit.Normalize("", "https://example.test/", "https://example.test")

	require.Error(t, err)
	assert.Equal(t, siteaudit.EINVALID, siteaudit.ErrorCode(err))
}

func TestShouldCrawl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.test/about", true},
		{"https://example.test/logo.png", false},
		{"https://example.test/styles.css", false},
		{"https://example.test/app.js", false},
		{"https://example.test/report.pdf", false},
		{"https://example.test/archive.zip", false},
		{"https://example.test/logo.png?v=2", false},
		{"https://example.test/png", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, siteaudit.ShouldCrawl(tt.url))
		})
	}
}

func TestSkipLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		want bool
	}{
		{"#section", true},
		{"javascript:void(0)", true},
		{"mailto:hi@example.test", true},
		{"tel:+1234567890", true},
		{"data:text/html,hi", true},
		{"", true},
		{"/about", false},
		{"https://example.test/", false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, siteaudit.SkipLink(tt.href))
		})
	}
}
