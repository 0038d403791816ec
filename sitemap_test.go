package siteaudit_test

import (
	"testing"

	"github.com/fwojciec/siteaudit"
	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	t.Parallel()

	visited := []string{"A", "B", "C"}
	sitemap := []string{"B", "C", "D"}

	r := siteaudit.Reconcile(visited, sitemap)

	assert.Equal(t, []string{"A"}, r.NotInSitemap)
	assert.Equal(t, []string{"D"}, r.InSitemapNotCrawled)
}

func TestReconcile_EmptySitemap(t *testing.T) {
	t.Parallel()

	r := siteaudit.Reconcile([]string{"A"}, nil)

	assert.Equal(t, []string{"A"}, r.NotInSitemap)
	assert.Empty(t, r.InSitemapNotCrawled)
}

func TestReconcile_IdenticalSets(t *testing.T) {
	t.Parallel()

	urls := []string{"A", "B"}

	r := siteaudit.Reconcile(urls, urls)

	assert.Empty(t, r.NotInSitemap)
	assert.Empty(t, r.InSitemapNotCrawled)
}
