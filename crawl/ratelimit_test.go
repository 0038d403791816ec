package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/siteaudit/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_FirstRequestImmediate(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1.0)

	start := time.Now()
	err := limiter.Wait(context.Background(), "example.test")

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDomainLimiter_SeparateDomainsIndependent(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1.0)

	require.NoError(t, limiter.Wait(context.Background(), "a.test"))

	start := time.Now()
	err := limiter.Wait(context.Background(), "b.test")

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDomainLimiter_SameDomainThrottled(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(10.0) // 100ms between requests

	require.NoError(t, limiter.Wait(context.Background(), "example.test"))

	start := time.Now()
	err := limiter.Wait(context.Background(), "example.test")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestDomainLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(0.001) // effectively blocks

	require.NoError(t, limiter.Wait(context.Background(), "example.test"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "example.test")

	require.Error(t, err)
}
