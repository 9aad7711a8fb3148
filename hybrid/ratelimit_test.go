package hybrid_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/artex/hybrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_ThrottlesSameDomain(t *testing.T) {
	t.Parallel()

	limiter := hybrid.NewDomainLimiter(20) // 50ms between requests

	ctx := context.Background()
	begin := time.Now()
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	elapsed := time.Since(begin)

	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestDomainLimiter_DomainsAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := hybrid.NewDomainLimiter(1) // 1s between same-domain requests

	ctx := context.Background()
	begin := time.Now()
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	require.NoError(t, limiter.Wait(ctx, "example.org"))
	elapsed := time.Since(begin)

	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestDomainLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	limiter := hybrid.NewDomainLimiter(0.1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx, "example.com"))
	err := limiter.Wait(ctx, "example.com")
	require.Error(t, err)
}
