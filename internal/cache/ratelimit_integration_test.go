//go:build integration

package cache

import (
	"context"
	"testing"

	"github.com/accountsvc/accountsvc/internal/testutil"
)

// newRateLimitTestEnv connects to the test Redis and starts from an empty
// database so earlier buckets cannot bleed into the test.
func newRateLimitTestEnv(t *testing.T) (context.Context, *Cache) {
	t.Helper()

	redisURL := testutil.RequireEnv(t, "REDIS_URL")
	ctx := context.Background()

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect Redis: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("close Redis: %v", err)
		}
	})

	if err := testutil.FlushRedis(ctx, c.client); err != nil {
		t.Fatalf("flush Redis: %v", err)
	}

	return ctx, c
}

func TestIntegrationCheckIPRateLimit_ConsumesBurst(t *testing.T) {
	ctx, c := newRateLimitTestEnv(t)

	const burst = 3
	ip := "203.0.113.7"

	for i := 0; i < burst; i++ {
		result, err := c.CheckIPRateLimit(ctx, ip, 1, burst)
		if err != nil {
			t.Fatalf("CheckIPRateLimit failed: %v", err)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}

	result, err := c.CheckIPRateLimit(ctx, ip, 1, burst)
	if err != nil {
		t.Fatalf("CheckIPRateLimit failed: %v", err)
	}
	if result.Allowed {
		t.Error("expected request over burst to be denied")
	}
	if result.RetryAfter <= 0 {
		t.Errorf("expected positive RetryAfter, got %v", result.RetryAfter)
	}
	if result.Remaining != 0 {
		t.Errorf("expected 0 remaining tokens, got %d", result.Remaining)
	}
}

func TestIntegrationCheckIPRateLimit_IsolatesClients(t *testing.T) {
	ctx, c := newRateLimitTestEnv(t)

	const burst = 2

	for i := 0; i < burst+1; i++ {
		if _, err := c.CheckIPRateLimit(ctx, "203.0.113.7", 1, burst); err != nil {
			t.Fatalf("CheckIPRateLimit failed: %v", err)
		}
	}

	// A different client keeps its own bucket.
	result, err := c.CheckIPRateLimit(ctx, "203.0.113.8", 1, burst)
	if err != nil {
		t.Fatalf("CheckIPRateLimit failed: %v", err)
	}
	if !result.Allowed {
		t.Error("exhausting one IP must not throttle another")
	}
}
