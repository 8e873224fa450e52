package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_AllowsUpToBurst(t *testing.T) {
	bucket := newTokenBucket(3, 0.0001) // effectively no refill during test

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(1, 100) // 100 tokens/sec

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, bucket.allow(), "bucket should refill after waiting")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/generate", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_EnforcesEndpointBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/generate", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/generate", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 10, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/generate", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("1.2.3.4", "/generate", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/generate", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.1.1.1", "/generate", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.1.1.1", "/generate", "POST")
	require.False(t, allowed)

	// A different client still has its full burst
	allowed, _ = limiter.Allow("2.2.2.2", "/generate", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/generate", Method: "POST", Limit: 10},
		{Path: "/api/", Method: "POST", Limit: 20},
	}

	exact := MatchEndpoint("/generate", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/api/story", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 20, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/generate", "GET", configs))
	assert.Nil(t, MatchEndpoint("/other", "POST", configs))

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)
}

func TestDefaultEndpointConfigs_CoverGenerationRoutes(t *testing.T) {
	configs := DefaultEndpointConfigs()

	for _, path := range []string{"/generate", "/api/summarize", "/api/story", "/api/bullets"} {
		match := MatchEndpoint(path, "POST", configs)
		require.NotNil(t, match, "no rate limit config for %s", path)
		assert.Greater(t, match.Limit, 0)
	}
}

func TestLimiter_CleanupRemovesStaleBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("10.0.0.%d", i), "/generate", "POST")
	}

	// Backdate all access times past the cleanup cutoff
	limiter.accessMu.Lock()
	for key := range limiter.lastAccess {
		limiter.lastAccess[key] = time.Now().Add(-2 * time.Hour)
	}
	limiter.accessMu.Unlock()

	limiter.cleanupBuckets()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.Empty(t, limiter.buckets)
}
