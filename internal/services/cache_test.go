package services

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNilCacheIsMissOnly(t *testing.T) {
	var cache *CacheService

	var dest map[string]interface{}
	err := cache.Get(context.Background(), "report:abc", &dest)
	assert.ErrorIs(t, err, goredis.Nil)

	assert.NoError(t, cache.Set(context.Background(), "report:abc", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, cache.SetWithRetry(context.Background(), "report:abc", map[string]int{"a": 1}, time.Minute, 3))
	assert.NoError(t, cache.Delete(context.Background(), "report:abc"))
}

func TestReportCacheKey(t *testing.T) {
	key := ReportCacheKey("4-3-3", "balanced", "4-4-2", "balanced", 500, 80)
	same := ReportCacheKey("4-3-3", "balanced", "4-4-2", "balanced", 500, 80)
	assert.Equal(t, key, same)
	assert.Contains(t, key, "report:")

	// Every request dimension participates in the key.
	assert.NotEqual(t, key, ReportCacheKey("4-4-2", "balanced", "4-4-2", "balanced", 500, 80))
	assert.NotEqual(t, key, ReportCacheKey("4-3-3", "aggressive", "4-4-2", "balanced", 500, 80))
	assert.NotEqual(t, key, ReportCacheKey("4-3-3", "balanced", "5-3-2", "balanced", 500, 80))
	assert.NotEqual(t, key, ReportCacheKey("4-3-3", "balanced", "4-4-2", "defensive", 500, 80))
	assert.NotEqual(t, key, ReportCacheKey("4-3-3", "balanced", "4-4-2", "balanced", 501, 80))
	assert.NotEqual(t, key, ReportCacheKey("4-3-3", "balanced", "4-4-2", "balanced", 500, 80.5))
}
