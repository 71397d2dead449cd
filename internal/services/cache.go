package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheService is a thin JSON cache over redis. A nil *CacheService is
// valid and behaves as a miss-only cache, so callers never branch on
// whether caching is configured.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{
		client: client,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if s == nil {
		return redis.Nil
	}
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return err
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if s == nil {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// SetWithRetry retries transient cache writes; a report cache miss is
// cheap, so failures are logged and swallowed by callers.
func (s *CacheService) SetWithRetry(ctx context.Context, key string, value interface{}, expiration time.Duration, maxRetries int) error {
	if s == nil {
		return nil
	}
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = s.Set(ctx, key, value, expiration); err == nil {
			return nil
		}
		logrus.WithError(err).WithField("attempt", i+1).Warn("cache set failed, retrying")
		time.Sleep(time.Duration(i+1) * 100 * time.Millisecond)
	}
	return err
}

// ReportCacheKey derives a stable cache key from the full scenario
// config. Seeded runs are excluded from caching by the handler, so the
// key only ever covers deterministic request shape, not the random
// stream.
func ReportCacheKey(formation, tactic, opponentFormation, opponentTactic string, iterations int, crowdNoise float64) string {
	payload := fmt.Sprintf("%s|%s|%s|%s|%d|%.2f", formation, tactic, opponentFormation, opponentTactic, iterations, crowdNoise)
	sum := sha256.Sum256([]byte(payload))
	return "report:" + hex.EncodeToString(sum[:16])
}
