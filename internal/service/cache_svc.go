package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// VideoCacheTTL bounds staleness for cached video aggregates.
const VideoCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer for video lookups.
type CacheService struct {
	rdb    *redis.Client
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// SetCounters attaches hit/miss counters to cache lookups. Lookups made
// before counters are set are simply not counted.
func (c *CacheService) SetCounters(hits, misses prometheus.Counter) {
	c.hits = hits
	c.misses = misses
}

func (c *CacheService) recordLookup(hit bool) {
	if hit {
		if c.hits != nil {
			c.hits.Inc()
		}
		return
	}
	if c.misses != nil {
		c.misses.Inc()
	}
}

// GetVideo retrieves a cached video. Returns nil if not cached or cache is disabled.
func (c *CacheService) GetVideo(ctx context.Context, videoID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, videoKey(videoID)).Bytes()
	if err == redis.Nil {
		c.recordLookup(false)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.recordLookup(true)
	return data, nil
}

// SetVideo stores a video aggregate in cache.
func (c *CacheService) SetVideo(ctx context.Context, videoID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoKey(videoID), b, VideoCacheTTL).Err()
}

// InvalidateVideo removes a video from cache (called after any write).
func (c *CacheService) InvalidateVideo(ctx context.Context, videoID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, videoKey(videoID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func videoKey(videoID string) string {
	return fmt.Sprintf("video:%s", videoID)
}
