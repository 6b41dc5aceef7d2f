package cache

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// nameTTL keeps resolved company names fresh enough for query building
// without re-hitting the lookup API every run.
const nameTTL = 24 * time.Hour

var (
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return client.Ping(ctx).Err()
	}
	parseRedisURL = redis.ParseURL
)

// RedisNameCache is a read-through cache for resolved company names. Cache
// faults are treated as misses so a Redis outage never fails a collection run.
type RedisNameCache struct {
	client *redis.Client
}

// NewRedisNameCache connects to Redis at addr, accepting either a bare
// host:port or a redis:// URL. A nil cache (and nil error) is returned when
// addr is empty; callers then run without caching.
func NewRedisNameCache(ctx context.Context, addr string) (*RedisNameCache, error) {
	if addr == "" {
		return nil, nil
	}

	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := parseRedisURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	}

	client := newRedisClient(opts)
	if err := pingRedis(ctx, client); err != nil {
		return nil, err
	}
	log.Println("Connected to Redis")
	return &RedisNameCache{client: client}, nil
}

func (c *RedisNameCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get %s failed: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (c *RedisNameCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, nameTTL).Err(); err != nil {
		log.Printf("Redis set %s failed: %v", key, err)
	}
}

func (c *RedisNameCache) Close() error {
	return c.client.Close()
}
