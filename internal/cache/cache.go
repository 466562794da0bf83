// Package cache implements the search freshness window: an identical query
// submitted while its entry is fresh is served from here instead of
// re-fetching from the provider.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"skysearch/internal/amadeus"
	"skysearch/internal/models"
)

type Cache interface {
	Get(ctx context.Context, query models.SearchQuery) (*amadeus.Result, bool)
	Set(ctx context.Context, query models.SearchQuery, result *amadeus.Result) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Client exposes the underlying connection so the theme persister can share
// it.
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

func (c *RedisCache) Get(ctx context.Context, query models.SearchQuery) (*amadeus.Result, bool) {
	data, err := c.client.Get(ctx, generateKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var result amadeus.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}

	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, query models.SearchQuery, result *amadeus.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(query), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, query models.SearchQuery) (*amadeus.Result, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, query models.SearchQuery, result *amadeus.Result) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes every query field, so distinctness of cache entries is
// exactly deep equality of queries.
func generateKey(query models.SearchQuery) string {
	data, _ := json.Marshal(query)
	hash := sha256.Sum256(data)
	return "flight:" + hex.EncodeToString(hash[:])
}
