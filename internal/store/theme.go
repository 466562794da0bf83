package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const themeKey = "skysearch:theme"

// RedisThemePersister keeps the theme mode in Redis so it survives process
// restarts.
type RedisThemePersister struct {
	client *redis.Client
}

func NewRedisThemePersister(client *redis.Client) *RedisThemePersister {
	return &RedisThemePersister{client: client}
}

func (p *RedisThemePersister) Load(ctx context.Context) (ThemeMode, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	value, err := p.client.Get(ctx, themeKey).Result()
	if err != nil {
		return ThemeLight, false
	}

	mode := ThemeMode(value)
	if mode != ThemeLight && mode != ThemeDark {
		return ThemeLight, false
	}
	return mode, true
}

func (p *RedisThemePersister) Save(ctx context.Context, mode ThemeMode) error {
	return p.client.Set(ctx, themeKey, string(mode), 0).Err()
}

// NoOpThemePersister is used when Redis is disabled; the theme then only
// lives for the process lifetime.
type NoOpThemePersister struct{}

func (NoOpThemePersister) Load(ctx context.Context) (ThemeMode, bool) { return ThemeLight, false }

func (NoOpThemePersister) Save(ctx context.Context, mode ThemeMode) error { return nil }
