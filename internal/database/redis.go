package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"geoguide/internal/config"
)

// NewRedis connects a Redis client from the configured URL and pings it to
// verify the server is reachable. Redis only backs the rate limiter here,
// but a dead connection at startup almost always means a misconfigured URL,
// so failing loudly beats limping along with throttling silently disabled.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}
