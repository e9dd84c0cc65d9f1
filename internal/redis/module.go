// Package redis provides the shared redis client. The rate limiter is the
// only consumer today; when limiting is disabled the client is nil and
// consumers must tolerate that.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/warebilllabs/warebill/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("redis",
	fx.Provide(NewClient),
)

func NewClient(cfg config.Config) (*redis.Client, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RateLimit.RedisAddr,
		Password: cfg.RateLimit.RedisPassword,
		DB:       cfg.RateLimit.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
