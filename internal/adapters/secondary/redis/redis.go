package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clubhub/clubhub-api/internal/adapters/secondary/redis/cache"
)

type Options struct {
	Host     string
	Port     string
	Password string
}

// Client bundles the shared connection and the named storages built on it.
type Client struct {
	rdb *redis.Client

	ClubDetails *cache.ClubDetailStorage
}

func New(opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{
		rdb:         rdb,
		ClubDetails: cache.NewClubDetailStorage(rdb, time.Minute),
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
