package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects the Redis server carrying the record event stream.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Client embeds the go-redis client so callers reach XADD / XREADGROUP directly.
type Client struct {
	*redis.Client
	addr string
}

// NewClient connects and pings the server, failing fast on a bad address.
// Blocking stream reads get their block duration added to ReadTimeout by go-redis.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return &Client{Client: rdb, addr: opts.Addr}, nil
}

func (c *Client) Addr() string { return c.addr }
