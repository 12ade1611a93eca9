package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	clientName  = "budget-dashboard"
	pingTimeout = time.Second
)

// NewClient creates a Redis client and pings it once.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	client, err := newClient(redisURL)
	if err != nil {
		return nil, err
	}

	if err := ping(ctx, client); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// Connect creates a Redis client and pings it with exponential backoff
// until it answers, maxElapsed passes or ctx is done. A malformed URL
// fails immediately.
func Connect(ctx context.Context, redisURL string, maxElapsed time.Duration, logger zerolog.Logger) (*redis.Client, error) {
	client, err := newClient(redisURL)
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = maxElapsed

	attempt := 0
	err = backoff.RetryNotify(
		func() error {
			attempt++
			return ping(ctx, client)
		},
		backoff.WithContext(b, ctx),
		func(err error, next time.Duration) {
			logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", next).Msg("redis not reachable, retrying")
		},
	)
	if err != nil {
		client.Close()
		return nil, err
	}

	logger.Info().Str("addr", client.Options().Addr).Int("attempts", attempt).Msg("connected to redis")

	return client, nil
}

func newClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if opts.ClientName == "" {
		opts.ClientName = clientName
	}

	return redis.NewClient(opts), nil
}

func ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
