package seeds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "seeds:"

// RedisStore keeps each result as a JSON string under seeds:<scenario>.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redisURL.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 4
	opt.MinIdleConns = 1
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Key returns the key a scenario is stored under.
func (s *RedisStore) Key(scenario string) string {
	return redisKeyPrefix + scenario
}

// Save writes the result without expiry, replacing any previous one.
func (s *RedisStore) Save(ctx context.Context, scenario string, result *Result) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.Key(scenario), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save seeds result: %w", err)
	}
	return nil
}

// Load reads the result of a scenario.
func (s *RedisStore) Load(ctx context.Context, scenario string) (*Result, error) {
	data, err := s.client.Get(ctx, s.Key(scenario)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seeds result: %w", err)
	}
	return decodeResult(data)
}

// Client returns the underlying Redis client.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
