package seeds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gatewayperf/gatewayperf/internal/config"
)

// ErrResultNotFound is returned by Store.Load when a scenario was never seeded.
var ErrResultNotFound = errors.New("seeds result not found")

// Store persists seeding results by scenario name.
type Store interface {
	Save(ctx context.Context, scenario string, result *Result) error
	Load(ctx context.Context, scenario string) (*Result, error)
	Close() error
}

// OpenStore returns the store selected by cfg.Store.
func OpenStore(ctx context.Context, cfg config.SeedsConfig) (Store, error) {
	switch cfg.Store {
	case config.SeedsStoreFile, "":
		return NewFileStore(cfg.DumpsDir), nil
	case config.SeedsStorePostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	case config.SeedsStoreRedis:
		return NewRedisStore(ctx, cfg.RedisURL)
	}
	return nil, fmt.Errorf("unknown seeds store %q", cfg.Store)
}

func encodeResult(result *Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode seeds result: %w", err)
	}
	return data, nil
}

func decodeResult(data []byte) (*Result, error) {
	result := &Result{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to decode seeds result: %w", err)
	}
	return result, nil
}
