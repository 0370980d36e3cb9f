package seeds

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const seedResultsSchema = `
	CREATE TABLE IF NOT EXISTS seed_results (
		scenario   TEXT PRIMARY KEY,
		user_ids   TEXT[] NOT NULL,
		result     JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresStore keeps results in the seed_results table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to databaseURL and creates the seed_results
// table when it is missing.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Seeding is sequential; a small pool is enough.
	config.MaxConns = 4
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, seedResultsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create seed_results table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Save upserts the result of a scenario.
func (s *PostgresStore) Save(ctx context.Context, scenario string, result *Result) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO seed_results (scenario, user_ids, result)
		VALUES ($1, $2, $3)
		ON CONFLICT (scenario) DO UPDATE
		SET user_ids = EXCLUDED.user_ids, result = EXCLUDED.result, updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, scenario, pq.Array(result.UserIDs()), data); err != nil {
		return fmt.Errorf("failed to save seeds result: %w", err)
	}
	return nil
}

// Load reads the result of a scenario.
func (s *PostgresStore) Load(ctx context.Context, scenario string) (*Result, error) {
	query := `SELECT result FROM seed_results WHERE scenario = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, scenario).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seeds result: %w", err)
	}
	return decodeResult(data)
}

// UserIDs returns the seeded user ids of a scenario without decoding the
// whole result.
func (s *PostgresStore) UserIDs(ctx context.Context, scenario string) ([]string, error) {
	query := `SELECT user_ids FROM seed_results WHERE scenario = $1`

	var ids []string
	err := s.pool.QueryRow(ctx, query, scenario).Scan(pq.Array(&ids))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seeded user ids: %w", err)
	}
	return ids, nil
}

// Delete removes the result of a scenario.
func (s *PostgresStore) Delete(ctx context.Context, scenario string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM seed_results WHERE scenario = $1`, scenario); err != nil {
		return fmt.Errorf("failed to delete seeds result: %w", err)
	}
	return nil
}

// Pool returns the underlying connection pool.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
