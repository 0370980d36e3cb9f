// Package testutil holds helpers shared by package tests: environment
// gated integration setup and fake gateways reachable over HTTP or gRPC.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/gatewayperf/gatewayperf/internal/clients/grpcgw"
	"github.com/gatewayperf/gatewayperf/internal/clients/httpgw"
	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/fakegateway"
	"github.com/gatewayperf/gatewayperf/internal/fakers"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 420421

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewHTTPGateway serves bank over httptest and returns an HTTP client for
// it. Everything is closed when the test ends.
func NewHTTPGateway(t testing.TB, bank *fakegateway.Bank, opts ...httpgw.Option) *httpgw.Gateway {
	t.Helper()
	return NewHTTPGatewayWith(t, fakegateway.NewHTTPHandler(bank, DiscardLogger(), fakegateway.Options{}), opts...)
}

// NewHTTPGatewayWith is NewHTTPGateway over an arbitrary handler, e.g. one
// that wraps the fake gateway to inject failures.
func NewHTTPGatewayWith(t testing.TB, handler http.Handler, opts ...httpgw.Option) *httpgw.Gateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]httpgw.Option{
		httpgw.WithLogger(DiscardLogger()),
		httpgw.WithFaker(fakers.New(1)),
	}, opts...)
	c, err := httpgw.New(config.HTTPClientConfig{URL: srv.URL, Timeout: 10 * time.Second}, opts...)
	if err != nil {
		t.Fatalf("httpgw.New() error = %v", err)
	}
	gw := httpgw.NewGateway(c)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

// NewGRPCGateway serves bank over an in-memory gRPC listener and returns a
// gRPC client for it.
func NewGRPCGateway(t testing.TB, bank *fakegateway.Bank, opts ...grpcgw.Option) *grpcgw.Gateway {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := fakegateway.NewGRPCServer(bank, DiscardLogger(), fakegateway.Options{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	opts = append([]grpcgw.Option{
		grpcgw.WithLogger(DiscardLogger()),
		grpcgw.WithFaker(fakers.New(1)),
		grpcgw.WithTarget("passthrough:///bufnet"),
		grpcgw.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	}, opts...)
	c, err := grpcgw.New(config.GRPCClientConfig{Host: "bufnet", Port: 9003, Timeout: 10 * time.Second}, opts...)
	if err != nil {
		t.Fatalf("grpcgw.New() error = %v", err)
	}
	gw := grpcgw.NewGateway(c)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}
