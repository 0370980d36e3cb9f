// Package main runs the in-memory banking gateway over HTTP and gRPC.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/fakegateway"
	"github.com/gatewayperf/gatewayperf/internal/logging"
	"github.com/gatewayperf/gatewayperf/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, os.Stdout)
	fc := cfg.FakeGateway

	bank := fakegateway.NewBank(fakegateway.WithBaseURL(fc.BaseURL))
	opts := fakegateway.Options{Latency: fc.Latency, LatencyJitter: fc.LatencyJitter}

	srv := server.New(
		fakegateway.NewHTTPHandler(bank, logger, opts),
		fc.HTTPPort,
		fc.ReadTimeout,
		fc.WriteTimeout,
		fc.ShutdownTimeout,
		logger,
	).WithGRPC(fakegateway.NewGRPCServer(bank, logger, opts), fc.GRPCPort)

	logger.Info("starting fake gateway",
		"http_port", fc.HTTPPort,
		"grpc_port", fc.GRPCPort,
		"base_url", fc.BaseURL,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
