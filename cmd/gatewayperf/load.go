package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gatewayperf/gatewayperf/internal/loadtest"
	"github.com/gatewayperf/gatewayperf/internal/logging"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
	"github.com/gatewayperf/gatewayperf/internal/middleware"
	"github.com/gatewayperf/gatewayperf/internal/scenarios"
	"github.com/gatewayperf/gatewayperf/internal/seeds"
	"github.com/gatewayperf/gatewayperf/internal/server"
)

type loadFlags struct {
	users     int
	spawnRate float64
	runTime   time.Duration
	csvPrefix string
}

func newLoadCmd(a *app) *cobra.Command {
	var flags loadFlags

	cmd := &cobra.Command{
		Use:   "load <scenario>",
		Short: "Run a load scenario against the gateway",
		Long: `Spawn virtual users running the scenario's task set and print request
statistics when the run ends. Seed-driven scenarios load the result of
"gatewayperf seed" for the same scenario first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return a.runLoad(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.users, "users", "u", 0, "number of virtual users (LOAD_USERS)")
	cmd.Flags().Float64VarP(&flags.spawnRate, "spawn-rate", "r", 0, "users started per second (LOAD_SPAWN_RATE)")
	cmd.Flags().DurationVarP(&flags.runTime, "run-time", "t", 0, "stop after this long (LOAD_RUN_TIME)")
	cmd.Flags().StringVar(&flags.csvPrefix, "csv", "", "write CSV stats with this prefix (LOAD_CSV_PREFIX)")
	return cmd
}

func (a *app) runLoad(cmd *cobra.Command, name string, flags loadFlags) error {
	ctx := cmd.Context()

	scenario, err := scenarios.Lookup(name)
	if err != nil {
		return err
	}

	env := scenarios.Env{}
	if scenario.NeedsSeeds() {
		env.Seeds, err = a.loadSeeds(ctx, scenario.Seeds)
		if err != nil {
			return err
		}
	}

	stats := loadtest.NewStats(a.cfg.Load.Percentiles)
	var recorder metrics.Recorder = stats

	var exporter errgroup.Group
	exporterCtx, stopExporter := context.WithCancel(ctx)
	defer stopExporter()
	if addr := a.cfg.Load.MetricsAddr; addr != "" {
		prom := metrics.NewPrometheus()
		recorder = metrics.Multi(stats, prom)

		srv, err := a.metricsServer(addr, prom)
		if err != nil {
			return err
		}
		exporter.Go(func() error { return srv.Run(exporterCtx) })
		a.logger.Info("serving load metrics", "addr", addr, "path", "/metrics")
	}

	env.Gateway, err = a.dial(recorder)
	if err != nil {
		return err
	}
	defer env.Gateway.Close()

	factory, err := scenario.Factory(env)
	if err != nil {
		return err
	}

	opts := loadtest.OptionsFromConfig(a.cfg.Load, a.cfg.LocustUser)
	if flags.users > 0 {
		opts.Users = flags.users
	}
	if flags.spawnRate > 0 {
		opts.SpawnRate = flags.spawnRate
	}
	if flags.runTime > 0 {
		opts.RunTime = flags.runTime
	}
	if flags.csvPrefix != "" {
		opts.CSVPrefix = flags.csvPrefix
	}

	runErr := loadtest.NewRunner(opts, stats, a.logger).Run(ctx, factory)
	stopExporter()
	if err := exporter.Wait(); err != nil {
		a.logger.Warn("metrics server error", "error", err)
	}

	stats.WriteSummary(cmd.OutOrStdout())
	return runErr
}

func (a *app) loadSeeds(ctx context.Context, name string) (*seeds.Result, error) {
	store, err := seeds.OpenStore(ctx, a.cfg.Seeds)
	if err != nil {
		a.logger.Error("failed to open seeds store",
			"store", a.cfg.Seeds.Store,
			"error", logging.SanitizeError(err, a.cfg.Seeds.DatabaseURL, a.cfg.Seeds.RedisURL),
		)
		return nil, fmt.Errorf("open %s seeds store", a.cfg.Seeds.Store)
	}
	defer store.Close()

	result, err := store.Load(ctx, name)
	if errors.Is(err, seeds.ErrResultNotFound) {
		return nil, fmt.Errorf("%w: run \"gatewayperf seed %s\" first", err, name)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Info("seeds loaded", "scenario", name, "users", result.UserCount())
	return result, nil
}

func (a *app) metricsServer(addr string, prom *metrics.PrometheusRecorder) (*server.Server, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOAD_METRICS_ADDR %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOAD_METRICS_ADDR port %q: %w", portStr, err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer(a.logger))
	r.Handle("/metrics", prom.Handler())

	return server.New(r, port, 5*time.Second, 10*time.Second, 5*time.Second, a.logger), nil
}
