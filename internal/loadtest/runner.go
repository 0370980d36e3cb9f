package loadtest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/gatewayperf/gatewayperf/internal/config"
)

// UserFactory builds the task set of virtual user n (starting at 1).
// Every call must return a fresh set.
type UserFactory func(n int) *TaskSet

// Options configures a Runner.
type Options struct {
	Users     int
	SpawnRate float64
	// RunTime stops the run when positive; otherwise the run lasts until
	// the context is done.
	RunTime time.Duration
	WaitMin time.Duration
	WaitMax time.Duration

	// CSVPrefix enables periodic CSV snapshots when set.
	CSVPrefix     string
	StatsInterval time.Duration
}

// OptionsFromConfig builds Options from the load and user sections.
func OptionsFromConfig(load config.LoadConfig, user config.LocustUserConfig) Options {
	return Options{
		Users:         load.Users,
		SpawnRate:     load.SpawnRate,
		RunTime:       load.RunTime,
		WaitMin:       user.WaitTimeMin,
		WaitMax:       user.WaitTimeMax,
		CSVPrefix:     load.CSVPrefix,
		StatsInterval: load.StatsInterval,
	}
}

func (o Options) validate() error {
	switch {
	case o.Users <= 0:
		return errors.New("users must be positive")
	case o.SpawnRate <= 0:
		return errors.New("spawn rate must be positive")
	case o.WaitMin < 0 || o.WaitMax < o.WaitMin:
		return fmt.Errorf("invalid wait range [%s, %s]", o.WaitMin, o.WaitMax)
	}
	return nil
}

// Runner spawns virtual users and runs them until the run ends.
type Runner struct {
	opts   Options
	stats  *Stats
	logger *slog.Logger
	active atomic.Int64
}

// NewRunner creates a Runner reporting into stats.
func NewRunner(opts Options, stats *Stats, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.StatsInterval <= 0 {
		opts.StatsInterval = 5 * time.Second
	}
	return &Runner{
		opts:   opts,
		stats:  stats,
		logger: logger.With("component", "loadtest"),
	}
}

// ActiveUsers returns the number of running virtual users.
func (r *Runner) ActiveUsers() int {
	return int(r.active.Load())
}

// Run spawns Users users at SpawnRate per second and blocks until every
// user has stopped. Reaching RunTime or cancelling ctx ends the run
// without error.
func (r *Runner) Run(ctx context.Context, factory UserFactory) error {
	if err := r.opts.validate(); err != nil {
		return err
	}

	if r.opts.RunTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.RunTime)
		defer cancel()
	}

	r.logger.Info("load run started",
		"users", r.opts.Users,
		"spawn_rate", r.opts.SpawnRate,
		"run_time", r.opts.RunTime.String(),
	)
	start := time.Now()

	// runCtx also ends once every user has stopped on its own.
	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()

	var reporter errgroup.Group
	if r.opts.CSVPrefix != "" {
		csvWriter := NewCSVWriter(r.opts.CSVPrefix, r.stats)
		reporter.Go(func() error {
			return csvWriter.Run(runCtx, r.opts.StatsInterval)
		})
	}

	// Burst of one starts the first user at once and paces the rest.
	limiter := rate.NewLimiter(rate.Limit(r.opts.SpawnRate), 1)
	g, gctx := errgroup.WithContext(runCtx)
	spawned := 0
	for n := 1; n <= r.opts.Users; n++ {
		if err := limiter.Wait(gctx); err != nil {
			break
		}
		ts := factory(n)
		g.Go(func() error {
			return r.runUser(gctx, n, ts)
		})
		spawned++
	}
	r.logger.Info("spawning finished", "spawned", spawned)

	err := g.Wait()
	stopRun()
	if reportErr := reporter.Wait(); reportErr != nil && err == nil {
		err = fmt.Errorf("write csv stats: %w", reportErr)
	}

	total := r.stats.Total()
	r.logger.Info("load run finished",
		"duration", time.Since(start).String(),
		"requests", total.NumRequests,
		"failures", total.NumFailures,
	)
	return err
}

func (r *Runner) runUser(ctx context.Context, n int, ts *TaskSet) error {
	r.stats.SetUserCount(int(r.active.Add(1)))
	defer func() { r.stats.SetUserCount(int(r.active.Add(-1))) }()

	p, err := newPicker(ts)
	if err != nil {
		return fmt.Errorf("user %d: %w", n, err)
	}
	logger := r.logger.With("user", n)

	if ts.OnStart != nil {
		if err := ts.OnStart(ctx); err != nil {
			if errors.Is(err, ErrStopUser) || ctx.Err() != nil {
				return nil
			}
			r.stats.RecordException("on_start", err)
			logger.Debug("on start failed", "error", err)
		}
	}

	for ctx.Err() == nil {
		task := p.next()
		if err := task.Run(ctx); err != nil {
			if errors.Is(err, ErrStopUser) {
				logger.Debug("user stopped", "task", task.Name)
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			r.stats.RecordException(task.Name, err)
			logger.Debug("task failed", "task", task.Name, "error", err)
		}
		if !r.wait(ctx) {
			return nil
		}
	}
	return nil
}

// wait sleeps a random duration in [WaitMin, WaitMax]. It reports false
// when ctx ended first.
func (r *Runner) wait(ctx context.Context) bool {
	d := r.opts.WaitMin
	if spread := r.opts.WaitMax - r.opts.WaitMin; spread > 0 {
		d += rand.N(spread + 1)
	}
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
