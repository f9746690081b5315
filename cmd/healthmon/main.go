// Command healthmon runs the health aggregation engine against a simulated
// workload and logs every published snapshot transition. It is a
// demonstration and smoke-test harness, not a production service: real
// applications embed the aggregator directly.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/c360/apphealth/aggregator"
	"github.com/c360/apphealth/config"
	pkgerrors "github.com/c360/apphealth/errors"
	"github.com/c360/apphealth/health"
	"github.com/c360/apphealth/metric"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "healthmon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; absence is not an error
	_ = godotenv.Load()

	flags := parseFlags()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	if flags.LogLevel != "" {
		cfg.Logging.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Logging.Format = flags.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("starting health monitor",
		"debounce_interval", cfg.Aggregator.DebounceInterval,
		"components", len(cfg.Demo.Components),
	)

	registry := metric.NewRegistry()
	agg := aggregator.New(cfg.Aggregator, logger, registry.CoreMetrics())
	defer agg.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	duration := flags.Duration
	if duration == 0 {
		duration = cfg.Demo.Duration
	}
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	demo := cfg.Demo.Components
	if len(demo) == 0 {
		demo = defaultDemoComponents()
	}

	g, ctx := errgroup.WithContext(ctx)

	for _, dc := range demo {
		dc := dc
		g.Go(func() error {
			return simulateComponent(ctx, agg, dc)
		})
	}

	g.Go(func() error {
		return watchTransitions(ctx, agg, logger)
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	logger.Info("health monitor stopped")
	return nil
}

// defaultDemoComponents is used when no demo section is configured
func defaultDemoComponents() []config.DemoComponent {
	return []config.DemoComponent{
		{Name: "database", Publishers: 2, FlapInterval: 3 * time.Second},
		{Name: "cache", Publishers: 1, FlapInterval: 5 * time.Second},
		{Name: "ingest", Publishers: 4, FlapInterval: 2 * time.Second},
	}
}

// simulateComponent drives one component's publishers through random status
// transitions until the context is cancelled
func simulateComponent(ctx context.Context, agg *aggregator.Aggregator, dc config.DemoComponent) error {
	comp := agg.Component(dc.Name)
	defer comp.Close()

	publishers := make([]*aggregator.Publisher, dc.Publishers)
	for i := range publishers {
		publishers[i] = comp.Publisher()
	}
	defer func() {
		for _, p := range publishers {
			p.Close()
		}
	}()

	interval := dc.FlapInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p := publishers[rand.Intn(len(publishers))]
			switch rand.Intn(4) {
			case 0:
				p.Degraded(fmt.Sprintf("%s responding slowly", dc.Name))
			case 1:
				p.Critical(fmt.Sprintf("%s unreachable", dc.Name))
			default:
				p.Healthy()
			}
		}
	}
}

// watchTransitions blocks on the monitor and logs every published snapshot
// transition
func watchTransitions(ctx context.Context, agg *aggregator.Aggregator, logger *slog.Logger) error {
	monitor := agg.Monitor()
	filter := health.FullFilter()

	for {
		report, err := monitor.WaitForChange(ctx, filter)
		if err != nil {
			if errors.Is(err, pkgerrors.ErrAggregatorClosed) {
				return nil
			}
			return err
		}

		logger.Info("health transition",
			"version", report.Version,
			"overall", report.Status.State.String(),
			"reason", report.Status.Reason,
		)

		for _, cr := range report.Components {
			logger.Info("component health",
				"component", cr.Name,
				"state", cr.Status.State.String(),
				"reason", cr.Status.Reason,
				"publishers", len(cr.Publishers),
			)
		}
	}
}
