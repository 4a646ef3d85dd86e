// Command server runs the phase tracker API: it loads the seed data, wires
// the tracker with samber/do and serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/phase-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl/fixture"
	"github.com/jsamuelsen11/phase-tracker/internal/app"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/config"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/health"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/phase-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	seedLoadTimeout       = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	tel, err := startTelemetry(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer tel.flush(logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph, seed load included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	registerHealthChecks(injector)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, server, logger)
}

// serve runs server until ctx is canceled, then drains in-flight requests.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	if err := server.Listen(); err != nil {
		return err
	}

	stopped := make(chan error, 1)
	go func() { stopped <- server.Start() }()

	select {
	case err := <-stopped:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.String("cause", context.Cause(ctx).Error()))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-stopped

	logger.Info("shutdown complete")
	return nil
}

// telemetryStack owns the OpenTelemetry providers. Every field is nil when
// telemetry is disabled.
type telemetryStack struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (_ *telemetryStack, err error) {
	tel := &telemetryStack{}
	if !cfg.Enabled {
		return tel, nil
	}
	defer func() {
		if err != nil {
			_ = tel.shutdown(ctx)
		}
	}()

	if tel.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if tel.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("init meter: %w", err)
	}
	if tel.metrics, err = telemetry.NewMetrics(tel.meter, cfg.ServiceName); err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return tel, nil
}

func (t *telemetryStack) shutdown(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		errs = append(errs, t.tracer.Shutdown(ctx))
	}
	if t.meter != nil {
		errs = append(errs, t.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// flush exports buffered spans and metrics within otelShutdownTimeout.
func (t *telemetryStack) flush(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := t.shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.RemoteSourceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FixtureLoader, error) {
		var client *httpclient.Client
		if cfg.Seed.Source == config.SeedSourceRemote {
			client = do.MustInvoke[*httpclient.Client](i)
		}
		return acl.NewLoader(cfg.Seed, client, logger)
	})

	do.Provide(injector, func(i do.Injector) (*app.TrackerService, error) {
		loader, err := do.Invoke[ports.FixtureLoader](i)
		if err != nil {
			return nil, err
		}
		data, err := loadSeed(loader, logger)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTrackerService(app.NewTrackerStores(data), logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TrackerService, error) {
		return do.Invoke[*app.TrackerService](i)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.TrackerService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return adapthttp.NewHandlers(svc, registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthChecks adds the readiness checks once the graph is wired:
// the tracker stores always, the seed source when it can report health.
func registerHealthChecks(injector do.Injector) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	tracker := do.MustInvoke[*app.TrackerService](injector)
	registry.Register(health.NewCheck(app.StoreCheckName, tracker.CheckStores))
	if checker, ok := do.MustInvoke[ports.FixtureLoader](injector).(ports.HealthChecker); ok {
		registry.Register(checker)
	}
}

// loadSeed reads the initial data and logs every consistency issue. Issues
// do not stop startup; the tracker serves the data as loaded.
func loadSeed(loader ports.FixtureLoader, logger *slog.Logger) (ports.InitialData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), seedLoadTimeout)
	defer cancel()

	data, err := loader.Load(ctx)
	if err != nil {
		return ports.InitialData{}, fmt.Errorf("loading seed data: %w", err)
	}

	for _, issue := range fixture.Check(data) {
		logger.Warn("inconsistent seed data",
			slog.String("entity", issue.Entity),
			slog.String("id", issue.ID),
			slog.String("reason", issue.Reason),
		)
	}
	return data, nil
}
