// Package bootstrap brings up the process-wide pieces both binaries share:
// configuration for the APP_PROFILE profile, the logger and OpenTelemetry
// providers. Dependency wiring stays in each cmd.
//
// Each service reads its own {configDir}/.env before anything else, so
// APP_PROFILE may be set there as well as in the real environment.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/factorial-service/internal/platform/config"
	"github.com/jsamuelsen11/factorial-service/internal/platform/logging"
	"github.com/jsamuelsen11/factorial-service/internal/platform/telemetry"
)

// ProfileEnv names the variable that selects the config profile.
const ProfileEnv = "APP_PROFILE"

// Process holds what a service needs before its own wiring starts. Metrics
// is nil when telemetry is disabled.
type Process struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *telemetry.Metrics

	tracer   *sdktrace.TracerProvider
	meter    *sdkmetric.MeterProvider
	closeLog func() error
}

// Start loads configuration from configDir, builds the logger on top of
// console and initialises telemetry if enabled. Call Close when done, even
// after a later failure.
func Start(ctx context.Context, configDir string, console io.Writer) (*Process, error) {
	dotEnv := config.DotEnvPath(configDir)
	if err := config.LoadDotEnv(dotEnv); err != nil {
		return nil, err
	}

	profile := os.Getenv(ProfileEnv)
	if profile == "" {
		return nil, errors.New(ProfileEnv + " is required in the environment or " + dotEnv + " (e.g. local, prod)")
	}

	cfg, err := config.Load(profile, config.WithConfigDir(configDir), config.WithDotEnv(""))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	w, closeLog, err := logging.Output(console, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	p := &Process{
		Config:   cfg,
		Logger:   logging.New(cfg.Log.Level, cfg.Log.Format, w),
		closeLog: closeLog,
	}

	if err := p.initTelemetry(ctx); err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	p.Logger.Info("process started",
		slog.String("profile", profile),
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)
	return p, nil
}

func (p *Process) initTelemetry(ctx context.Context) error {
	tc := p.Config.Telemetry
	if !tc.Enabled {
		return nil
	}

	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, tc.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return fmt.Errorf("creating metrics: %w", err)
	}

	p.tracer, p.meter, p.Metrics = tp, mp, metrics
	return nil
}

// Close flushes telemetry and closes the log file. It is nil-safe.
func (p *Process) Close(ctx context.Context) error {
	if p == nil {
		return nil
	}

	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	if p.closeLog != nil {
		if err := p.closeLog(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	}
	return errors.Join(errs...)
}
