// Package main runs the factorial API: GET /factorial/{number} plus health
// probes. Dependencies are wired with samber/do v2; SIGINT or SIGTERM
// drains in-flight requests before exit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/factorial-service/internal/adapters/http"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/factorial-service/internal/app"
	"github.com/jsamuelsen11/factorial-service/internal/platform/bootstrap"
	"github.com/jsamuelsen11/factorial-service/internal/platform/health"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

const (
	configDir           = "configs/api"
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proc, err := bootstrap.Start(ctx, configDir, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := proc.Close(closeCtx); err != nil {
			proc.Logger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	server, err := do.Invoke[*adapthttp.Server](newInjector(proc))
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	proc.Logger.Info("shutdown complete")
	return nil
}

func newInjector(proc *bootstrap.Process) *do.RootScope {
	cfg, logger := proc.Config, proc.Logger
	injector := do.New()

	do.Provide(injector, func(_ do.Injector) (ports.FactorialService, error) {
		return app.NewFactorialService(cfg.Factorial.MaxInput, proc.Metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.DefaultCheckTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FactorialHandler, error) {
		return handlers.NewFactorialHandler(do.MustInvoke[ports.FactorialService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewAPIRouter(
			do.MustInvoke[*handlers.FactorialHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Stack(middleware.StackOptions{
				Logger:  logger,
				Metrics: proc.Metrics,
				Timeout: cfg.Server.WriteTimeout,
			})...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector
}
