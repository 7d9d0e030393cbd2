// Package main runs the calculator web: an HTML form on GET / whose POST /
// asks the factorial API for the result. Dependencies are wired with
// samber/do v2; SIGINT or SIGTERM drains in-flight requests before exit.
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

	"github.com/jsamuelsen11/factorial-service/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/factorial-service/internal/adapters/http"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/view"
	"github.com/jsamuelsen11/factorial-service/internal/app"
	"github.com/jsamuelsen11/factorial-service/internal/platform/bootstrap"
	"github.com/jsamuelsen11/factorial-service/internal/platform/health"
	"github.com/jsamuelsen11/factorial-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

const (
	configDir           = "configs/web"
	downstreamName      = "factorial-api"
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

	injector := newInjector(proc)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	proc.Logger.Info("calling factorial API", slog.String("base_url", proc.Config.Client.BaseURL))

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	proc.Logger.Info("shutdown complete")
	return nil
}

func newInjector(proc *bootstrap.Process) *do.RootScope {
	cfg, logger := proc.Config, proc.Logger
	injector := do.New()

	do.Provide(injector, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, downstreamName, proc.Metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.FactorialClient, error) {
		return acl.NewFactorialClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CalculatorService, error) {
		client := do.MustInvoke[*acl.FactorialClient](i)
		return app.NewCalculatorService(client, logger), nil
	})

	// Readiness reports the API client's circuit breaker.
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.DefaultCheckTimeout)
		registry.Register(do.MustInvoke[*acl.FactorialClient](i))
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (*view.Renderer, error) {
		return view.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CalculatorHandler, error) {
		return handlers.NewCalculatorHandler(
			do.MustInvoke[ports.CalculatorService](i),
			do.MustInvoke[*view.Renderer](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewWebRouter(
			do.MustInvoke[*handlers.CalculatorHandler](i),
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
