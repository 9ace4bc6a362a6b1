package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/pandora/config"
	"github.com/kbukum/pandora/di"
	"github.com/kbukum/pandora/logger"
	"github.com/kbukum/pandora/observability"
	"github.com/kbukum/pandora/version"
)

// Task is the unit of work run by App.Run.
type Task func(ctx context.Context, c *di.Container) error

// App represents an application with uniform lifecycle management.
// The type parameter C is the config type, which must satisfy the Config interface.
// Any struct embedding config.ServiceConfig automatically satisfies Config.
//
// Example:
//
//	app, err := bootstrap.NewApp("greeter", &MyConfig{})
//	app.OnConfigure(func(ctx context.Context, a *bootstrap.App[*MyConfig]) error {
//	    // a.Cfg is *MyConfig, fully typed
//	    return a.Container.Singleton(a.Cfg.Greeting, "greeting")
//	})
type App[C Config] struct {
	Name      string
	Version   string
	Cfg       C
	Container *di.Container
	Logger    *logger.Logger
	Telemetry *observability.Providers
	Summary   *Summary

	gracefulTimeout time.Duration
	summaryOut      io.Writer
	onConfigure     []func(ctx context.Context, app *App[C]) error

	onStart []Hook
	onStop  []Hook
}

// New creates an application backed by a plain config.ServiceConfig.
func New(serviceName string, opts ...Option) (*App[*config.ServiceConfig], error) {
	return NewApp(serviceName, &config.ServiceConfig{}, opts...)
}

// NewApp creates a new application instance from a typed config. It loads
// configuration into cfg, applies defaults, validates, initializes the
// logger and telemetry, and builds the container, in that order.
func NewApp[C Config](serviceName string, cfg C, opts ...Option) (*App[C], error) {
	o := resolveOptions(opts)

	if err := config.LoadConfig(serviceName, cfg, o.loaderOpts...); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	base := cfg.GetServiceConfig()
	if base.Name == "" {
		base.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
		summaryOut:      os.Stdout,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.summaryOut != nil {
		app.summaryOut = o.summaryOut
	}

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&base.Logging)
		app.Logger = logger.GetGlobalLogger()
	}

	// Telemetry: use custom if provided, otherwise init from config.
	if o.telemetry != nil {
		app.Telemetry = o.telemetry
	} else {
		providers, err := observability.Init(context.Background(), base.Telemetry)
		if err != nil {
			return nil, fmt.Errorf("telemetry init: %w", err)
		}
		app.Telemetry = providers
	}

	containerOpts := append([]di.Option{
		di.WithConfig(base.Container),
		di.WithLogger(app.Logger.WithComponent("di")),
		di.WithTracerProvider(app.Telemetry.TracerProvider),
		di.WithMeterProvider(app.Telemetry.MeterProvider),
	}, o.containerOpts...)
	app.Container = di.New(containerOpts...)

	app.Summary = NewSummary(base.Name, base.Version)
	app.Summary.SetTelemetry(app.Telemetry.Enabled())
	return app, nil
}

// OnConfigure registers a callback to run during the configure phase.
// Use this to register bindings once infrastructure is up.
func (a *App[C]) OnConfigure(fn func(ctx context.Context, app *App[C]) error) {
	a.onConfigure = append(a.onConfigure, fn)
}

// Run executes task with the full bootstrap lifecycle:
// OnStart hooks → Configure → Summary → task → OnStop hooks → Shutdown.
// The task context is canceled on SIGINT/SIGTERM. Shutdown runs whether or
// not the task succeeds; the task error takes precedence.
func (a *App[C]) Run(ctx context.Context, task Task) error {
	if err := a.startup(ctx); err != nil {
		if stopErr := a.Shutdown(ctx); stopErr != nil {
			a.Logger.Error("Shutdown after failed startup", logger.ErrorFields("shutdown", stopErr))
		}
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx, a.Container)

	if stopErr := a.Shutdown(ctx); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

// startup runs start hooks and configure callbacks, then displays the summary.
func (a *App[C]) startup(ctx context.Context) error {
	start := time.Now()

	a.Logger.Info("Starting application", logger.Fields(
		"name", a.Name,
		"version", a.Version,
		"build", version.Get().Short(),
	))

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	if err := a.configure(ctx); err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	a.Summary.SetStartupDuration(time.Since(start))
	a.DisplaySummary()
	a.LogRegistrations()
	return nil
}

// configure runs registered configuration callbacks.
func (a *App[C]) configure(ctx context.Context) error {
	if len(a.onConfigure) == 0 {
		return nil
	}

	a.Logger.Info("Running configuration callbacks", logger.Fields("count", len(a.onConfigure)))
	for _, fn := range a.onConfigure {
		if err := fn(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// DisplaySummary prints the startup summary with the container's registrations.
func (a *App[C]) DisplaySummary() {
	a.Summary.Render(a.summaryOut, a.Container.Registrations())
}

// LogRegistrations logs one debug entry per registered binding.
func (a *App[C]) LogRegistrations() {
	regs := a.Container.Registrations()
	for _, r := range regs {
		a.Logger.Debug("binding", logger.Fields(
			logger.FieldKey, r.Key,
			logger.FieldKind, r.Kind,
			logger.FieldShared, r.Shared,
			logger.FieldHooks, r.Hooks,
		))
	}
	a.Logger.Info("Container ready", logger.Fields("bindings", len(regs)))
}

// Shutdown runs stop hooks and flushes telemetry within the graceful timeout.
// Use when managing your own lifecycle.
func (a *App[C]) Shutdown(ctx context.Context) error {
	a.Logger.Info("Shutting down application", logger.Fields("timeout", a.gracefulTimeout.String()))

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.gracefulTimeout)
	defer cancel()

	var errs []error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", logger.ErrorFields("shutdown", err))
		errs = append(errs, err)
	}
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.Error("Telemetry shutdown error", logger.ErrorFields("shutdown", err))
		errs = append(errs, err)
	}

	a.Logger.Info("Application shutdown complete")
	return stderrors.Join(errs...)
}
