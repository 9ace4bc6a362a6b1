package bootstrap

import (
	"io"
	"time"

	"github.com/kbukum/pandora/config"
	"github.com/kbukum/pandora/di"
	"github.com/kbukum/pandora/logger"
	"github.com/kbukum/pandora/observability"
)

// Option configures the App during creation.
// Options are non-generic so they can be used with any config type.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger          *logger.Logger
	telemetry       *observability.Providers
	loaderOpts      []config.LoaderOption
	containerOpts   []di.Option
	gracefulTimeout *time.Duration
	summaryOut      io.Writer
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is auto-initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithTelemetry sets pre-built telemetry providers.
// If not set, providers are built from the config's Telemetry field.
func WithTelemetry(p *observability.Providers) Option {
	return func(o *appOptions) {
		o.telemetry = p
	}
}

// WithConfigFile loads configuration from an explicit file path.
func WithConfigFile(path string) Option {
	return func(o *appOptions) {
		o.loaderOpts = append(o.loaderOpts, config.WithConfigFile(path))
	}
}

// WithEnvFile loads an explicit .env file.
func WithEnvFile(path string) Option {
	return func(o *appOptions) {
		o.loaderOpts = append(o.loaderOpts, config.WithEnvFile(path))
	}
}

// WithFileSystem sets the file system used to search for config files.
func WithFileSystem(fs config.FileSystem) Option {
	return func(o *appOptions) {
		o.loaderOpts = append(o.loaderOpts, config.WithFileSystem(fs))
	}
}

// WithContainerOptions appends options applied after the ones derived from config.
func WithContainerOptions(opts ...di.Option) Option {
	return func(o *appOptions) {
		o.containerOpts = append(o.containerOpts, opts...)
	}
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}

// WithSummaryOutput sets where the startup summary is printed. Defaults to stdout.
func WithSummaryOutput(w io.Writer) Option {
	return func(o *appOptions) {
		o.summaryOut = w
	}
}
