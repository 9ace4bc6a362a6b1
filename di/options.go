package di

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/pandora/logger"
	"github.com/kbukum/pandora/validation"
)

// DefaultTracerName is the instrumentation scope used for spans and metrics.
const DefaultTracerName = "github.com/kbukum/pandora/di"

// Config contains container configuration.
type Config struct {
	// Strict disables implicit construction of unbound type keys.
	Strict bool `yaml:"strict" mapstructure:"strict"`
	// LogResolutions logs every resolved key at debug level.
	LogResolutions bool `yaml:"log_resolutions" mapstructure:"log_resolutions"`
	// TracerName is the instrumentation scope name.
	TracerName string `yaml:"tracer_name" mapstructure:"tracer_name" validate:"required"`
}

// ApplyDefaults applies default values to container configuration.
func (c *Config) ApplyDefaults() {
	if c.TracerName == "" {
		c.TracerName = DefaultTracerName
	}
}

// Validate validates container configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// Option configures a Container.
type Option func(*options)

type options struct {
	config         Config
	logger         *logger.Logger
	annotations    *Annotations
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	o.config.ApplyDefaults()
	if o.logger == nil {
		o.logger = logger.WithComponent("di")
	}
	if o.annotations == nil {
		o.annotations = NewAnnotations()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
	return o
}

// WithConfig sets the container configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger. Defaults to the global logger tagged "di".
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithAnnotations shares an annotation registry with the container.
// Defaults to a fresh, empty registry.
func WithAnnotations(a *Annotations) Option {
	return func(o *options) {
		o.annotations = a
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}
