package observability

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/pandora/errors"
	"github.com/kbukum/pandora/logger"
)

// Providers holds the tracer and meter providers built by Init.
type Providers struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	shutdowns []func(context.Context) error
}

// Init builds the telemetry providers described by cfg and installs them as
// the OpenTelemetry globals. When cfg.Enabled is false it returns noop
// providers and leaves the globals untouched.
func Init(ctx context.Context, cfg Config) (*Providers, error) {
	cfg.ApplyDefaults()
	if !cfg.Enabled {
		return Noop(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := newResource(&cfg)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("creating resource: %w", err)).
			WithDetail(logger.FieldOperation, "resource")
	}

	tp, err := newTracerProvider(ctx, &cfg, res)
	if err != nil {
		return nil, errors.Internal(err).WithDetail(logger.FieldOperation, "tracer")
	}
	mp, err := newMeterProvider(ctx, &cfg, res)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, errors.Internal(err).WithDetail(logger.FieldOperation, "meter")
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("telemetry initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"sample_rate", cfg.SampleRate,
		"metric_interval", cfg.MetricInterval.String(),
	))

	return &Providers{
		TracerProvider: tp,
		MeterProvider:  mp,
		shutdowns:      []func(context.Context) error{tp.Shutdown, mp.Shutdown},
	}, nil
}

// Noop returns providers that record nothing.
func Noop() *Providers {
	return &Providers{
		TracerProvider: tracenoop.NewTracerProvider(),
		MeterProvider:  metricnoop.NewMeterProvider(),
	}
}

// Enabled reports whether the providers export telemetry.
func (p *Providers) Enabled() bool {
	return len(p.shutdowns) > 0
}

// Shutdown flushes and stops the providers. It is safe to call more than once.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, shutdown := range p.shutdowns {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdowns = nil
	return stderrors.Join(errs...)
}
