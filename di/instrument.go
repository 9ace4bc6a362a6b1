package di

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/pandora/logger"
)

// Span and metric names.
const (
	SpanResolve           = "di.resolve"
	MetricResolutions     = "di.resolutions"
	MetricResolveDuration = "di.resolution.duration"
)

// Attribute keys.
const (
	AttrKey          = "di.key"
	AttrResolutionID = "di.resolution_id"
	AttrDepth        = "di.depth"
	AttrKind         = "di.kind"
	AttrOutcome      = "outcome"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type instruments struct {
	tracer      trace.Tracer
	resolutions metric.Int64Counter
	duration    metric.Float64Histogram
}

func newInstruments(name string, tp trace.TracerProvider, mp metric.MeterProvider, log *logger.Logger) *instruments {
	meter := mp.Meter(name)

	resolutions, err := meter.Int64Counter(MetricResolutions,
		metric.WithDescription("Total number of key resolutions"),
	)
	if err != nil {
		log.Warn("creating resolution counter failed", logger.ErrorFields("instrument", err))
		resolutions = noop.Int64Counter{}
	}

	duration, err := meter.Float64Histogram(MetricResolveDuration,
		metric.WithDescription("Duration of key resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		log.Warn("creating resolution histogram failed", logger.ErrorFields("instrument", err))
		duration = noop.Float64Histogram{}
	}

	return &instruments{
		tracer:      tp.Tracer(name),
		resolutions: resolutions,
		duration:    duration,
	}
}

func (in *instruments) start(ctx context.Context, key, resolutionID string, depth int) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, SpanResolve, trace.WithAttributes(
		attribute.String(AttrKey, key),
		attribute.String(AttrResolutionID, resolutionID),
		attribute.Int(AttrDepth, depth),
	))
}

func (in *instruments) record(ctx context.Context, key, kind, outcome string, d time.Duration) {
	in.resolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrKey, key),
		attribute.String(AttrKind, kind),
		attribute.String(AttrOutcome, outcome),
	))
	in.duration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String(AttrKey, key),
	))
}
