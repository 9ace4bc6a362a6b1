// Package observability sets up OpenTelemetry tracing and metrics export.
//
//	providers, err := observability.Init(ctx, cfg.Telemetry)
//	if err != nil {
//	    return err
//	}
//	defer providers.Shutdown(ctx)
//
//	c := di.New(
//	    di.WithTracerProvider(providers.TracerProvider),
//	    di.WithMeterProvider(providers.MeterProvider),
//	)
//
// Traces and metrics are exported over OTLP/HTTP. A disabled Config yields
// noop providers.
package observability
