package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/pandora/errors"
	"github.com/kbukum/pandora/logger"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.MetricInterval != 15*time.Second {
		t.Errorf("expected MetricInterval 15s, got %v", cfg.MetricInterval)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected environment 'development', got %s", cfg.Environment)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad endpoint", func(c *Config) { c.Endpoint = "not an endpoint" }, true},
		{"sample rate above one", func(c *Config) { c.SampleRate = 1.5 }, true},
		{"negative sample rate", func(c *Config) { c.SampleRate = -0.1 }, true},
		{"negative interval", func(c *Config) { c.MetricInterval = -time.Second }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{}
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); !strings.Contains(got, tc.want) {
			t.Errorf("rate %v: expected %s in %q", tc.rate, tc.want, got)
		}
	}
}

func TestNewResourceMergesWithDefault(t *testing.T) {
	res, err := newResource(&Config{ServiceName: "orders", ServiceVersion: "1.2.3", Environment: "staging"})
	if err != nil {
		t.Fatalf("newResource failed: %v", err)
	}
	if res.SchemaURL() != resource.Default().SchemaURL() {
		t.Errorf("expected schema %q, got %q", resource.Default().SchemaURL(), res.SchemaURL())
	}

	tests := []struct {
		key  attribute.Key
		want string
	}{
		{"service.name", "orders"},
		{"service.version", "1.2.3"},
		{"environment", "staging"},
	}
	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			v, ok := res.Set().Value(tc.key)
			if !ok || v.AsString() != tc.want {
				t.Errorf("expected %s=%q, got %q", tc.key, tc.want, v.AsString())
			}
		})
	}
}

func TestInitDisabledReturnsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	p, err := Init(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if p.Enabled() {
		t.Error("expected noop providers")
	}
	if otel.GetTracerProvider() != before {
		t.Error("expected globals to be left untouched")
	}

	_, span := p.TracerProvider.Tracer("test").Start(context.Background(), "op")
	if span.IsRecording() {
		t.Error("expected noop span")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("expected noop shutdown to succeed, got %v", err)
	}
}

func TestInitInvalidConfig(t *testing.T) {
	_, err := Init(context.Background(), Config{Enabled: true, SampleRate: 3})
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestInitEnabledExportsToCollector(t *testing.T) {
	logger.SetGlobalLogger(logger.Nop())

	received := make(chan string, 8)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case received <- r.URL.Path:
		default:
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := Init(ctx, Config{
		Enabled:     true,
		ServiceName: "pandora-test",
		Endpoint:    strings.TrimPrefix(collector.URL, "http://"),
		Insecure:    true,
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !p.Enabled() {
		t.Fatal("expected exporting providers")
	}
	if _, ok := p.TracerProvider.(*sdktrace.TracerProvider); !ok {
		t.Errorf("expected sdk tracer provider, got %T", p.TracerProvider)
	}
	if otel.GetTracerProvider() != p.TracerProvider {
		t.Error("expected Init to install the global tracer provider")
	}

	_, span := p.TracerProvider.Tracer("test").Start(ctx, "op")
	span.End()

	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("expected second Shutdown to be a no-op, got %v", err)
	}

	select {
	case path := <-received:
		if path != "/v1/traces" && path != "/v1/metrics" {
			t.Errorf("unexpected export path %q", path)
		}
	default:
		t.Error("expected the collector to receive an export")
	}
}
