package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/pandora/errors"
)

type telemetrySection struct {
	Endpoint   string  `mapstructure:"endpoint" validate:"required,hostname_port"`
	SampleRate float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

type sampleConfig struct {
	Name        string           `mapstructure:"name" validate:"required"`
	Environment string           `mapstructure:"environment" validate:"oneof=development staging production"`
	Telemetry   telemetrySection `mapstructure:"telemetry"`
	MaxDepth    int              `validate:"min=1"`
}

func validSample() sampleConfig {
	return sampleConfig{
		Name:        "svc",
		Environment: "staging",
		Telemetry:   telemetrySection{Endpoint: "localhost:4318", SampleRate: 0.5},
		MaxDepth:    8,
	}
}

func TestValidateValid(t *testing.T) {
	if err := Validate(validSample()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateFieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*sampleConfig)
		field   string
		message string
	}{
		{"required", func(c *sampleConfig) { c.Name = "" }, "name", "is required"},
		{"oneof", func(c *sampleConfig) { c.Environment = "qa" }, "environment", "must be one of: development staging production"},
		{"nested required", func(c *sampleConfig) { c.Telemetry.Endpoint = "" }, "telemetry.endpoint", "is required"},
		{"nested host port", func(c *sampleConfig) { c.Telemetry.Endpoint = "no-port" }, "telemetry.endpoint", "must be a host:port pair"},
		{"lte", func(c *sampleConfig) { c.Telemetry.SampleRate = 2 }, "telemetry.sample_rate", "must be less than or equal to 1"},
		{"snake case fallback", func(c *sampleConfig) { c.MaxDepth = 0 }, "max_depth", "must be at least 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validSample()
			tc.mutate(&cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
			}
			fields, ok := appErr.Details["fields"].([]FieldError)
			if !ok || len(fields) != 1 {
				t.Fatalf("expected one field error, got %v", appErr.Details["fields"])
			}
			if fields[0].Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, fields[0].Field)
			}
			if fields[0].Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, fields[0].Message)
			}
			if !strings.Contains(appErr.Message, tc.field+": "+tc.message) {
				t.Errorf("expected joined message, got %q", appErr.Message)
			}
		})
	}
}

func TestValidateNonStruct(t *testing.T) {
	err := Validate("not a struct")
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for non-struct input, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":       "name",
		"MaxDepth":   "max_depth",
		"TracerName": "tracer_name",
		"a":          "a",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
