package di

import (
	"testing"

	"github.com/kbukum/pandora/errors"
)

func TestKeyNormalize(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		want     string
		wantCode errors.ErrorCode
	}{
		{"string key", Name("logger"), "logger", ""},
		{"type key", MustReference(NewFoo).Key(), "Foo", ""},
		{"named reference", MustReference(NewFoo, WithName("primary")).Key(), "primary", ""},
		{"annotated", Annotated, "", errors.ErrCodeInvalidKey},
		{"empty name", Name(""), "", errors.ErrCodeInvalidKey},
		{"unnamed reference", MustReference(func() struct{ X int } { return struct{ X int }{} }).Key(), "", errors.ErrCodeUnnamedReference},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.key.normalize()
			if tc.wantCode != "" {
				if !errors.HasCode(err, tc.wantCode) {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestKeyIsZero(t *testing.T) {
	if !Annotated.IsZero() || !Name("").IsZero() {
		t.Error("expected Annotated and Name(\"\") to be zero")
	}
	if Name("x").IsZero() || MustReference(NewFoo).Key().IsZero() {
		t.Error("expected named and type keys to be non-zero")
	}
}

func TestKeyString(t *testing.T) {
	if got := Annotated.String(); got != "<annotated>" {
		t.Errorf("unexpected annotated string %q", got)
	}
	if got := Name("bar").String(); got != "bar" {
		t.Errorf("unexpected name string %q", got)
	}
	if got := MustReference(NewFooParent).Key().String(); got != "FooParent" {
		t.Errorf("unexpected type key string %q", got)
	}
}

func TestKeyReference(t *testing.T) {
	ref := MustReference(NewFoo)
	if TypeKey(ref).Reference() != ref {
		t.Error("expected type key to carry its reference")
	}
	if Name("Foo").Reference() != nil {
		t.Error("expected string key to carry no reference")
	}
}
