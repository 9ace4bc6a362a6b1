package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidKey, "bad key")
	if err.Code != ErrCodeInvalidKey {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidKey, err.Code)
	}
	if err.Message != "bad key" {
		t.Errorf("expected message 'bad key', got %q", err.Message)
	}
}

func TestAppError_BindingNotFound_Success(t *testing.T) {
	err := BindingNotFound("nonexistent")
	if err.Code != ErrCodeBindingNotFound {
		t.Errorf("expected BINDING_NOT_FOUND, got %s", err.Code)
	}
	if err.Details["key"] != "nonexistent" {
		t.Errorf("expected key=nonexistent, got %v", err.Details["key"])
	}
	want := "A binding named nonexistent was requested from the app container, but was not found."
	if err.Message != want {
		t.Errorf("expected message %q, got %q", want, err.Message)
	}
}

func TestAppError_CyclicDependency_Path(t *testing.T) {
	path := []string{"A", "B", "A"}
	err := CyclicDependency(path)
	if !strings.Contains(err.Message, "A -> B -> A") {
		t.Errorf("expected path in message, got %q", err.Message)
	}
	path[0] = "mutated"
	if got := err.Details["path"].([]string)[0]; got != "A" {
		t.Errorf("expected path to be copied, got %q", got)
	}
}

func TestAppError_TypeMismatch_Details(t *testing.T) {
	err := TypeMismatch("Foo", "string", "int")
	if err.Details["expected"] != "string" {
		t.Errorf("expected expected=string, got %v", err.Details["expected"])
	}
	if err.Details["actual"] != "int" {
		t.Errorf("expected actual=int, got %v", err.Details["actual"])
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("index", "out of range")
	if err.Details["field"] != "index" {
		t.Errorf("expected field=index, got %v", err.Details["field"])
	}

	noField := InvalidInput("", "broken")
	if _, ok := noField.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Internal(nil).WithCause(cause)
	if err.Cause != cause {
		t.Error("WithCause should set the cause")
	}
	if !stderrors.Is(err, cause) {
		t.Error("stderrors.Is should find the cause through Unwrap")
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := ConstructionFailed("Foo", "too many arguments")
	err.WithDetails(map[string]any{"given": 3, "accepted": 2})

	if err.Details["reference"] != "Foo" {
		t.Error("existing details should be preserved")
	}
	if err.Details["given"] != 3 || err.Details["accepted"] != 2 {
		t.Errorf("expected merged details, got %v", err.Details)
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := InvalidKey("empty")
	err.WithDetail("kind", "string")
	if err.Details["kind"] != "string" {
		t.Errorf("expected kind=string, got %v", err.Details["kind"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := InvalidConstructor("not a function")
	if got := err.Error(); got != "INVALID_CONSTRUCTOR: Invalid constructor: not a function" {
		t.Errorf("unexpected format: %q", got)
	}

	withCause := Internal(fmt.Errorf("boom"))
	if !strings.Contains(withCause.Error(), "(cause: boom)") {
		t.Errorf("expected cause in message, got %q", withCause.Error())
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"BindingNotFound", BindingNotFound("x"), ErrCodeBindingNotFound},
		{"CyclicDependency", CyclicDependency([]string{"a", "a"}), ErrCodeCyclicDependency},
		{"InvalidKey", InvalidKey("zero"), ErrCodeInvalidKey},
		{"UnnamedReference", UnnamedReference("struct {}"), ErrCodeUnnamedReference},
		{"InvalidConstructor", InvalidConstructor("nil"), ErrCodeInvalidConstructor},
		{"ConstructionFailed", ConstructionFailed("Foo", "bad"), ErrCodeConstructionFailed},
		{"TypeMismatch", TypeMismatch("k", "int", "string"), ErrCodeTypeMismatch},
		{"InvalidInput", InvalidInput("f", "r"), ErrCodeInvalidInput},
		{"Validation", Validation("bad config"), ErrCodeInvalidInput},
		{"Internal", Internal(nil), ErrCodeInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Message == "" {
				t.Error("expected non-empty message")
			}
		})
	}
}

func TestAppError_IsAppError_Success(t *testing.T) {
	appErr := BindingNotFound("x")
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to return true for AppError")
	}

	wrapped := fmt.Errorf("wrapped: %w", appErr)
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}

	if IsAppError(fmt.Errorf("plain error")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", CyclicDependency([]string{"A", "A"}))
	if !HasCode(err, ErrCodeCyclicDependency) {
		t.Error("expected HasCode to match wrapped code")
	}
	if HasCode(err, ErrCodeBindingNotFound) {
		t.Error("expected HasCode to reject a different code")
	}
	if HasCode(nil, ErrCodeInternal) {
		t.Error("expected HasCode(nil) to be false")
	}
}
