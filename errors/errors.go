package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the unified error type returned by the container and its support packages.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// BindingNotFound creates an error for a key with no binding.
func BindingNotFound(key string) *AppError {
	return &AppError{
		Code:    ErrCodeBindingNotFound,
		Message: fmt.Sprintf("A binding named %s was requested from the app container, but was not found.", key),
		Details: map[string]any{"key": key},
	}
}

// CyclicDependency creates an error for a key that depends on itself through path.
// The last element of path is the re-entered key.
func CyclicDependency(path []string) *AppError {
	p := append([]string(nil), path...)
	return &AppError{
		Code:    ErrCodeCyclicDependency,
		Message: fmt.Sprintf("Cyclic dependency detected: %s", strings.Join(p, " -> ")),
		Details: map[string]any{"path": p},
	}
}

// InvalidKey creates an error for a key that cannot be normalized.
func InvalidKey(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidKey,
		Message: fmt.Sprintf("Invalid binding key: %s", reason),
	}
}

// UnnamedReference creates an error for a reference that has no canonical name.
func UnnamedReference(typeName string) *AppError {
	return &AppError{
		Code:    ErrCodeUnnamedReference,
		Message: fmt.Sprintf("Reference producing %s has no canonical name; an explicit key is required.", typeName),
		Details: map[string]any{"type": typeName},
	}
}

// InvalidConstructor creates an error for a value that is not a usable constructor.
func InvalidConstructor(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConstructor,
		Message: fmt.Sprintf("Invalid constructor: %s", reason),
	}
}

// ConstructionFailed creates an error for arguments that do not fit a constructor.
func ConstructionFailed(reference, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeConstructionFailed,
		Message: fmt.Sprintf("Unable to construct %s: %s", reference, reason),
		Details: map[string]any{"reference": reference},
	}
}

// TypeMismatch creates an error for a resolved value of an unexpected type.
func TypeMismatch(key, expected, actual string) *AppError {
	return &AppError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("Component %s is %s, expected %s", key, actual, expected),
		Details: map[string]any{
			"key":      key,
			"expected": expected,
			"actual":   actual,
		},
	}
}

// InvalidInput creates an error for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates an error for struct validation failures.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// Internal creates an error for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred.",
		Cause:   cause,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
