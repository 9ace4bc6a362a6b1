package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lookup errors
const (
	// ErrCodeBindingNotFound indicates a key has no binding and cannot be built implicitly.
	ErrCodeBindingNotFound ErrorCode = "BINDING_NOT_FOUND"
	// ErrCodeCyclicDependency indicates a key was re-entered while it was being resolved.
	ErrCodeCyclicDependency ErrorCode = "CYCLIC_DEPENDENCY"
)

// Key and registration errors
const (
	// ErrCodeInvalidKey indicates a zero or empty key.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"
	// ErrCodeUnnamedReference indicates a reference without a canonical name was used without an explicit key.
	ErrCodeUnnamedReference ErrorCode = "UNNAMED_REFERENCE"
	// ErrCodeInvalidConstructor indicates a value that cannot be used as a constructor.
	ErrCodeInvalidConstructor ErrorCode = "INVALID_CONSTRUCTOR"
	// ErrCodeInvalidInput indicates invalid input, such as a bad annotation index or config value.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Construction errors
const (
	// ErrCodeConstructionFailed indicates the supplied arguments do not fit the constructor.
	ErrCodeConstructionFailed ErrorCode = "CONSTRUCTION_FAILED"
	// ErrCodeTypeMismatch indicates a resolved value is not of the requested type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string { return string(c) }
