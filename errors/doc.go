// Package errors provides the structured error type used across pandora.
//
// Every failure raised by the container carries a machine-readable ErrorCode,
// so callers can branch on the failure class without matching messages:
//
//	if errors.HasCode(err, errors.ErrCodeBindingNotFound) {
//	    ...
//	}
//
// Errors returned by user constructors and factories are never wrapped.
package errors
