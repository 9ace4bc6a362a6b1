package di

import (
	"fmt"
	"reflect"

	"github.com/kbukum/pandora/errors"
)

// Resolve resolves key and asserts the value to T. A nil value resolves to
// the zero T.
//
// Example:
//
//	repo, err := di.Resolve[Repository](c, di.Name("repository"))
//	if err != nil {
//	    return err
//	}
func Resolve[T any](c *Container, key Key) (T, error) {
	var zero T
	instance, err := c.Get(key)
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}
	result, ok := instance.(T)
	if !ok {
		return zero, errors.TypeMismatch(key.String(), reflect.TypeFor[T]().String(), fmt.Sprintf("%T", instance))
	}
	return result, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](c *Container, key Key) T {
	result, err := Resolve[T](c, key)
	if err != nil {
		panic(fmt.Sprintf("di: failed to resolve %s: %v", key, err))
	}
	return result
}

// TryResolve resolves an optional dependency. It reports false when key
// cannot be resolved or is not a T.
//
//	if m, ok := di.TryResolve[Metrics](c, di.Name("metrics")); ok {
//	    m.Record(...)
//	}
func TryResolve[T any](c *Container, key Key) (T, bool) {
	result, err := Resolve[T](c, key)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

// WhenResolved registers a hook that receives values of key asserted to T.
// Values of another type are skipped.
func WhenResolved[T any](c *Container, key Key, fn func(T)) error {
	if fn == nil {
		return errors.InvalidInput("hook", "hook is nil")
	}
	return c.When(key, func(instance any) {
		if v, ok := instance.(T); ok {
			fn(v)
		}
	})
}
