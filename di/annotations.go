package di

import (
	"fmt"
	"sync"

	"github.com/kbukum/pandora/errors"
)

// Annotations associates constructor parameters with binding keys out of
// band. A ClassBinding reads the annotated keys the first time it is resolved
// and merges them under its explicit dependencies.
//
// Annotations are keyed by Reference identity.
type Annotations struct {
	mu   sync.RWMutex
	keys map[*Reference][]Key
}

// NewAnnotations creates an empty annotation registry.
func NewAnnotations() *Annotations {
	return &Annotations{keys: make(map[*Reference][]Key)}
}

// Record annotates parameter index of ref with key. Recording Annotated
// clears the position.
func (a *Annotations) Record(ref *Reference, index int, key Key) error {
	if ref == nil {
		return errors.InvalidInput("reference", "reference is nil")
	}
	n := ref.NumParams()
	if index < 0 || index >= n {
		return errors.InvalidInput("index",
			fmt.Sprintf("parameter index %d is out of range for %s with %d parameters", index, ref, n))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	keys, ok := a.keys[ref]
	if !ok {
		keys = make([]Key, n)
		a.keys[ref] = keys
	}
	keys[index] = key
	return nil
}

// Inject annotates the parameters of ref positionally. Annotated entries
// leave their position untouched.
//
//	annotations.Inject(fooInjected, fooRef.Key(), di.Name("Bar"))
func (a *Annotations) Inject(ref *Reference, keys ...Key) error {
	if ref == nil {
		return errors.InvalidInput("reference", "reference is nil")
	}
	if len(keys) > ref.NumParams() {
		return errors.InvalidInput("keys",
			fmt.Sprintf("%d keys given for %s with %d parameters", len(keys), ref, ref.NumParams()))
	}
	for i, key := range keys {
		if key.IsZero() {
			continue
		}
		if err := a.Record(ref, i, key); err != nil {
			return err
		}
	}
	return nil
}

// ParameterKeys returns the annotated keys of ref, one per parameter, with
// Annotated at positions never recorded. It returns nil when ref has no
// annotations.
func (a *Annotations) ParameterKeys(ref *Reference) []Key {
	a.mu.RLock()
	defer a.mu.RUnlock()
	keys, ok := a.keys[ref]
	if !ok {
		return nil
	}
	return append([]Key(nil), keys...)
}
