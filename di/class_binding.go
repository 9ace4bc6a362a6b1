package di

import (
	"fmt"
	"sync"

	"github.com/kbukum/pandora/errors"
)

// ClassBinding constructs instances of a Reference. Its constructor
// arguments come from the explicit dependencies set with Using, merged over
// the keys annotated for the reference.
type ClassBinding struct {
	sharing
	cache instanceCache

	ref         *Reference
	annotations *Annotations

	mu           sync.Mutex
	dependencies []Key
	merged       bool
}

// NewClassBinding creates a transient binding for ref that reads parameter
// annotations from annotations, which may be nil.
func NewClassBinding(ref *Reference, annotations *Annotations) *ClassBinding {
	return &ClassBinding{ref: ref, annotations: annotations}
}

// Using replaces the explicit dependency list. Both Using(a, b) and
// Using(deps...) are accepted. An Annotated entry defers to the annotated
// key at that position.
func (b *ClassBinding) Using(deps ...Key) *ClassBinding {
	b.mu.Lock()
	b.dependencies = append([]Key(nil), deps...)
	b.mu.Unlock()
	return b
}

// Share marks the binding shared: the next Get caches its instance and
// every later Get returns it.
func (b *ClassBinding) Share() *ClassBinding {
	b.markShared()
	return b
}

// Reference returns the constructor reference.
func (b *ClassBinding) Reference() *Reference { return b.ref }

// Dependencies returns the current dependency list. After the first Get it
// includes the merged annotations.
func (b *ClassBinding) Dependencies() []Key {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Key(nil), b.dependencies...)
}

// Get returns the cached instance of a shared binding, or builds a new one.
func (b *ClassBinding) Get(r Resolver) (any, error) {
	deps := b.mergedDependencies()

	if b.Shared() {
		if v, ok := b.cache.load(); ok {
			return v, nil
		}
	}

	instance, err := b.build(r, deps)
	if err != nil {
		return nil, err
	}
	if b.Shared() {
		return b.cache.store(instance), nil
	}
	return instance, nil
}

// mergedDependencies merges annotations into the explicit list on the first
// call and returns a copy of the result. The merge never runs again; a later
// Using replaces the list as given.
func (b *ClassBinding) mergedDependencies() []Key {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.merged {
		var annotated []Key
		if b.annotations != nil {
			annotated = b.annotations.ParameterKeys(b.ref)
		}
		b.dependencies = mergeDependencies(b.dependencies, annotated)
		b.merged = true
	}
	return append([]Key(nil), b.dependencies...)
}

func (b *ClassBinding) build(r Resolver, deps []Key) (any, error) {
	if len(deps) > b.ref.NumParams() {
		return nil, errors.ConstructionFailed(b.ref.String(),
			fmt.Sprintf("%d dependencies given, constructor accepts %d", len(deps), b.ref.NumParams()))
	}

	args := make([]any, len(deps))
	for i, dep := range deps {
		if dep.IsZero() {
			continue
		}
		v, err := r.Get(dep)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return b.ref.construct(args)
}

// mergeDependencies lays explicit over annotated position by position. A
// non-zero explicit key wins; otherwise the annotated key is used; otherwise
// the position stays Annotated. The result is as long as the longer input.
func mergeDependencies(explicit, annotated []Key) []Key {
	merged := make([]Key, max(len(explicit), len(annotated)))
	for i := range merged {
		if i < len(annotated) && !annotated[i].IsZero() {
			merged[i] = annotated[i]
		}
		if i < len(explicit) && !explicit[i].IsZero() {
			merged[i] = explicit[i]
		}
	}
	return merged
}
