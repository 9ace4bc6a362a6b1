package di

// FactoryFunc produces a value, resolving any dependencies through r.
type FactoryFunc func(r Resolver) (any, error)

// FactoryBinding calls a FactoryFunc on every Get, or once when shared.
type FactoryBinding struct {
	sharing
	cache instanceCache
	fn    FactoryFunc
}

// NewFactoryBinding creates a transient binding around fn.
func NewFactoryBinding(fn FactoryFunc) *FactoryBinding {
	return &FactoryBinding{fn: fn}
}

// Share marks the binding shared.
func (b *FactoryBinding) Share() *FactoryBinding {
	b.markShared()
	return b
}

// Get returns the cached value of a shared binding, or calls the factory.
// Errors from the factory are returned unchanged.
func (b *FactoryBinding) Get(r Resolver) (any, error) {
	if b.Shared() {
		if v, ok := b.cache.load(); ok {
			return v, nil
		}
	}
	v, err := b.fn(r)
	if err != nil {
		return nil, err
	}
	if b.Shared() {
		return b.cache.store(v), nil
	}
	return v, nil
}

// InstanceBinding always returns the same pre-built value.
type InstanceBinding struct {
	value any
}

// NewInstanceBinding creates a binding for value.
func NewInstanceBinding(value any) *InstanceBinding {
	return &InstanceBinding{value: value}
}

// Get returns the bound value.
func (b *InstanceBinding) Get(Resolver) (any, error) { return b.value, nil }

// Shared is always true.
func (b *InstanceBinding) Shared() bool { return true }

// Value returns the bound value.
func (b *InstanceBinding) Value() any { return b.value }
