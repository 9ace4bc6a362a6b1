package di

import (
	"sync"
	"sync/atomic"
)

// Resolver answers dependency lookups while a binding builds its value.
// The Resolver passed to Binding.Get belongs to one resolution; it must not
// be retained after Get returns.
type Resolver interface {
	Get(key Key) (any, error)
}

// Binding produces the value registered under a key.
//
// Share lives on the concrete types (ClassBinding.Share, FactoryBinding.Share).
// A custom Binding decides its own sharing and reports it through Shared.
type Binding interface {
	// Get produces or retrieves the value, resolving dependencies through r.
	Get(r Resolver) (any, error)
	// Shared reports whether the value is cached after the first Get.
	Shared() bool
}

// Binding kinds reported by Registrations.
const (
	KindClass    = "class"
	KindFactory  = "factory"
	KindInstance = "instance"
	KindCustom   = "custom"
	kindImplicit = "implicit"
)

func kindOf(b Binding) string {
	switch b.(type) {
	case *ClassBinding:
		return KindClass
	case *FactoryBinding:
		return KindFactory
	case *InstanceBinding:
		return KindInstance
	default:
		return KindCustom
	}
}

// sharing holds the shared flag. It may flip at any time; only later Get
// calls observe it.
type sharing struct {
	shared atomic.Bool
}

// Shared reports whether the binding has been marked shared.
func (s *sharing) Shared() bool { return s.shared.Load() }

func (s *sharing) markShared() { s.shared.Store(true) }

// instanceCache holds the single value of a shared binding.
type instanceCache struct {
	mu    sync.Mutex
	value any
	ok    bool
}

func (c *instanceCache) load() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.ok
}

// store caches v unless a value is already cached, and returns the cached value.
func (c *instanceCache) store(v any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ok {
		c.value = v
		c.ok = true
	}
	return c.value
}
