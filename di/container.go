package di

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	otelcodes "go.opentelemetry.io/otel/codes"

	"github.com/kbukum/pandora/errors"
	"github.com/kbukum/pandora/logger"
)

// Hook observes every value resolved under a key.
type Hook func(instance any)

// RegistrationInfo describes a registered binding for introspection.
type RegistrationInfo struct {
	Key    string
	Kind   string
	Shared bool
	Hooks  int
}

// Container maps keys to bindings and resolves them on demand.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]Binding
	hooks    map[string][]Hook

	annotations *Annotations
	config      Config
	log         *logger.Logger
	inst        *instruments
}

// New creates an empty container.
func New(opts ...Option) *Container {
	o := resolveOptions(opts)
	return &Container{
		bindings:    make(map[string]Binding),
		hooks:       make(map[string][]Hook),
		annotations: o.annotations,
		config:      o.config,
		log:         o.logger,
		inst:        newInstruments(o.config.TracerName, o.tracerProvider, o.meterProvider, o.logger),
	}
}

// Bind registers a class binding for ref under key, or under the canonical
// name of ref when key is omitted or empty. At most one key is accepted. Any
// prior binding at that key is replaced.
func (c *Container) Bind(ref *Reference, key ...string) (*ClassBinding, error) {
	if ref == nil {
		return nil, errors.InvalidConstructor("reference is nil")
	}
	name, err := optionalKey(key)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if name, err = ref.Key().normalize(); err != nil {
			return nil, err
		}
	}
	b := NewClassBinding(ref, c.annotations)
	c.register(name, b)
	return b, nil
}

// MustBind is like Bind but panics on error.
func (c *Container) MustBind(ref *Reference, key ...string) *ClassBinding {
	b, err := c.Bind(ref, key...)
	if err != nil {
		panic(err)
	}
	return b
}

// ApplyBinding registers b under key, replacing any prior binding.
func (c *Container) ApplyBinding(b Binding, key string) error {
	if b == nil {
		return errors.InvalidInput("binding", "binding is nil")
	}
	if key == "" {
		return errors.InvalidKey("key is empty")
	}
	c.register(key, b)
	return nil
}

// Factory registers fn under key. Each Get calls fn until the returned
// binding is shared.
func (c *Container) Factory(fn FactoryFunc, key string) (*FactoryBinding, error) {
	if fn == nil {
		return nil, errors.InvalidConstructor("factory is nil")
	}
	if key == "" {
		return nil, errors.InvalidKey("factory key is empty")
	}
	b := NewFactoryBinding(fn)
	c.register(key, b)
	return b, nil
}

// Singleton registers a pre-built instance under key, or under the name of
// its type with pointers stripped. At most one key is accepted.
func (c *Container) Singleton(instance any, key ...string) error {
	name, err := optionalKey(key)
	if err != nil {
		return err
	}
	if name == "" {
		if instance == nil {
			return errors.InvalidKey("a nil instance requires an explicit key")
		}
		t := reflect.TypeOf(instance)
		if name = canonicalName(t); name == "" {
			return errors.UnnamedReference(t.String())
		}
	}
	c.register(name, NewInstanceBinding(instance))
	return nil
}

func (c *Container) register(name string, b Binding) {
	c.mu.Lock()
	_, replaced := c.bindings[name]
	c.bindings[name] = b
	c.mu.Unlock()

	c.log.Debug("binding registered", logger.Fields(
		logger.FieldKey, name,
		logger.FieldKind, kindOf(b),
		"replaced", replaced,
	))
}

// Get resolves key.
func (c *Container) Get(key Key) (any, error) {
	return c.GetContext(context.Background(), key)
}

// GetContext resolves key. ctx parents the resolution spans; it does not
// cancel the resolution.
func (c *Container) GetContext(ctx context.Context, key Key) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r := &resolution{container: c, ctx: ctx, id: uuid.NewString()}
	return r.Get(key)
}

// resolve produces the value for the normalized key name on top of r's path.
func (c *Container) resolve(r *resolution, key Key, name string) (any, error) {
	start := time.Now()
	ctx, span := c.inst.start(r.ctx, name, r.id, r.depth())
	defer span.End()

	parent := r.ctx
	r.ctx = ctx
	defer func() { r.ctx = parent }()

	c.mu.RLock()
	b, ok := c.bindings[name]
	c.mu.RUnlock()

	kind := kindImplicit
	ref := key.ref
	var instance any
	var err error
	switch {
	case ok:
		kind = kindOf(b)
		ref = nil
		if cb, isClass := b.(*ClassBinding); isClass {
			ref = cb.Reference()
		}
		instance, err = b.Get(r)
	case key.ref != nil && !c.config.Strict:
		instance, err = key.ref.construct(nil)
	default:
		err = errors.BindingNotFound(name)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		c.inst.record(ctx, name, kind, outcomeError, time.Since(start))
		return nil, err
	}
	elapsed := time.Since(start)
	c.inst.record(ctx, name, kind, outcomeOK, elapsed)

	c.mu.RLock()
	hooks := slices.Clone(c.hooks[name])
	c.mu.RUnlock()
	for _, hook := range hooks {
		hook(instance)
	}

	if c.config.LogResolutions {
		fields := logger.Fields(
			logger.FieldKey, name,
			logger.FieldKind, kind,
			logger.FieldResolutionID, r.id,
			logger.FieldDepth, r.depth(),
			logger.FieldHooks, len(hooks),
		)
		if ref != nil {
			fields[logger.FieldReference] = ref.Type().String()
		}
		c.log.Debug("key resolved", fields, logger.DurationFields("resolve", elapsed))
	}
	return instance, nil
}

// When registers hook to run, in registration order, on every later Get of
// key. Hooks run for shared values too.
func (c *Container) When(key Key, hook Hook) error {
	if hook == nil {
		return errors.InvalidInput("hook", "hook is nil")
	}
	name, err := key.normalize()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.hooks[name] = append(c.hooks[name], hook)
	count := len(c.hooks[name])
	c.mu.Unlock()

	c.log.Debug("hook registered", logger.Fields(logger.FieldKey, name, logger.FieldHooks, count))
	return nil
}

// Has reports whether a binding is registered at key.
func (c *Container) Has(key Key) bool {
	name, err := key.normalize()
	if err != nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[name]
	return ok
}

// Registrations returns the registered bindings sorted by key.
func (c *Container) Registrations() []RegistrationInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]RegistrationInfo, 0, len(c.bindings))
	for name, b := range c.bindings {
		infos = append(infos, RegistrationInfo{
			Key:    name,
			Kind:   kindOf(b),
			Shared: b.Shared(),
			Hooks:  len(c.hooks[name]),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// Annotations returns the annotation registry read by class bindings.
func (c *Container) Annotations() *Annotations { return c.annotations }

// Config returns the container configuration.
func (c *Container) Config() Config { return c.config }

// optionalKey returns the single optional key, or "" when it is omitted.
func optionalKey(keys []string) (string, error) {
	switch len(keys) {
	case 0:
		return "", nil
	case 1:
		return keys[0], nil
	default:
		return "", errors.InvalidKey(fmt.Sprintf("expected at most one key, got %d", len(keys))).
			WithDetail("keys", keys)
	}
}
