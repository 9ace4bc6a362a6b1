package di

import (
	"fmt"
	"reflect"

	"github.com/kbukum/pandora/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Reference is a constructor the container can call. The constructor has the
// shape func(P0, ..., Pn) T or func(P0, ..., Pn) (T, error) and receives its
// dependencies positionally.
//
// A Reference is immutable and safe for concurrent use.
type Reference struct {
	name     string
	fn       reflect.Value
	out      reflect.Type
	fallible bool
}

// ReferenceOption configures a Reference.
type ReferenceOption func(*Reference)

// WithName overrides the canonical name derived from the constructed type.
func WithName(name string) ReferenceOption {
	return func(r *Reference) {
		r.name = name
	}
}

// NewReference wraps constructor as a Reference. The canonical name is the
// Go name of the constructed type with pointers stripped, so a constructor
// returning *Foo is named "Foo". Unnamed types get no canonical name.
//
// The canonical name does not include the package path: types named Foo in
// two packages share the key "Foo". Use WithName or an explicit binding key
// to keep them apart.
func NewReference(constructor any, opts ...ReferenceOption) (*Reference, error) {
	if constructor == nil {
		return nil, errors.InvalidConstructor("constructor is nil")
	}
	fn := reflect.ValueOf(constructor)
	if fn.Kind() != reflect.Func {
		return nil, errors.InvalidConstructor(fmt.Sprintf("%T is not a function", constructor))
	}
	if fn.IsNil() {
		return nil, errors.InvalidConstructor("constructor is a nil function")
	}

	ft := fn.Type()
	if ft.IsVariadic() {
		return nil, errors.InvalidConstructor(fmt.Sprintf("%s is variadic", ft))
	}
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return nil, errors.InvalidConstructor(fmt.Sprintf("%s must return (T) or (T, error)", ft))
	}

	ref := &Reference{
		name:     canonicalName(ft.Out(0)),
		fn:       fn,
		out:      ft.Out(0),
		fallible: ft.NumOut() == 2,
	}
	for _, opt := range opts {
		opt(ref)
	}
	return ref, nil
}

// MustReference is like NewReference but panics on error.
func MustReference(constructor any, opts ...ReferenceOption) *Reference {
	ref, err := NewReference(constructor, opts...)
	if err != nil {
		panic(fmt.Sprintf("di: %v", err))
	}
	return ref
}

// Of returns a Reference whose constructor takes no arguments and returns new(T).
func Of[T any](opts ...ReferenceOption) *Reference {
	return MustReference(func() *T { return new(T) }, opts...)
}

// Name returns the canonical name, or "" when the reference has none.
func (r *Reference) Name() string { return r.name }

// Type returns the type the constructor produces.
func (r *Reference) Type() reflect.Type { return r.out }

// NumParams returns the number of constructor parameters.
func (r *Reference) NumParams() int { return r.fn.Type().NumIn() }

// Key returns the type key for r.
func (r *Reference) Key() Key { return TypeKey(r) }

func (r *Reference) String() string {
	if r.name != "" {
		return r.name
	}
	return r.out.String()
}

// construct calls the constructor with args in position order. A nil or
// missing argument becomes the zero value of its parameter type. An error
// returned by the constructor is passed through unchanged.
func (r *Reference) construct(args []any) (any, error) {
	ft := r.fn.Type()
	if len(args) > ft.NumIn() {
		return nil, errors.ConstructionFailed(r.String(),
			fmt.Sprintf("%d arguments given, constructor accepts %d", len(args), ft.NumIn()))
	}

	in := make([]reflect.Value, ft.NumIn())
	for i := range in {
		pt := ft.In(i)
		if i >= len(args) || args[i] == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(args[i])
		if !v.Type().AssignableTo(pt) {
			return nil, errors.ConstructionFailed(r.String(),
				fmt.Sprintf("argument %d is %s, parameter expects %s", i, v.Type(), pt)).
				WithDetail("position", i)
		}
		in[i] = v
	}

	out := r.fn.Call(in)
	if r.fallible && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// canonicalName returns the declared name of t with pointers stripped.
func canonicalName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
