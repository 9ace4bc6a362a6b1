// Package di provides the pandora inversion-of-control container.
//
// A Container maps keys to bindings. A key is either a name (di.Name) or a
// constructor reference (di.TypeKey / Reference.Key), and a binding decides
// how the value at that key is produced:
//
//   - ClassBinding calls a constructor, resolving its arguments from other keys.
//   - FactoryBinding calls a function with the resolver.
//   - InstanceBinding returns a pre-built value.
//
// Any binding except an instance is transient until Share is called.
//
// # Registration
//
//	fooRef := di.MustReference(NewFoo)
//	c := di.New()
//	c.MustBind(di.MustReference(NewFooParent)).Using(fooRef.Key())
//	c.MustBind(fooRef).Share()
//
// # Annotations
//
// Constructor parameters may carry keys recorded out of band. Explicit
// dependencies set with Using win position by position; an Annotated entry
// defers to the annotation.
//
//	c.Annotations().Inject(injectedRef, fooRef.Key(), di.Name("bar"))
//
// # Resolution
//
//	parent := di.MustResolve[*FooParent](c, di.Name("FooParent"))
//
// An unbound type key is constructed with zero arguments unless the
// container is strict. Each resolution tracks the keys being built and fails
// with CYCLIC_DEPENDENCY when one is re-entered.
package di
