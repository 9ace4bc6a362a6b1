package di

import "github.com/kbukum/pandora/logger"

// Scenario types shared by the container tests.

type Fooer interface {
	Check() bool
}

type Barer interface {
	Label() string
}

type Foo struct {
	Param int
}

func NewFoo() *Foo { return &Foo{} }

func (f *Foo) Check() bool { return f != nil }

type FooExtension struct {
	*Foo
}

func NewFooExtension() *FooExtension { return &FooExtension{Foo: &Foo{Param: 1}} }

type Bar struct {
	Name string
}

func NewBar() *Bar { return &Bar{Name: "bar"} }

func (b *Bar) Label() string { return b.Name }

type BarExtension struct {
	Name string
}

func NewBarExtension() *BarExtension { return &BarExtension{Name: "bar-extension"} }

func (b *BarExtension) Label() string { return b.Name }

type FooParent struct {
	Child Fooer
}

func NewFooParent(child Fooer) *FooParent { return &FooParent{Child: child} }

type FooGrandparent struct {
	Parent *FooParent
}

func NewFooGrandparent(parent *FooParent) *FooGrandparent {
	return &FooGrandparent{Parent: parent}
}

type FooDouble struct {
	First  Fooer
	Second Fooer
}

func NewFooDouble(first, second Fooer) *FooDouble {
	return &FooDouble{First: first, Second: second}
}

type FooInjected struct {
	Foo Fooer
	Bar Barer
}

func NewFooInjected(foo Fooer, bar Barer) *FooInjected {
	return &FooInjected{Foo: foo, Bar: bar}
}

type CycleA struct{ B *CycleB }

type CycleB struct{ A *CycleA }

func NewCycleA(b *CycleB) *CycleA { return &CycleA{B: b} }

func NewCycleB(a *CycleA) *CycleB { return &CycleB{A: a} }

// refs holds one Reference per scenario constructor. Annotations are keyed by
// Reference identity, so each test builds its own set.
type refs struct {
	foo         *Reference
	fooExt      *Reference
	bar         *Reference
	barExt      *Reference
	parent      *Reference
	grandparent *Reference
	double      *Reference
	injected    *Reference
	cycleA      *Reference
	cycleB      *Reference
}

func newRefs() refs {
	return refs{
		foo:         MustReference(NewFoo),
		fooExt:      MustReference(NewFooExtension),
		bar:         MustReference(NewBar),
		barExt:      MustReference(NewBarExtension),
		parent:      MustReference(NewFooParent),
		grandparent: MustReference(NewFooGrandparent),
		double:      MustReference(NewFooDouble),
		injected:    MustReference(NewFooInjected),
		cycleA:      MustReference(NewCycleA),
		cycleB:      MustReference(NewCycleB),
	}
}

func newTestContainer(opts ...Option) *Container {
	return New(append([]Option{WithLogger(logger.Nop())}, opts...)...)
}
