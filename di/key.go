package di

import "github.com/kbukum/pandora/errors"

// Key identifies a binding. It is either a plain name (see Name) or a
// constructor reference (see TypeKey). Two keys are equivalent when they
// normalize to the same name; a reference normalizes to its canonical name.
//
// The zero Key is Annotated.
type Key struct {
	name string
	ref  *Reference
}

// Annotated is the null marker in a dependency list. At its position the
// binding uses the annotated key, or the zero value when none is annotated.
var Annotated = Key{}

// Name returns a string key. Name("") is Annotated.
func Name(name string) Key {
	return Key{name: name}
}

// TypeKey returns a key identifying ref.
func TypeKey(ref *Reference) Key {
	return Key{ref: ref}
}

// IsZero reports whether k is the Annotated marker.
func (k Key) IsZero() bool {
	return k.name == "" && k.ref == nil
}

// Reference returns the constructor reference of a type key, or nil.
func (k Key) Reference() *Reference {
	return k.ref
}

func (k Key) String() string {
	switch {
	case k.ref != nil:
		return k.ref.String()
	case k.name != "":
		return k.name
	default:
		return "<annotated>"
	}
}

// normalize maps k to the registry key.
func (k Key) normalize() (string, error) {
	if k.ref != nil {
		if k.ref.name == "" {
			return "", errors.UnnamedReference(k.ref.out.String())
		}
		return k.ref.name, nil
	}
	if k.name == "" {
		return "", errors.InvalidKey("key is empty")
	}
	return k.name, nil
}
