package di

import (
	"context"
	"slices"

	"github.com/kbukum/pandora/errors"
)

// resolution is the Resolver for one top-level Get. It tracks the keys
// currently being built so a cycle fails instead of recursing forever.
type resolution struct {
	container *Container
	ctx       context.Context
	id        string
	path      []string
}

// Get resolves key as a dependency of the key on top of the path.
func (r *resolution) Get(key Key) (any, error) {
	name, err := key.normalize()
	if err != nil {
		return nil, err
	}
	if slices.Contains(r.path, name) {
		return nil, errors.CyclicDependency(append(slices.Clone(r.path), name))
	}

	r.path = append(r.path, name)
	defer func() { r.path = r.path[:len(r.path)-1] }()

	return r.container.resolve(r, key, name)
}

func (r *resolution) depth() int { return len(r.path) }
