package vial

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Parameters supplies pre-resolved values for autowired fields by name,
// bypassing type resolution for them. This is how values that no type lookup
// could produce, like config scalars, get injected.
type Parameters map[string]any

// Make resolves an instance for key.
//
// When key has a registration, its factory runs (or, for singletons, the
// cached value is returned). Otherwise the container attempts to autowire
// key as a struct or pointer to struct, resolving each exported field
// recursively. Parameters only affect autowired construction; they are
// ignored for registered keys and never propagate to nested resolutions.
//
// When several Parameters maps are given, they are merged with later maps
// winning on name collisions.
//
// Errors are always a *ResolutionError wrapping one of ErrUnknownType,
// ErrUnresolvableDependency, ErrCyclicDependency or ErrConstructionFailure.
func (c *Container) Make(key reflect.Type, params ...Parameters) (any, error) {
	if key == nil {
		panic("cannot resolve a nil type")
	}
	return c.resolve(key, mergeParameters(params))
}

func (c *Container) resolve(key reflect.Type, params Parameters) (any, error) {
	key = c.canonical(key)

	// Checking the instance cache first, so memoized singletons keep
	// resolving even while a resolution of theirs is on the path.
	if instance, found := c.instances.Load(key); found {
		return instance, nil
	}

	if slices.Contains(c.path, key) {
		// resolve was already called for key further up the path. Lazy
		// construction could break such a cycle, but a graph that needs it
		// is considered ill-formed here, so this is an error.
		return nil, &ResolutionError{
			Key:  key,
			Path: appendPath(c.path, key),
			Kind: ErrCyclicDependency,
		}
	}

	bound, found := c.definitions.Load(key)
	if !found {
		return c.autowire(key, params)
	}

	if bound.shared {
		lock, _ := c.buildLocks.LoadOrStore(key, &sync.Mutex{})

		// Holding a lock per key keeps concurrent resolutions of the same
		// singleton down to one build without serializing other keys.
		lock.Lock()
		defer lock.Unlock()

		// Another goroutine may have built the value while we waited.
		if instance, found := c.instances.Load(key); found {
			return instance, nil
		}

		value, err := c.build(key, bound)
		if err != nil {
			// Not memoized, so a later Make can retry the factory.
			return nil, err
		}
		c.instances.Store(key, value)
		return value, nil
	}

	return c.build(key, bound)
}

// build runs the factory for key with a container view whose path includes
// key, so resolutions made by the factory itself stay cycle checked.
func (c *Container) build(key reflect.Type, bound *binding) (any, error) {
	value, err := bound.factory(c.scoped(appendPath(c.path, key)))
	if err != nil {
		if errors.Is(err, ErrCyclicDependency) {
			// The cycle error already carries the full path; wrapping it
			// again would only bury it.
			return nil, err
		}
		return nil, &ResolutionError{
			Key:  key,
			Path: appendPath(c.path, key),
			Kind: ErrConstructionFailure,
			Err:  err,
		}
	}
	if value != nil && !reflect.TypeOf(value).AssignableTo(key) {
		return nil, &ResolutionError{
			Key:  key,
			Path: appendPath(c.path, key),
			Kind: ErrConstructionFailure,
			Err:  fmt.Errorf("factory returned value of type %T, which is not assignable to %v", value, key),
		}
	}
	return value, nil
}

// scoped returns a view of the container carrying its own resolution path.
// The registration tables stay shared, only the path differs.
func (c *Container) scoped(path []reflect.Type) *Container {
	view := *c
	view.path = path
	return &view
}

// appendPath extends a resolution path into a fresh slice. Paths end up
// stored in errors, so sibling resolutions must never share a backing array.
func appendPath(path []reflect.Type, key reflect.Type) []reflect.Type {
	extended := make([]reflect.Type, len(path)+1)
	copy(extended, path)
	extended[len(path)] = key
	return extended
}

func mergeParameters(params []Parameters) Parameters {
	if len(params) == 0 {
		return nil
	}
	if len(params) == 1 {
		return params[0]
	}
	merged := make(Parameters)
	for _, p := range params {
		for name, value := range p {
			merged[name] = value
		}
	}
	return merged
}
