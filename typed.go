package vial

import (
	"fmt"
	"reflect"
)

// The functions in this file are the generic layer over the Container
// methods. They exist as package level functions instead of methods because
// Go does not allow methods to declare their own type parameters.
//
// https://go.googlesource.com/proposal/+/refs/heads/master/design/43651-type-parameters.md#No-parameterized-methods

// Key returns the container key for T. Interfaces and implementations are
// distinct keys, and so are T and *T.
func Key[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register registers a transient factory for T. Each resolution of T invokes
// factory again.
//
// If Register is called multiple times for the same T, the last registration
// is the one considered for resolution.
func Register[T any](c *Container, factory func(c *Container) (T, error)) *Container {
	return c.Register(Key[T](), adapt(factory))
}

// Singleton registers a singleton factory for T. The first resolution builds
// the value, every later one returns the same instance.
//
// If Singleton is called multiple times for the same T, the last registration
// wins and any instance cached by an earlier one is dropped.
func Singleton[T any](c *Container, factory func(c *Container) (T, error)) *Container {
	return c.Singleton(Key[T](), adapt(factory))
}

// Instance registers an already built value for T, typically used for
// configuration values and for injecting test doubles behind interface keys.
func Instance[T any](c *Container, value T) *Container {
	return c.Instance(Key[T](), value)
}

func adapt[T any](factory func(c *Container) (T, error)) Factory {
	if factory == nil {
		// Handing bind a nil keeps the panic message in one place.
		return nil
	}
	return func(c *Container) (any, error) {
		value, err := factory(c)
		if err != nil {
			return nil, err
		}
		return value, nil
	}
}

// Resolve resolves an instance for T, the generic counterpart of Make.
//
// A registered T resolves through its factory, an unregistered struct type
// autowires, and everything else fails with a *ResolutionError.
func Resolve[T any](c *Container, params ...Parameters) (T, error) {
	var zero T // small trick since x := T{} is not possible
	value, err := c.Make(Key[T](), params...)
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		// Reachable through an alias whose canonical type does not actually
		// satisfy T.
		return zero, &ResolutionError{
			Key:  Key[T](),
			Path: []reflect.Type{Key[T]()},
			Kind: ErrConstructionFailure,
			Err:  fmt.Errorf("resolved value of type %T cannot be used as %v", value, Key[T]()),
		}
	}
	return typed, nil
}

// MustResolve is Resolve for wiring code where a resolution failure is a
// programming error. It panics instead of returning the error.
func MustResolve[T any](c *Container, params ...Parameters) T {
	value, err := Resolve[T](c, params...)
	if err != nil {
		panic(err)
	}
	return value
}
