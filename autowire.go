package vial

import (
	"errors"
	"fmt"
	"reflect"
)

// Field tags recognized during autowiring. `inject:"-"` leaves a field at
// its zero value, `inject:"optional"` tolerates the field's type being
// unresolvable.
const (
	injectTag      = "inject"
	injectSkip     = "-"
	injectOptional = "optional"
)

// autowire builds an unregistered key from scratch. The exported fields of a
// struct play the role of a constructor signature: each one names a
// dependency and declares its type, and the container fills them in
// declaration order.
func (c *Container) autowire(key reflect.Type, params Parameters) (any, error) {
	target := key
	pointer := target.Kind() == reflect.Pointer
	if pointer {
		target = target.Elem()
	}

	if target.Kind() == reflect.Interface {
		// There is nothing to introspect behind an interface, somebody has
		// to register an implementation for it.
		return nil, &ResolutionError{
			Key:  key,
			Path: appendPath(c.path, key),
			Kind: ErrUnresolvableDependency,
			Err:  errors.New("interface has no registration"),
		}
	}
	if target.Kind() != reflect.Struct {
		return nil, &ResolutionError{
			Key:  key,
			Path: appendPath(c.path, key),
			Kind: ErrUnknownType,
		}
	}

	scope := c.scoped(appendPath(c.path, key))

	pointerValue := reflect.New(target)
	structValue := pointerValue.Elem()

	for i := 0; i < target.NumField(); i++ {
		field := target.Field(i)
		if !field.IsExported() || field.Tag.Get(injectTag) == injectSkip {
			continue
		}

		if override, supplied := params[field.Name]; supplied {
			if err := setOverride(structValue.Field(i), field, override); err != nil {
				return nil, &ResolutionError{
					Key:  key,
					Path: appendPath(c.path, key),
					Kind: ErrUnresolvableDependency,
					Err:  err,
				}
			}
			continue
		}

		dependency, err := scope.resolve(field.Type, nil)
		if err != nil {
			if errors.Is(err, ErrCyclicDependency) {
				return nil, err
			}
			if field.Tag.Get(injectTag) == injectOptional &&
				(errors.Is(err, ErrUnknownType) || errors.Is(err, ErrUnresolvableDependency)) {
				continue
			}
			return nil, &ResolutionError{
				Key:  key,
				Path: appendPath(c.path, key),
				Kind: ErrUnresolvableDependency,
				Err:  fmt.Errorf("field %s: %w", field.Name, err),
			}
		}
		if dependency != nil {
			resolved := reflect.ValueOf(dependency)
			if !resolved.Type().AssignableTo(field.Type) {
				// Reachable through an alias whose canonical type does not
				// satisfy the field.
				return nil, &ResolutionError{
					Key:  key,
					Path: appendPath(c.path, key),
					Kind: ErrUnresolvableDependency,
					Err:  fmt.Errorf("field %s: resolved value of type %T is not assignable to %v", field.Name, dependency, field.Type),
				}
			}
			structValue.Field(i).Set(resolved)
		}
	}

	if pointer {
		return pointerValue.Interface(), nil
	}
	return structValue.Interface(), nil
}

func setOverride(target reflect.Value, field reflect.StructField, value any) error {
	if value == nil {
		// An explicit nil pins the field at its zero value.
		target.SetZero()
		return nil
	}
	supplied := reflect.ValueOf(value)
	if !supplied.Type().AssignableTo(field.Type) {
		return fmt.Errorf("parameter %s: value of type %T is not assignable to %v", field.Name, value, field.Type)
	}
	target.Set(supplied)
	return nil
}

// Invoke calls fn with every argument resolved from the container and
// returns the call's results. Variadic functions are not supported.
func (c *Container) Invoke(fn any) ([]any, error) {
	function := reflect.ValueOf(fn)
	if !function.IsValid() || function.Kind() != reflect.Func {
		panic("fn must be a function")
	}
	functionType := function.Type()
	if functionType.IsVariadic() {
		panic("fn must not be variadic")
	}

	arguments := make([]reflect.Value, functionType.NumIn())
	for i := 0; i < functionType.NumIn(); i++ {
		argumentType := functionType.In(i)
		value, err := c.resolve(argumentType, nil)
		if err != nil {
			if errors.Is(err, ErrCyclicDependency) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to resolve argument %d of %v: %w", i, functionType, err)
		}
		if value == nil {
			arguments[i] = reflect.Zero(argumentType)
			continue
		}
		resolved := reflect.ValueOf(value)
		if !resolved.Type().AssignableTo(argumentType) {
			return nil, fmt.Errorf("failed to resolve argument %d of %v: resolved value of type %T is not assignable to %v", i, functionType, value, argumentType)
		}
		arguments[i] = resolved
	}

	results := function.Call(arguments)
	out := make([]any, len(results))
	for i, result := range results {
		out[i] = result.Interface()
	}
	return out, nil
}
