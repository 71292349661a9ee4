// Package vial implements a small reflection based dependency injection
// container.
//
// A Container maps types to factories and resolves instances on demand,
// either from an explicit registration or by autowiring: inspecting the
// exported fields of a struct and resolving each field's type recursively
// through the same container.
//
// # Registering
//
//	c := vial.New()
//
//	// Transient — a new value on every Make
//	vial.Register(c, func(c *vial.Container) (*Clock, error) {
//	    return &Clock{}, nil
//	})
//
//	// Singleton — built once, then cached
//	vial.Singleton(c, func(c *vial.Container) (Connection, error) {
//	    return OpenConnection(os.Getenv("DSN"))
//	})
//
//	// Pre-built value
//	vial.Instance(c, config)
//
// # Resolving
//
//	conn, err := vial.Resolve[Connection](c)
//
// Types that were never registered are autowired, as long as they are structs
// (or pointers to structs) whose exported fields are themselves resolvable:
//
//	type QueryBuilder struct {
//	    Conn Connection
//	    Log  Logger
//	}
//
//	qb, err := vial.Resolve[QueryBuilder](c) // Conn and Log injected
//
// Individual fields can be supplied by name instead of being resolved, for
// values like config scalars that no type lookup could produce:
//
//	qb, err := vial.Resolve[QueryBuilder](c, vial.Parameters{"Log": myLogger})
//
// All registration is panic on misuse, all resolution is error returning.
// Failed resolutions return a *ResolutionError wrapping one of the sentinel
// errors ErrUnknownType, ErrUnresolvableDependency, ErrCyclicDependency or
// ErrConstructionFailure.
//
// The generic API is exposed as package level functions instead of methods
// because Go does not allow methods with their own type parameters. The
// method based API on Container is equivalent and works with reflect.Type
// keys directly.
package vial
