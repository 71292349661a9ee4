package vial

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/vialkit/vial/internal"
)

// Factory is a deferred constructor. It receives the container so it can
// resolve its own dependencies, and returns the built value or an error.
//
// The container handed to a factory tracks the resolution in progress, so
// calling Make on it from inside the factory keeps cycle detection working
// across registrations.
type Factory func(c *Container) (any, error)

// Container registers factories by type and resolves instances from them.
//
// Keys are reflect.Type values, which are comparable and unique per type, so
// an interface and each of its implementations address separate
// registrations. The zero value is not usable; call New.
type Container struct {
	// Explicit registrations. The last registration for a key wins.
	definitions *internal.SyncMap[reflect.Type, *binding]
	// Cache of built singleton values. Once a key is in here, its factory
	// never runs again.
	instances *internal.SyncMap[reflect.Type, any]
	// Alias keys resolving to their canonical key.
	aliases *internal.SyncMap[reflect.Type, reflect.Type]
	// One lock per singleton key, so concurrent resolutions of the same key
	// build at most one value while other keys proceed in parallel.
	buildLocks *internal.SyncMap[reflect.Type, *sync.Mutex]

	// The chain of types currently being resolved through this view of the
	// container, outermost request first. Factories and autowiring receive a
	// copy of the container with their own path, while the tables above stay
	// shared.
	path []reflect.Type
}

type binding struct {
	factory Factory
	// shared marks singleton registrations, whose value is stored in the
	// instances table after the first successful build.
	shared bool
}

// New creates an empty container.
//
// The container registers itself, so factories can declare a *Container
// dependency and Make(Key[*Container]()) returns the container it was called
// on.
func New() *Container {
	c := &Container{
		definitions: internal.NewSyncMap[reflect.Type, *binding](),
		instances:   internal.NewSyncMap[reflect.Type, any](),
		aliases:     internal.NewSyncMap[reflect.Type, reflect.Type](),
		buildLocks:  internal.NewSyncMap[reflect.Type, *sync.Mutex](),
	}
	c.Instance(reflect.TypeOf((*Container)(nil)), c)
	return c
}

// Register stores factory under key as a transient registration: every Make
// invokes the factory again. Any previous registration for key is replaced.
//
// Registration is not meant to race with resolution. It is safe in the sense
// that the tables never corrupt, but a resolution running concurrently with
// Register may observe either the old or the new factory.
func (c *Container) Register(key reflect.Type, factory Factory) *Container {
	return c.bind(key, factory, false)
}

// Singleton stores factory under key so that the first successful Make caches
// the value and every later Make returns that same instance. Any previous
// registration for key is replaced.
func (c *Container) Singleton(key reflect.Type, factory Factory) *Container {
	return c.bind(key, factory, true)
}

// Instance registers an already built value under key. It behaves like a
// resolved singleton: Make returns value as is, and Resolved(key) reports
// true immediately.
//
// Instance panics if value is not assignable to key.
func (c *Container) Instance(key reflect.Type, value any) *Container {
	if key == nil {
		panic("cannot register a nil type")
	}
	if value != nil && !reflect.TypeOf(value).AssignableTo(key) {
		panic(fmt.Sprintf("value of type %T is not assignable to %v", value, key))
	}
	c.bind(key, func(*Container) (any, error) { return value, nil }, true)
	c.instances.Store(c.canonical(key), value)
	return c
}

// Alias makes resolutions of alias behave as resolutions of target. The
// target is canonicalized at registration time, so alias chains stay flat and
// cannot loop.
//
// Alias panics when the two types are the same, or when following target ends
// back at alias.
func (c *Container) Alias(alias, target reflect.Type) *Container {
	if alias == nil || target == nil {
		panic("cannot alias a nil type")
	}
	target = c.canonical(target)
	if alias == target {
		panic(fmt.Sprintf("%v is aliased to itself", alias))
	}
	c.aliases.Store(alias, target)
	return c
}

func (c *Container) bind(key reflect.Type, factory Factory, shared bool) *Container {
	if key == nil {
		panic("cannot register a nil type")
	}
	if factory == nil {
		panic(fmt.Sprintf("cannot register a nil factory for type %v", key))
	}
	key = c.canonical(key)
	c.definitions.Store(key, &binding{factory: factory, shared: shared})

	// Re-registering a key hands instance production to the new factory, so
	// a value cached by the previous registration must not shadow it.
	c.instances.Delete(key)
	return c
}

// Bound reports whether key has a registration, directly or through an
// alias.
func (c *Container) Bound(key reflect.Type) bool {
	key = c.canonical(key)
	if _, found := c.definitions.Load(key); found {
		return true
	}
	_, found := c.instances.Load(key)
	return found
}

// Resolved reports whether a singleton value for key has already been built
// and cached.
func (c *Container) Resolved(key reflect.Type) bool {
	_, found := c.instances.Load(c.canonical(key))
	return found
}

// Forget drops the registration and any cached instance for key. Aliases
// pointing at key keep pointing at it and will autowire or fail like any
// unregistered type.
func (c *Container) Forget(key reflect.Type) {
	key = c.canonical(key)
	c.definitions.Delete(key)
	c.instances.Delete(key)
	c.buildLocks.Delete(key)
}

// Flush empties the container: all registrations, cached instances and
// aliases are dropped. The container registers itself again afterwards, as
// in New.
func (c *Container) Flush() {
	c.definitions.Clear()
	c.instances.Clear()
	c.aliases.Clear()
	c.buildLocks.Clear()
	c.Instance(reflect.TypeOf((*Container)(nil)), c)
}

// canonical follows aliases until it reaches a key that is not an alias.
// Chains are flattened at registration, so this usually takes a single
// lookup.
func (c *Container) canonical(key reflect.Type) reflect.Type {
	for {
		target, found := c.aliases.Load(key)
		if !found {
			return key
		}
		key = target
	}
}
