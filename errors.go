package vial

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/vialkit/vial/internal"
)

// Resolution failures are classified by one of these sentinel errors. Every
// error returned by Make is a *ResolutionError wrapping the matching
// sentinel, so callers can branch with errors.Is without parsing messages.
var (
	// ErrUnknownType means the requested type has no registration and is not
	// something the container knows how to build on its own.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnresolvableDependency means the requested type cannot be
	// instantiated, or one of its dependencies could not be satisfied and no
	// explicit parameter was supplied for it.
	ErrUnresolvableDependency = errors.New("unresolvable dependency")

	// ErrCyclicDependency means a type was requested again while its own
	// resolution was still in progress.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrConstructionFailure means a factory ran and failed, or produced a
	// value that cannot be used for the requested type.
	ErrConstructionFailure = errors.New("construction failure")
)

// ResolutionError is the error type returned by failed resolutions. It
// records which type failed, the chain of resolutions that led to it, and
// the failure classified as one of the sentinel errors above.
type ResolutionError struct {
	// Key is the type whose resolution failed.
	Key reflect.Type
	// Path is the resolution chain from the root request down to Key,
	// inclusive. For cyclic failures the last entry is the revisited type.
	Path []reflect.Type
	// Kind is the sentinel classifying the failure.
	Kind error
	// Err is the underlying cause, when there is one.
	Err error
}

func (e *ResolutionError) Error() string {
	var message string
	switch e.Kind {
	case ErrCyclicDependency:
		// The path already tells the whole story here, and it reads better
		// without a nested cause appended.
		return fmt.Sprintf("circular dependency detected: %s", e.pathString())
	case ErrUnknownType:
		message = fmt.Sprintf("no registration found for type %v", e.Key)
	case ErrUnresolvableDependency:
		message = fmt.Sprintf("cannot resolve type %v", e.Key)
	default:
		message = fmt.Sprintf("failed to construct type %v", e.Key)
	}
	if e.Err != nil {
		message = fmt.Sprintf("%s: %v", message, e.Err)
	}
	return message
}

// Unwrap exposes both the sentinel kind and the underlying cause, so
// errors.Is(err, ErrCyclicDependency) and errors.Is(err, io.EOF) style checks
// both work on the same value.
func (e *ResolutionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func (e *ResolutionError) pathString() string {
	typesString := internal.Map(
		e.Path,
		func(t reflect.Type) string { return fmt.Sprintf("%v", t) },
	)
	return strings.Join(typesString, " -> ")
}
