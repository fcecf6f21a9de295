// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation, so a struct that embeds a
// guard cannot bypass its constructor's invariant checks.
//
// Example:
//
//	type CreateMenuCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateMenuCommand(name string) (CreateMenuCommand, error) {
//	    if name == "" {
//	        return CreateMenuCommand{}, errors.New("name is required")
//	    }
//	    return CreateMenuCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateMenuCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
