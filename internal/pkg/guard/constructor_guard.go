// Package guard marks values as built by their constructor so zero values can
// be told apart from validated ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities that must only be
// created through their New* function. The zero value fails validation.
//
// Example:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID string
//	    status  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ChangeOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
