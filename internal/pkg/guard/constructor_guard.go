// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates, commands and queries so that zero values created with a struct
// literal can be told apart from values produced by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
//
// Example:
//
//	type GetJobByIDQuery struct {
//	    jobID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (q GetJobByIDQuery) Validate() error {
//	    return q.guard.Validate(ErrGetJobByIDQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// for a zero-value guard and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
