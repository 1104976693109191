// Package guard provides ConstructorGuard, a marker that lets commands, queries
// and domain objects detect whether they were built through their constructor
// rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is invalid. Only the
// type's constructor sets it, so Validate on a zero value fails.
//
// Example usage:
//
//	var ErrGetShipmentQueryIsNotConstructed = errors.New("GetShipmentQuery must be created via NewGetShipmentQuery")
//
//	type GetShipmentQuery struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetShipmentQuery(id int64) GetShipmentQuery {
//	    return GetShipmentQuery{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q GetShipmentQuery) Validate() error {
//	    return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
