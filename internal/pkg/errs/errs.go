package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrAlreadyExists      = errors.New("already exists")
	ErrAccessDenied       = errors.New("access denied")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ObjectNotFoundError reports that the object identified by ID does not exist.
// ParamName names the kind of object (e.g. "shipment").
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the closed range [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AlreadyExistsError reports a uniqueness violation on Field of Entity.
type AlreadyExistsError struct {
	Entity string
	Field  string
	Cause  error
}

func NewAlreadyExistsError(entity, field string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity: entity,
		Field:  field,
	}
}

func NewAlreadyExistsErrorWithCause(entity, field string, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity: entity,
		Field:  field,
		Cause:  cause,
	}
}

func (e *AlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s with this %s", ErrAlreadyExists, e.Entity, e.Field), e.Cause)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// AccessDeniedError reports that the caller's role is not one of RequiredRoles.
type AccessDeniedError struct {
	RequiredRoles []string
	Cause         error
}

func NewAccessDeniedError(requiredRoles ...string) *AccessDeniedError {
	return &AccessDeniedError{RequiredRoles: requiredRoles}
}

func NewAccessDeniedErrorWithCause(cause error, requiredRoles ...string) *AccessDeniedError {
	return &AccessDeniedError{
		RequiredRoles: requiredRoles,
		Cause:         cause,
	}
}

func (e *AccessDeniedError) Error() string {
	msg := fmt.Sprintf("%s: required roles: %s", ErrAccessDenied, strings.Join(e.RequiredRoles, ", "))
	return withCause(msg, e.Cause)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause)
}

// sanitize renders v on a single line so error messages stay log-friendly.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
