package shipment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidStatusTransition is the sentinel behind StatusTransitionError.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// StatusTransitionError reports a requested status that is not reachable from
// the current one. ValidNext carries the statuses the caller could ask for instead.
type StatusTransitionError struct {
	Current   Status
	Requested Status
	ValidNext []Status
}

// NewStatusTransitionError builds the error for the step current -> requested.
func NewStatusTransitionError(current, requested Status) *StatusTransitionError {
	return &StatusTransitionError{
		Current:   current,
		Requested: requested,
		ValidNext: current.ValidNext(),
	}
}

// ValidNextNames returns ValidNext as wire names.
func (e *StatusTransitionError) ValidNextNames() []string {
	names := make([]string, 0, len(e.ValidNext))
	for _, s := range e.ValidNext {
		names = append(names, s.String())
	}
	return names
}

func (e *StatusTransitionError) Error() string {
	valid := strings.Join(e.ValidNextNames(), ", ")
	if valid == "" {
		valid = "none"
	}
	return fmt.Sprintf("%s: from %s to %s, valid next: %s", ErrInvalidStatusTransition, e.Current, e.Requested, valid)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
