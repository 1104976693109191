package shipment

import (
	"fmt"

	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	placed ──┬──> in_transit ──┬──> out_for_delivery ──┬──> delivered
//	         │                 │                       │
//	         │                 ├──> returned <─────────┘
//	         │                 │
//	         └──> cancelled <──┘
//
// Status is a value object; the zero value Unknown is never a valid state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Placed is the initial status of every new shipment.
	Placed

	// InTransit indicates the package left the warehouse.
	InTransit

	// OutForDelivery indicates the package is with the last-mile courier.
	OutForDelivery

	// Delivered is terminal.
	Delivered

	// Returned is terminal.
	Returned

	// Cancelled is terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Placed:         "placed",
	InTransit:      "in_transit",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
	Returned:       "returned",
	Cancelled:      "cancelled",
}

var statusesByName = map[string]Status{
	"placed":           Placed,
	"in_transit":       InTransit,
	"out_for_delivery": OutForDelivery,
	"delivered":        Delivered,
	"returned":         Returned,
	"cancelled":        Cancelled,
}

// transitions lists the legal next statuses in the order they are reported
// to callers. Terminal statuses map to an empty list.
var transitions = map[Status][]Status{
	Placed:         {InTransit, Cancelled},
	InTransit:      {OutForDelivery, Returned, Cancelled},
	OutForDelivery: {Delivered, Returned},
	Delivered:      {},
	Returned:       {},
	Cancelled:      {},
}

// statusLocations is where a status change is recorded when no location is
// supplied by the caller.
var statusLocations = map[Status]string{
	Placed:         "Warehouse",
	InTransit:      "Distribution Center",
	OutForDelivery: "Local Hub",
	Delivered:      "Customer Address",
	Returned:       "Return Center",
	Cancelled:      "Warehouse",
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Placed, InTransit, OutForDelivery, Delivered, Returned, Cancelled}
}

// ParseStatus converts the wire name of a status ("in_transit") into a Status.
func ParseStatus(name string) (Status, error) {
	s, ok := statusesByName[name]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid status", name),
		)
	}
	return s, nil
}

// Validate checks that s is one of the six defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CanTransitionTo reports whether next is reachable from s in one step.
// It is a pure lookup and is safe for concurrent use.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ValidNext returns the statuses reachable from s in one step.
// The returned slice is a copy.
func (s Status) ValidNext() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// DefaultLocation is the location recorded for a status change made through
// Shipment.Update.
func (s Status) DefaultLocation() string {
	return statusLocations[s]
}

// TransitionTo validates the step from s to next.
//
// Returns:
//   - (next, nil) when the graph allows it
//   - (s, *StatusTransitionError) otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(next) {
		return s, NewStatusTransitionError(s, next)
	}
	return next, nil
}
