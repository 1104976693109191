package shipment

import (
	"errors"
	"fmt"
	"time"

	"lastmile/internal/pkg/errs"
)

const (
	initialEventLocation    = "Warehouse"
	initialEventDescription = "Shipment order created and received at warehouse"
)

// Shipment is the aggregate root of the tracking domain. It owns the package
// details, both parties, the destination and the tracking history, and it is
// the only way to add tracking events.
//
// Shipment follows these invariants:
//   - Must be created through NewShipment or RestoreShipment
//   - Always holds at least one tracking event
//   - Status always equals the status of the last tracking event
//   - Tracking events are never modified or removed
//   - Event timestamps never decrease
//
// Shipment is not safe for concurrent mutation; the store serializes writers.
type Shipment struct {
	// id is the store-assigned tracking number
	id int64

	packageDetails  PackageDetails
	recipient       Recipient
	seller          Seller
	destinationCode int

	// status mirrors the status of the last element of events
	status Status

	// events is the append-only history, oldest first
	events []TrackingEvent

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Patch is a partial update of a shipment. Nil fields are left unchanged.
// PackageDetails and Recipient are merged field by field; DestinationCode is
// replaced; Status requests a lifecycle transition.
type Patch struct {
	PackageDetails  *PackageDetailsPatch
	Recipient       *RecipientPatch
	DestinationCode *int
	Status          *Status
}

// NewShipment creates a shipment in Placed status with the initial warehouse
// event. The tracking number id is allocated by the caller's store, and the
// event id comes from ids.
//
// Example:
//
//	details, _ := shipment.NewPackageDetails("aluminum sheets", 8.2, "50x30x10", false)
//	recipient, _ := shipment.NewRecipient("Ahmad Suryadi", "ahmad@example.com", "081234567890", "Jl. Sudirman No. 123")
//	seller, _ := shipment.NewSeller("Metal Supplies Co.", "sales@metalsupplies.com", "021-5551234")
//	s, err := shipment.NewShipment(12701, details, recipient, seller, 11002, ids, time.Now())
func NewShipment(
	id int64,
	packageDetails PackageDetails,
	recipient Recipient,
	seller Seller,
	destinationCode int,
	ids EventIDGenerator,
	now time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		validateID(id),
		packageDetailsIsSet(packageDetails),
		recipient.email.Validate(),
		seller.email.Validate(),
		idsIsSet(ids),
	); err != nil {
		return nil, err
	}

	s := &Shipment{
		id:              id,
		packageDetails:  packageDetails,
		recipient:       recipient,
		seller:          seller,
		destinationCode: destinationCode,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}
	s.appendEvent(ids.NextEventID(), initialEventLocation, initialEventDescription, Placed, now)

	return s, nil
}

// RestoreShipment rebuilds a shipment from previously recorded state.
// The history must be non-empty, ordered by time, and end in status.
func RestoreShipment(
	id int64,
	packageDetails PackageDetails,
	recipient Recipient,
	seller Seller,
	destinationCode int,
	status Status,
	events []TrackingEvent,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		validateID(id),
		packageDetailsIsSet(packageDetails),
		status.Validate(),
		validateHistory(status, events),
	); err != nil {
		return nil, err
	}

	history := make([]TrackingEvent, len(events))
	copy(history, events)

	return &Shipment{
		id:              id,
		packageDetails:  packageDetails,
		recipient:       recipient,
		seller:          seller,
		destinationCode: destinationCode,
		status:          status,
		events:          history,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() int64                      { return s.id }
func (s *Shipment) PackageDetails() PackageDetails { return s.packageDetails }
func (s *Shipment) Recipient() Recipient           { return s.recipient }
func (s *Shipment) Seller() Seller                 { return s.seller }
func (s *Shipment) DestinationCode() int           { return s.destinationCode }
func (s *Shipment) Status() Status                 { return s.status }
func (s *Shipment) CreatedAt() time.Time           { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time           { return s.updatedAt }

// TrackingEvents returns a copy of the history, oldest first.
func (s *Shipment) TrackingEvents() []TrackingEvent {
	out := make([]TrackingEvent, len(s.events))
	copy(out, s.events)
	return out
}

// LastEvent returns the most recent tracking event.
func (s *Shipment) LastEvent() TrackingEvent {
	return s.events[len(s.events)-1]
}

// Clone returns an independent copy that can be mutated without affecting s.
func (s *Shipment) Clone() *Shipment {
	clone := *s
	clone.events = s.TrackingEvents()
	return &clone
}

// Update applies patch to the shipment.
//
// This method enforces the following business rules:
//   - A requested status equal to the current one is not a change
//   - Any other requested status must be reachable through the transition graph,
//     otherwise *StatusTransitionError is returned
//   - A status change appends an event located at Status.DefaultLocation
//   - Merged value objects are revalidated
//   - updatedAt is refreshed only when something was applied
//
// Every check runs before any field is written, so a failed update leaves the
// shipment exactly as it was.
func (s *Shipment) Update(patch Patch, ids EventIDGenerator, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	statusChanged := patch.Status != nil && *patch.Status != s.status
	if statusChanged {
		if _, err := s.status.TransitionTo(*patch.Status); err != nil {
			return err
		}
		if err := idsIsSet(ids); err != nil {
			return err
		}
	}

	packageDetails := s.packageDetails
	if patch.PackageDetails != nil {
		merged, err := s.packageDetails.Merge(*patch.PackageDetails)
		if err != nil {
			return err
		}
		packageDetails = merged
	}

	recipient := s.recipient
	if patch.Recipient != nil {
		merged, err := s.recipient.Merge(*patch.Recipient)
		if err != nil {
			return err
		}
		recipient = merged
	}

	changed := statusChanged || patch.PackageDetails != nil || patch.Recipient != nil || patch.DestinationCode != nil

	s.packageDetails = packageDetails
	s.recipient = recipient
	if patch.DestinationCode != nil {
		s.destinationCode = *patch.DestinationCode
	}
	if statusChanged {
		next := *patch.Status
		s.appendEvent(ids.NextEventID(), next.DefaultLocation(), fmt.Sprintf("Status updated to %s", next), next, now)
	}
	if changed {
		s.touch(now)
	}

	return nil
}

// AppendEvent records a tracking event and moves the shipment to its status.
//
// Unlike Update, the status is NOT checked against the transition graph:
// couriers report what physically happened and the history accepts it as is.
// Only the status value itself must be valid. updatedAt is refreshed only
// when the status actually changes.
//
// Returns the appended event.
func (s *Shipment) AppendEvent(
	location, description string,
	status Status,
	ids EventIDGenerator,
	now time.Time,
) (TrackingEvent, error) {
	if err := errors.Join(s.Validate(), status.Validate(), idsIsSet(ids)); err != nil {
		return TrackingEvent{}, err
	}

	statusChanged := status != s.status
	event := s.appendEvent(ids.NextEventID(), location, description, status, now)
	if statusChanged {
		s.touch(now)
	}

	return event, nil
}

// appendEvent is the single place where history grows. The timestamp is
// clamped so the history never goes back in time.
func (s *Shipment) appendEvent(id int64, location, description string, status Status, now time.Time) TrackingEvent {
	timestamp := now
	if n := len(s.events); n > 0 && timestamp.Before(s.events[n-1].timestamp) {
		timestamp = s.events[n-1].timestamp
	}

	event := TrackingEvent{
		id:          id,
		location:    location,
		description: description,
		status:      status,
		timestamp:   timestamp,
	}
	s.events = append(s.events, event)
	s.status = status
	return event
}

func (s *Shipment) touch(now time.Time) {
	if now.After(s.updatedAt) {
		s.updatedAt = now
	}
}

func validateID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipment id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func packageDetailsIsSet(p PackageDetails) error {
	if p.content == "" {
		return errs.NewValueIsRequiredError("package details")
	}
	return nil
}

func idsIsSet(ids EventIDGenerator) error {
	if ids == nil {
		return errs.NewValueIsRequiredError("event id generator")
	}
	return nil
}

func validateHistory(status Status, events []TrackingEvent) error {
	if len(events) == 0 {
		return errs.NewValueIsRequiredError("tracking events")
	}
	for i := 1; i < len(events); i++ {
		if events[i].timestamp.Before(events[i-1].timestamp) {
			return errs.NewValueIsInvalidErrorWithCause(
				"tracking events",
				fmt.Errorf("event %d is older than event %d", events[i].id, events[i-1].id),
			)
		}
	}
	if last := events[len(events)-1].status; last != status {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s does not match last tracking event status %s", status, last),
		)
	}
	return nil
}
