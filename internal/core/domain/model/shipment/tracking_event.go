package shipment

import "time"

// TrackingEvent is one entry of a shipment's history. Events have no identity
// outside their shipment and are immutable once appended.
type TrackingEvent struct {
	id          int64
	location    string
	description string
	status      Status
	timestamp   time.Time
}

// EventIDGenerator hands out tracking event ids from one sequence shared by
// every shipment in the store.
type EventIDGenerator interface {
	NextEventID() int64
}

// RestoreTrackingEvent rebuilds an event that was already appended, e.g. when
// loading seed data. New events are only created by the Shipment aggregate.
func RestoreTrackingEvent(id int64, location, description string, status Status, timestamp time.Time) (TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	return TrackingEvent{
		id:          id,
		location:    location,
		description: description,
		status:      status,
		timestamp:   timestamp,
	}, nil
}

func (e TrackingEvent) ID() int64            { return e.id }
func (e TrackingEvent) Location() string     { return e.location }
func (e TrackingEvent) Description() string  { return e.description }
func (e TrackingEvent) Status() Status       { return e.status }
func (e TrackingEvent) Timestamp() time.Time { return e.timestamp }
