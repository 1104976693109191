// Package shipment implements the Shipment aggregate root together with its
// status lifecycle and its internal TrackingEvent entities.
//
// The package includes:
//   - Shipment: the aggregate root owning package, parties, destination and history
//   - Status: a closed enumeration with a constant transition graph
//   - TrackingEvent: an immutable history entry, only created through the aggregate
//   - PackageDetails, Recipient, Seller: value objects with field-level merge support
//
// Key business rules:
//   - A new shipment starts as placed with a single warehouse event
//   - placed -> in_transit | cancelled
//   - in_transit -> out_for_delivery | returned | cancelled
//   - out_for_delivery -> delivered | returned
//   - delivered, returned and cancelled are terminal
//   - The current status always equals the status of the last tracking event
//   - Tracking events are append-only and their timestamps never decrease
package shipment
