// Package services provides domain services that hold business rules spanning
// more than one aggregate of the tracking system.
//
// The package includes:
//   - AccessPolicy: the role table deciding which principal may run which operation
//
// AccessPolicy is a pure function of (role, operation). It is consulted by the
// application layer before any store access, so a denied call never has side
// effects.
package services
