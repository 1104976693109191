// Package kernel provides domain primitives shared by the shipment and user
// models. Values are immutable and safe for concurrent use.
//
// The package includes:
//   - Email: a syntactically validated, normalized e-mail address
package kernel
