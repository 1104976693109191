// Package api holds the OpenAPI contract of the HTTP interface.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served by the HTTP adapter and used to
// validate incoming requests.
//
//go:embed openapi.yaml
var Spec []byte
