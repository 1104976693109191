package queries

import (
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/domain/services"
)

// Authorizer decides whether a principal may run an operation.
// services.AccessPolicy satisfies it.
type Authorizer interface {
	AuthorizePrincipal(principal user.Principal, op services.Operation) error
}
