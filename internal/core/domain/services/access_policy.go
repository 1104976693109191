package services

import (
	"fmt"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
)

// Operation identifies a guarded use case.
type Operation int

const (
	OperationUnknown Operation = iota
	ListShipments
	GetShipment
	ViewTrackingHistory
	CreateShipment
	UpdateShipment
	AddTrackingEvent
	DeleteShipment
	ViewStatistics
)

var operationNames = map[Operation]string{
	ListShipments:       "list_shipments",
	GetShipment:         "get_shipment",
	ViewTrackingHistory: "view_tracking_history",
	CreateShipment:      "create_shipment",
	UpdateShipment:      "update_shipment",
	AddTrackingEvent:    "add_tracking_event",
	DeleteShipment:      "delete_shipment",
	ViewStatistics:      "view_statistics",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

var everyone = []user.Role{user.RoleAdmin, user.RoleCourier, user.RoleCustomer}

// AccessPolicy maps every operation to the roles allowed to run it.
//
// Role table:
//
//	operation                    admin  courier  customer
//	list, get, tracking history    x       x        x
//	create shipment                x                x
//	update shipment                x       x
//	add tracking event             x       x
//	delete shipment                x
//	view statistics                x
//
// Allowed roles are kept in admin, courier, customer order so denial messages
// are stable.
type AccessPolicy struct {
	allowed map[Operation][]user.Role
}

// NewAccessPolicy returns the policy with the standard role table.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{
		allowed: map[Operation][]user.Role{
			ListShipments:       everyone,
			GetShipment:         everyone,
			ViewTrackingHistory: everyone,
			CreateShipment:      {user.RoleAdmin, user.RoleCustomer},
			UpdateShipment:      {user.RoleAdmin, user.RoleCourier},
			AddTrackingEvent:    {user.RoleAdmin, user.RoleCourier},
			DeleteShipment:      {user.RoleAdmin},
			ViewStatistics:      {user.RoleAdmin},
		},
	}
}

// Authorize returns nil when role may run op, otherwise *errs.AccessDeniedError
// carrying the allowed roles.
func (p AccessPolicy) Authorize(role user.Role, op Operation) error {
	allowed, ok := p.allowed[op]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("operation", fmt.Errorf("%d is not a guarded operation", op))
	}

	for _, r := range allowed {
		if r == role {
			return nil
		}
	}

	return errs.NewAccessDeniedError(user.RoleNames(allowed...)...)
}

// AuthorizePrincipal checks the principal is enabled before consulting the
// role table.
func (p AccessPolicy) AuthorizePrincipal(principal user.Principal, op Operation) error {
	if principal.Disabled {
		return user.ErrUserIsDisabled
	}
	return p.Authorize(principal.Role, op)
}

// AllowedRoles returns the roles allowed to run op.
func (p AccessPolicy) AllowedRoles(op Operation) []user.Role {
	allowed := p.allowed[op]
	out := make([]user.Role, len(allowed))
	copy(out, allowed)
	return out
}
