package user

import (
	"fmt"
	"strings"

	"lastmile/internal/pkg/errs"
)

// Role grants access to a subset of operations.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCourier  Role = "courier"
	RoleCustomer Role = "customer"
)

var allRoles = []Role{RoleAdmin, RoleCourier, RoleCustomer}

// AllRoles lists every role in canonical order.
func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole resolves a wire name into a Role.
func ParseRole(name string) (Role, error) {
	role := Role(name)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	for _, known := range allRoles {
		if r == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("must be one of: %s", strings.Join(RoleNames(allRoles...), ", ")))
}

func (r Role) String() string {
	return string(r)
}

// RoleNames converts roles to their wire names, preserving order.
func RoleNames(roles ...Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}
