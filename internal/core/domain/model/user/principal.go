package user

// Principal is the identity a request acts as.
type Principal struct {
	Username string
	Role     Role
	Disabled bool
}

// System is the principal used by background jobs.
var System = Principal{Username: "system", Role: RoleAdmin}

// Validate fails when the principal may not act at all.
func (p Principal) Validate() error {
	if p.Disabled {
		return ErrUserIsDisabled
	}
	return p.Role.Validate()
}
