package shipment

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// Recipient is the party the package is delivered to.
type Recipient struct {
	name    string
	email   kernel.Email
	phone   string
	address string
}

// RecipientPatch carries the fields of a partial update; nil fields keep their
// current value.
type RecipientPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// NewRecipient validates and builds a Recipient. The name must not be blank
// and the email must be a valid address.
func NewRecipient(name, email, phone, address string) (Recipient, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("recipient name")
	}
	parsedEmail, emailErr := kernel.NewEmail(email)

	if err := errors.Join(nameErr, emailErr); err != nil {
		return Recipient{}, err
	}

	return Recipient{
		name:    name,
		email:   parsedEmail,
		phone:   phone,
		address: address,
	}, nil
}

func (r Recipient) Name() string        { return r.name }
func (r Recipient) Email() kernel.Email { return r.email }
func (r Recipient) Phone() string       { return r.phone }
func (r Recipient) Address() string     { return r.address }

// Merge returns a copy of r with the fields present in patch replaced.
func (r Recipient) Merge(patch RecipientPatch) (Recipient, error) {
	name, email, phone, address := r.name, r.email.String(), r.phone, r.address
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Email != nil {
		email = *patch.Email
	}
	if patch.Phone != nil {
		phone = *patch.Phone
	}
	if patch.Address != nil {
		address = *patch.Address
	}
	return NewRecipient(name, email, phone, address)
}

// IsEmpty reports whether the patch sets no field.
func (patch RecipientPatch) IsEmpty() bool {
	return patch.Name == nil && patch.Email == nil && patch.Phone == nil && patch.Address == nil
}

// Seller is the party that ships the package.
type Seller struct {
	name  string
	email kernel.Email
	phone string
}

// NewSeller validates and builds a Seller.
func NewSeller(name, email, phone string) (Seller, error) {
	parsedEmail, err := kernel.NewEmail(email)
	if err != nil {
		return Seller{}, err
	}
	return Seller{
		name:  name,
		email: parsedEmail,
		phone: phone,
	}, nil
}

func (s Seller) Name() string        { return s.name }
func (s Seller) Email() kernel.Email { return s.email }
func (s Seller) Phone() string       { return s.phone }
