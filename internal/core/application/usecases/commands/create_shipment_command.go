package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// The value objects are validated by their own constructors; the command only
// checks that they were built.
//
// Example:
//
//	details, _ := shipment.NewPackageDetails("aluminum sheets", 8.2, "50x30x10", false)
//	recipient, _ := shipment.NewRecipient("Ahmad Suryadi", "ahmad@example.com", "081234567890", "Jl. Sudirman No. 123")
//	seller, _ := shipment.NewSeller("Metal Supplies Co.", "sales@metalsupplies.com", "021-5551234")
//
//	cmd, err := NewCreateShipmentCommand(principal, details, recipient, seller, 11002)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor           user.Principal
	packageDetails  shipment.PackageDetails
	recipient       shipment.Recipient
	seller          shipment.Seller
	destinationCode int

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command acting on behalf of actor.
func NewCreateShipmentCommand(
	actor user.Principal,
	packageDetails shipment.PackageDetails,
	recipient shipment.Recipient,
	seller shipment.Seller,
	destinationCode int,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		actor:           actor,
		destinationCode: destinationCode,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageDetails(packageDetails),
		cmd.setRecipient(recipient),
		cmd.setSeller(seller),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Actor() user.Principal                   { return c.actor }
func (c CreateShipmentCommand) PackageDetails() shipment.PackageDetails { return c.packageDetails }
func (c CreateShipmentCommand) Recipient() shipment.Recipient           { return c.recipient }
func (c CreateShipmentCommand) Seller() shipment.Seller                 { return c.seller }
func (c CreateShipmentCommand) DestinationCode() int                    { return c.destinationCode }

func (c *CreateShipmentCommand) setPackageDetails(details shipment.PackageDetails) error {
	if details.Content() == "" {
		return errs.NewValueIsRequiredError("package details")
	}
	c.packageDetails = details
	return nil
}

func (c *CreateShipmentCommand) setRecipient(recipient shipment.Recipient) error {
	if err := recipient.Email().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	c.recipient = recipient
	return nil
}

func (c *CreateShipmentCommand) setSeller(seller shipment.Seller) error {
	if err := seller.Email().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("seller", err)
	}
	c.seller = seller
	return nil
}
