package commands

import (
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a partial update of a shipment.
// Nil fields of the patch are left untouched.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	shipmentID int64
	patch      shipment.Patch

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command updating shipmentID with patch.
func NewUpdateShipmentCommand(actor user.Principal, shipmentID int64, patch shipment.Patch) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		actor: actor,
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		validatePatchStatus(patch),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) Actor() user.Principal { return c.actor }
func (c UpdateShipmentCommand) ShipmentID() int64     { return c.shipmentID }
func (c UpdateShipmentCommand) Patch() shipment.Patch { return c.patch }

func (c *UpdateShipmentCommand) setShipmentID(id int64) error {
	if err := validateShipmentID(id); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func validatePatchStatus(patch shipment.Patch) error {
	if patch.Status == nil {
		return nil
	}
	return patch.Status.Validate()
}

func validateShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipment id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
