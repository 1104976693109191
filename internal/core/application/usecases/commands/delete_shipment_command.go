package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand removes a shipment together with its history.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	shipmentID int64

	guard guard.ConstructorGuard
}

func NewDeleteShipmentCommand(actor user.Principal, shipmentID int64) (DeleteShipmentCommand, error) {
	if err := validateShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

func (c DeleteShipmentCommand) Actor() user.Principal { return c.actor }
func (c DeleteShipmentCommand) ShipmentID() int64     { return c.shipmentID }
