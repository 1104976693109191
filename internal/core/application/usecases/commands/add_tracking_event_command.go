package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/guard"
)

var ErrAddTrackingEventCommandIsNotConstructed = errors.New(
	"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
)

// AddTrackingEventCommand records what happened to a shipment on the ground.
// The reported status is taken as is; it is not checked against the
// transition graph.
//
// Example:
//
//	cmd, err := NewAddTrackingEventCommand(principal, 12702, "Hub", "scanned", shipment.OutForDelivery)
//	if err != nil {
//	    return err
//	}
//	event, err := handler.Handle(ctx, cmd)
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	actor       user.Principal
	shipmentID  int64
	location    string
	description string
	status      shipment.Status

	guard guard.ConstructorGuard
}

func NewAddTrackingEventCommand(
	actor user.Principal,
	shipmentID int64,
	location, description string,
	status shipment.Status,
) (AddTrackingEventCommand, error) {
	cmd := AddTrackingEventCommand{
		actor:       actor,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}

	return cmd, nil
}

func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

func (c AddTrackingEventCommand) Actor() user.Principal   { return c.actor }
func (c AddTrackingEventCommand) ShipmentID() int64       { return c.shipmentID }
func (c AddTrackingEventCommand) Location() string        { return c.location }
func (c AddTrackingEventCommand) Description() string     { return c.description }
func (c AddTrackingEventCommand) Status() shipment.Status { return c.status }

func (c *AddTrackingEventCommand) setShipmentID(id int64) error {
	if err := validateShipmentID(id); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AddTrackingEventCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
