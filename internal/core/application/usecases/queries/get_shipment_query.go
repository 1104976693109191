package queries

import (
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its full history.
type GetShipmentQuery struct {
	actor      user.Principal
	shipmentID int64

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(actor user.Principal, shipmentID int64) (GetShipmentQuery, error) {
	if err := validateShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) Actor() user.Principal { return q.actor }
func (q GetShipmentQuery) ShipmentID() int64     { return q.shipmentID }

func validateShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipment id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
