package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the tracking events of a shipment.
type GetTrackingHistoryQuery struct {
	actor      user.Principal
	shipmentID int64

	guard guard.ConstructorGuard
}

func NewGetTrackingHistoryQuery(actor user.Principal, shipmentID int64) (GetTrackingHistoryQuery, error) {
	if err := validateShipmentID(shipmentID); err != nil {
		return GetTrackingHistoryQuery{}, err
	}
	return GetTrackingHistoryQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

func (q GetTrackingHistoryQuery) Actor() user.Principal { return q.actor }
func (q GetTrackingHistoryQuery) ShipmentID() int64     { return q.shipmentID }
