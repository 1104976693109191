package http

import (
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/generated/servers"
)

func toShipment(s *shipment.Shipment) servers.Shipment {
	details := s.PackageDetails()
	fragile := details.Fragile()
	var dimensions *string
	if d := details.Dimensions(); d != "" {
		dimensions = &d
	}

	return servers.Shipment{
		Id: s.ID(),
		PackageDetails: servers.PackageDetails{
			Content:    details.Content(),
			Weight:     details.Weight(),
			Dimensions: dimensions,
			Fragile:    &fragile,
		},
		Recipient: servers.Recipient{
			Name:    s.Recipient().Name(),
			Email:   s.Recipient().Email().String(),
			Phone:   s.Recipient().Phone(),
			Address: s.Recipient().Address(),
		},
		Seller: servers.Seller{
			Name:  s.Seller().Name(),
			Email: s.Seller().Email().String(),
			Phone: s.Seller().Phone(),
		},
		DestinationCode: s.DestinationCode(),
		CurrentStatus:   servers.ShipmentStatus(s.Status().String()),
		TrackingEvents:  toTrackingEvents(s.TrackingEvents()),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func toShipmentSummary(summary queries.ShipmentSummary) servers.ShipmentSummary {
	return servers.ShipmentSummary{
		Id:              summary.ID,
		Content:         summary.Content,
		Weight:          summary.Weight,
		CurrentStatus:   servers.ShipmentStatus(summary.Status.String()),
		DestinationCode: summary.DestinationCode,
		RecipientName:   summary.RecipientName,
		CreatedAt:       summary.CreatedAt,
	}
}

func toTrackingEvent(e shipment.TrackingEvent) servers.TrackingEvent {
	return servers.TrackingEvent{
		Id:          e.ID(),
		Location:    e.Location(),
		Description: e.Description(),
		Status:      servers.ShipmentStatus(e.Status().String()),
		Timestamp:   e.Timestamp(),
	}
}

func toTrackingEvents(events []shipment.TrackingEvent) []servers.TrackingEvent {
	response := make([]servers.TrackingEvent, len(events))
	for i, e := range events {
		response[i] = toTrackingEvent(e)
	}
	return response
}

func toStatistics(stats queries.Statistics) servers.Statistics {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}
	return servers.Statistics{
		TotalShipments: stats.Total,
		ByStatus:       byStatus,
	}
}

// toPatch keeps absent fields nil so the aggregate leaves them untouched.
func toPatch(body servers.ShipmentUpdate) (shipment.Patch, error) {
	patch := shipment.Patch{DestinationCode: body.DestinationCode}

	if body.PackageDetails != nil {
		patch.PackageDetails = &shipment.PackageDetailsPatch{
			Content:    body.PackageDetails.Content,
			Weight:     body.PackageDetails.Weight,
			Dimensions: body.PackageDetails.Dimensions,
			Fragile:    body.PackageDetails.Fragile,
		}
	}

	if body.Recipient != nil {
		patch.Recipient = &shipment.RecipientPatch{
			Name:    body.Recipient.Name,
			Email:   body.Recipient.Email,
			Phone:   body.Recipient.Phone,
			Address: body.Recipient.Address,
		}
	}

	if body.CurrentStatus != nil {
		status, err := shipment.ParseStatus(string(*body.CurrentStatus))
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.Status = &status
	}

	return patch, nil
}
