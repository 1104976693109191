package memory

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"
)

type sampleShipment struct {
	id          int64
	content     string
	weight      float64
	dimensions  string
	fragile     bool
	recipient   [4]string // name, email, phone, address
	seller      [3]string // name, email, phone
	destination int
	status      shipment.Status
	event       sampleEvent
	createdAt   time.Time
	updatedAt   time.Time
}

type sampleEvent struct {
	id          int64
	location    string
	description string
	at          time.Time
}

var sampleShipments = []sampleShipment{
	{
		id: 12701, content: "aluminum sheets", weight: 8.2, dimensions: "50x30x10",
		recipient:   [4]string{"Ahmad Suryadi", "ahmad@example.com", "081234567890", "Jl. Sudirman No. 123, Jakarta Pusat"},
		seller:      [3]string{"Metal Supplies Co.", "sales@metalsupplies.com", "021-5551234"},
		destination: 11002,
		status:      shipment.Placed,
		event:       sampleEvent{1, "Warehouse Jakarta", "Package received at warehouse", date(2024, 12, 1, 9, 0)},
		createdAt:   date(2024, 12, 1, 9, 0),
		updatedAt:   date(2024, 12, 1, 9, 0),
	},
	{
		id: 12702, content: "steel rods", weight: 14.7, dimensions: "200x10x10",
		recipient:   [4]string{"Budi Santoso", "budi@example.com", "082345678901", "Jl. Industri No. 45, Surabaya"},
		seller:      [3]string{"Steel Works Ltd.", "info@steelworks.com", "031-7771234"},
		destination: 11003,
		status:      shipment.InTransit,
		event:       sampleEvent{2, "Distribution Center Surabaya", "In transit to destination", date(2024, 12, 1, 10, 30)},
		createdAt:   date(2024, 12, 1, 8, 0),
		updatedAt:   date(2024, 12, 1, 10, 30),
	},
	{
		id: 12703, content: "copper wires", weight: 11.4, dimensions: "40x40x20", fragile: true,
		recipient:   [4]string{"Siti Nurhaliza", "siti@example.com", "083456789012", "Jl. Merdeka No. 78, Jakarta Selatan"},
		seller:      [3]string{"Copper Tech Inc.", "sales@coppertech.com", "021-8881234"},
		destination: 11002,
		status:      shipment.Delivered,
		event:       sampleEvent{3, "Customer Address", "Package delivered successfully", date(2024, 11, 30, 15, 45)},
		createdAt:   date(2024, 11, 29, 10, 0),
		updatedAt:   date(2024, 11, 30, 15, 45),
	},
}

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// SampleShipments returns the demo shipments 12701 (placed), 12702
// (in_transit) and 12703 (delivered) with tracking event ids 1 to 3.
func SampleShipments() ([]*shipment.Shipment, error) {
	result := make([]*shipment.Shipment, 0, len(sampleShipments))
	for _, s := range sampleShipments {
		details, detailsErr := shipment.NewPackageDetails(s.content, s.weight, s.dimensions, s.fragile)
		recipient, recipientErr := shipment.NewRecipient(s.recipient[0], s.recipient[1], s.recipient[2], s.recipient[3])
		seller, sellerErr := shipment.NewSeller(s.seller[0], s.seller[1], s.seller[2])
		event, eventErr := shipment.RestoreTrackingEvent(s.event.id, s.event.location, s.event.description, s.status, s.event.at)
		if err := errors.Join(detailsErr, recipientErr, sellerErr, eventErr); err != nil {
			return nil, err
		}

		restored, err := shipment.RestoreShipment(
			s.id, details, recipient, seller, s.destination, s.status,
			[]shipment.TrackingEvent{event}, s.createdAt, s.updatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, restored)
	}
	return result, nil
}

type defaultUser struct {
	username string
	email    string
	password string
	role     user.Role
}

var defaultUsers = []defaultUser{
	{"admin", "admin@logixpress.com", "admin123", user.RoleAdmin},
	{"courier", "courier@logixpress.com", "courier123", user.RoleCourier},
	{"customer", "customer@example.com", "customer123", user.RoleCustomer},
}

// DefaultUsers returns one enabled account per role, with passwords hashed
// by hasher.
func DefaultUsers(hasher ports.PasswordHasher, now time.Time) ([]*user.User, error) {
	result := make([]*user.User, 0, len(defaultUsers))
	for _, d := range defaultUsers {
		email, err := kernel.NewEmail(d.email)
		if err != nil {
			return nil, err
		}
		hash, err := hasher.Hash(d.password)
		if err != nil {
			return nil, err
		}
		u, err := user.NewUser(d.username, email, hash, d.role, now)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}
