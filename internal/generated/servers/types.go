// Package servers holds the wire types and the echo binding layer of the
// HTTP contract in api/openapi.yaml, laid out the way oapi-codegen emits an
// echo server: models, a ServerInterface, a wrapper that binds parameters and
// RegisterHandlers.
package servers

import "time"

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for Role.
const (
	Admin    Role = "admin"
	Courier  Role = "courier"
	Customer Role = "customer"
)

// Defines values for ShipmentStatus.
const (
	Cancelled      ShipmentStatus = "cancelled"
	Delivered      ShipmentStatus = "delivered"
	InTransit      ShipmentStatus = "in_transit"
	OutForDelivery ShipmentStatus = "out_for_delivery"
	Placed         ShipmentStatus = "placed"
	Returned       ShipmentStatus = "returned"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health defines model for Health.
type Health struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Password string `json:"password"`
	Username string `json:"username"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// PackageDetails defines model for PackageDetails.
type PackageDetails struct {
	Content    string  `json:"content"`
	Dimensions *string `json:"dimensions"`
	Fragile    *bool   `json:"fragile,omitempty"`
	Weight     float64 `json:"weight"`
}

// PackageDetailsPatch defines model for PackageDetailsPatch.
type PackageDetailsPatch struct {
	Content    *string  `json:"content,omitempty"`
	Dimensions *string  `json:"dimensions,omitempty"`
	Fragile    *bool    `json:"fragile,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

// Recipient defines model for Recipient.
type Recipient struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

// RecipientPatch defines model for RecipientPatch.
type RecipientPatch struct {
	Address *string `json:"address,omitempty"`
	Email   *string `json:"email,omitempty"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     *Role  `json:"role,omitempty"`
	Username string `json:"username"`
}

// RegisterResponse defines model for RegisterResponse.
type RegisterResponse struct {
	Email    string `json:"email"`
	Message  string `json:"message"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// Role defines model for Role.
type Role string

// Seller defines model for Seller.
type Seller struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ServiceInfo defines model for ServiceInfo.
type ServiceInfo struct {
	BoundedContext string `json:"bounded_context"`
	Docs           string `json:"docs"`
	Message        string `json:"message"`
	Version        string `json:"version"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	CreatedAt       time.Time       `json:"created_at"`
	CurrentStatus   ShipmentStatus  `json:"current_status"`
	DestinationCode int             `json:"destination_code"`
	Id              int64           `json:"id"`
	PackageDetails  PackageDetails  `json:"package_details"`
	Recipient       Recipient       `json:"recipient"`
	Seller          Seller          `json:"seller"`
	TrackingEvents  []TrackingEvent `json:"tracking_events"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ShipmentCreate defines model for ShipmentCreate.
type ShipmentCreate struct {
	DestinationCode int            `json:"destination_code"`
	PackageDetails  PackageDetails `json:"package_details"`
	Recipient       Recipient      `json:"recipient"`
	Seller          Seller         `json:"seller"`
}

// ShipmentCreated defines model for ShipmentCreated.
type ShipmentCreated struct {
	Id      int64  `json:"id"`
	Message string `json:"message"`
}

// ShipmentStatus defines model for ShipmentStatus.
type ShipmentStatus string

// ShipmentSummary defines model for ShipmentSummary.
type ShipmentSummary struct {
	Content         string         `json:"content"`
	CreatedAt       time.Time      `json:"created_at"`
	CurrentStatus   ShipmentStatus `json:"current_status"`
	DestinationCode int            `json:"destination_code"`
	Id              int64          `json:"id"`
	RecipientName   string         `json:"recipient_name"`
	Weight          float64        `json:"weight"`
}

// ShipmentUpdate defines model for ShipmentUpdate.
type ShipmentUpdate struct {
	CurrentStatus   *ShipmentStatus      `json:"current_status,omitempty"`
	DestinationCode *int                 `json:"destination_code,omitempty"`
	PackageDetails  *PackageDetailsPatch `json:"package_details,omitempty"`
	Recipient       *RecipientPatch      `json:"recipient,omitempty"`
}

// Statistics defines model for Statistics.
type Statistics struct {
	ByStatus       map[string]int `json:"by_status"`
	TotalShipments int            `json:"total_shipments"`
}

// Token defines model for Token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TrackingEvent defines model for TrackingEvent.
type TrackingEvent struct {
	Description string         `json:"description"`
	Id          int64          `json:"id"`
	Location    string         `json:"location"`
	Status      ShipmentStatus `json:"status"`
	Timestamp   time.Time      `json:"timestamp"`
}

// TrackingEventCreate defines model for TrackingEventCreate.
type TrackingEventCreate struct {
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Status      ShipmentStatus `json:"status"`
}

// User defines model for User.
type User struct {
	Disabled bool   `json:"disabled"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// ShipmentID defines model for ShipmentID.
type ShipmentID = int64

// ListShipmentsParams defines parameters for ListShipments.
type ListShipmentsParams struct {
	Status          *ShipmentStatus `form:"status,omitempty" json:"status,omitempty"`
	DestinationCode *int            `form:"destination_code,omitempty" json:"destination_code,omitempty"`
	Limit           *int            `form:"limit,omitempty" json:"limit,omitempty"`
}

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// RegisterJSONRequestBody defines body for Register for application/json ContentType.
type RegisterJSONRequestBody = RegisterRequest

// CreateShipmentJSONRequestBody defines body for CreateShipment for application/json ContentType.
type CreateShipmentJSONRequestBody = ShipmentCreate

// UpdateShipmentJSONRequestBody defines body for UpdateShipment for application/json ContentType.
type UpdateShipmentJSONRequestBody = ShipmentUpdate

// AddTrackingEventJSONRequestBody defines body for AddTrackingEvent for application/json ContentType.
type AddTrackingEventJSONRequestBody = TrackingEventCreate
