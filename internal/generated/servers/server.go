package servers

import (
	"context"
	"fmt"
	"net/http"

	"lastmile/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Service information
	// (GET /)
	GetServiceInfo(ctx echo.Context) error
	// Login exchanges credentials for a bearer token
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// The authenticated caller
	// (GET /auth/me)
	GetCurrentUser(ctx echo.Context) error
	// Create a user account
	// (POST /auth/register)
	Register(ctx echo.Context) error
	// Liveness check, no authentication
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// Create a shipment in placed status
	// (POST /shipment)
	CreateShipment(ctx echo.Context) error
	// Delete a shipment
	// (DELETE /shipment/{id})
	DeleteShipment(ctx echo.Context, id ShipmentID) error
	// Full shipment with its tracking history
	// (GET /shipment/{id})
	GetShipment(ctx echo.Context, id ShipmentID) error
	// Partially update a shipment
	// (PATCH /shipment/{id})
	UpdateShipment(ctx echo.Context, id ShipmentID) error
	// Tracking events in append order
	// (GET /shipment/{id}/tracking)
	GetTrackingHistory(ctx echo.Context, id ShipmentID) error
	// Append a tracking event
	// (POST /shipment/{id}/tracking)
	AddTrackingEvent(ctx echo.Context, id ShipmentID) error
	// List shipment summaries in creation order
	// (GET /shipments)
	ListShipments(ctx echo.Context, params ListShipmentsParams) error
	// Shipment counts overall and per status
	// (GET /stats)
	GetStatistics(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetServiceInfo(ctx echo.Context) error {
	return w.Handler.GetServiceInfo(ctx)
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) GetCurrentUser(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetCurrentUser(ctx)
}

func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateShipment(ctx)
}

func (w *ServerInterfaceWrapper) DeleteShipment(ctx echo.Context) error {
	id, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeleteShipment(ctx, id)
}

func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	id, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetShipment(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateShipment(ctx echo.Context) error {
	id, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateShipment(ctx, id)
}

func (w *ServerInterfaceWrapper) GetTrackingHistory(ctx echo.Context) error {
	id, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetTrackingHistory(ctx, id)
}

func (w *ServerInterfaceWrapper) AddTrackingEvent(ctx echo.Context) error {
	id, err := bindShipmentID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AddTrackingEvent(ctx, id)
}

func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListShipmentsParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "destination_code", ctx.QueryParams(), &params.DestinationCode)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter destination_code: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListShipments(ctx, params)
}

func (w *ServerInterfaceWrapper) GetStatistics(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetStatistics(ctx)
}

func bindShipmentID(ctx echo.Context) (ShipmentID, error) {
	var id ShipmentID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group RegisterHandlers
// needs.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/", wrapper.GetServiceInfo)
	router.POST(baseURL+"/auth/login", wrapper.Login)
	router.GET(baseURL+"/auth/me", wrapper.GetCurrentUser)
	router.POST(baseURL+"/auth/register", wrapper.Register)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.POST(baseURL+"/shipment", wrapper.CreateShipment)
	router.DELETE(baseURL+"/shipment/:id", wrapper.DeleteShipment)
	router.GET(baseURL+"/shipment/:id", wrapper.GetShipment)
	router.PATCH(baseURL+"/shipment/:id", wrapper.UpdateShipment)
	router.GET(baseURL+"/shipment/:id/tracking", wrapper.GetTrackingHistory)
	router.POST(baseURL+"/shipment/:id/tracking", wrapper.AddTrackingEvent)
	router.GET(baseURL+"/shipments", wrapper.ListShipments)
	router.GET(baseURL+"/stats", wrapper.GetStatistics)
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading spec: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("error validating spec: %w", err)
	}
	return doc, nil
}
