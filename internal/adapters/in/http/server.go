package http

import (
	"errors"
	"fmt"
	"net/http"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/generated/servers"
	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const boundedContext = "Shipment Lifecycle Management (Core Domain)"

// ServiceInfo describes the running service on / and /health.
type ServiceInfo struct {
	Name    string
	Version string
}

// Handlers groups the use cases the HTTP interface exposes.
type Handlers struct {
	// Command handlers
	CreateShipment   commands.CreateShipmentCommandHandler
	UpdateShipment   commands.UpdateShipmentCommandHandler
	DeleteShipment   commands.DeleteShipmentCommandHandler
	AddTrackingEvent commands.AddTrackingEventCommandHandler
	RegisterUser     commands.RegisterUserCommandHandler

	// Query handlers
	ListShipments      queries.ListShipmentsQueryHandler
	GetShipment        queries.GetShipmentQueryHandler
	GetTrackingHistory queries.GetTrackingHistoryQueryHandler
	GetStatistics      queries.GetStatisticsQueryHandler
	AuthenticateUser   queries.AuthenticateUserQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	info     ServiceInfo
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(info ServiceInfo, handlers Handlers) *Server {
	return &Server{
		info:     info,
		handlers: handlers,
	}
}

// GetServiceInfo handles GET / - describes the service.
func (s *Server) GetServiceInfo(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.ServiceInfo{
		Message:        s.info.Name + " - Shipment Lifecycle Management",
		Version:        s.info.Version,
		BoundedContext: boundedContext,
		Docs:           docsPath,
	})
}

// GetHealth handles GET /health - liveness, no authentication.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{
		Status:  "healthy",
		Service: s.info.Name,
		Version: s.info.Version,
	})
}

// GetStatistics handles GET /stats - shipment counts, admin only.
func (s *Server) GetStatistics(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.handlers.GetStatistics.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery(caller.Principal()))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

// Login handles POST /auth/login - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondInvalidBody(ctx)
	}

	query, err := queries.NewAuthenticateUserQuery(body.Username, body.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Token{
		AccessToken: token.Value,
		TokenType:   token.Type,
	})
}

// Register handles POST /auth/register - creates an enabled account.
func (s *Server) Register(ctx echo.Context) error {
	var body servers.RegisterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondInvalidBody(ctx)
	}

	role := ""
	if body.Role != nil {
		role = string(*body.Role)
	}

	cmd, err := commands.NewRegisterUserCommand(body.Username, body.Email, body.Password, role)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.RegisterResponse{
		Username: registered.Username(),
		Email:    registered.Email().String(),
		Role:     servers.Role(registered.Role()),
		Message: fmt.Sprintf("User '%s' registered successfully with role '%s'",
			registered.Username(), registered.Role()),
	})
}

// GetCurrentUser handles GET /auth/me - the authenticated caller.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.User{
		Username: caller.Username,
		Email:    caller.Email,
		Role:     servers.Role(caller.Role),
		Disabled: caller.Disabled,
	})
}

// ListShipments handles GET /shipments - summaries filtered by status and
// destination.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var status *shipment.Status
	if params.Status != nil {
		parsed, parseErr := shipment.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		status = &parsed
	}

	limit := queries.DefaultListLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListShipmentsQuery(caller.Principal(), status, params.DestinationCode, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.handlers.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.ShipmentSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = toShipmentSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /shipment - creates a shipment in placed status.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.CreateShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return respondInvalidBody(ctx)
	}

	details, detailsErr := shipment.NewPackageDetails(
		body.PackageDetails.Content,
		body.PackageDetails.Weight,
		deref(body.PackageDetails.Dimensions),
		deref(body.PackageDetails.Fragile),
	)
	recipient, recipientErr := shipment.NewRecipient(
		body.Recipient.Name, body.Recipient.Email, body.Recipient.Phone, body.Recipient.Address,
	)
	seller, sellerErr := shipment.NewSeller(body.Seller.Name, body.Seller.Email, body.Seller.Phone)
	if err = errors.Join(detailsErr, recipientErr, sellerErr); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(caller.Principal(), details, recipient, seller, body.DestinationCode)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ShipmentCreated{
		Id:      id,
		Message: "Shipment created successfully",
	})
}

// GetShipment handles GET /shipment/{id} - the full aggregate.
func (s *Server) GetShipment(ctx echo.Context, id servers.ShipmentID) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(caller.Principal(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipment(found))
}

// UpdateShipment handles PATCH /shipment/{id} - partial update, a status
// change goes through the transition graph.
func (s *Server) UpdateShipment(ctx echo.Context, id servers.ShipmentID) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.UpdateShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return respondInvalidBody(ctx)
	}

	patch, err := toPatch(body)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(caller.Principal(), id, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipment(updated))
}

// DeleteShipment handles DELETE /shipment/{id} - admin only.
func (s *Server) DeleteShipment(ctx echo.Context, id servers.ShipmentID) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(caller.Principal(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{
		Message: fmt.Sprintf("Shipment with tracking number %d has been deleted", id),
	})
}

// GetTrackingHistory handles GET /shipment/{id}/tracking - events in append order.
func (s *Server) GetTrackingHistory(ctx echo.Context, id servers.ShipmentID) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetTrackingHistoryQuery(caller.Principal(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	events, err := s.handlers.GetTrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackingEvents(events))
}

// AddTrackingEvent handles POST /shipment/{id}/tracking - appends an event
// whose status becomes the shipment status.
func (s *Server) AddTrackingEvent(ctx echo.Context, id servers.ShipmentID) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.AddTrackingEventJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return respondInvalidBody(ctx)
	}

	status, err := shipment.ParseStatus(string(body.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddTrackingEventCommand(caller.Principal(), id, body.Location, body.Description, status)
	if err != nil {
		return respondError(ctx, err)
	}

	event, err := s.handlers.AddTrackingEvent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toTrackingEvent(event))
}

func respondInvalidBody(ctx echo.Context) error {
	return respondError(ctx, errs.NewValueIsInvalidError("request body"))
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
