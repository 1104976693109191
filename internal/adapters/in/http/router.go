package http

import (
	"log/slog"
	"net/http"

	"lastmile/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving the API, the documentation and
// the middleware stack: request ids, access log, panic recovery, CORS,
// tracing, authentication and contract validation, in that order.
//
// Example:
//
//	e, err := http.NewRouter(server, resolver, logger, []string{"http://localhost:3000"})
//	if err != nil {
//	    return err
//	}
//	err = e.Start(":8000")
func NewRouter(server *Server, resolver PrincipalResolver, logger *slog.Logger, corsOrigins []string) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderOrigin},
		AllowCredentials: true,
	}))
	e.Use(Trace())
	e.Use(Authenticate(doc, resolver))
	e.Use(ValidateRequests(doc))

	servers.RegisterHandlers(e, server)
	if err = registerDocs(e, doc); err != nil {
		return nil, err
	}

	return e, nil
}
