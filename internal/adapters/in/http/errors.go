package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/generated/servers"
	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errMissingCredentials = fmt.Errorf("%w: missing bearer token", errs.ErrUnauthenticated)

// classify maps a use case error to a status code and the message shown to
// the client. Unknown errors are internal.
func classify(err error) (int, string) {
	var (
		transition *shipment.StatusTransitionError
		denied     *errs.AccessDeniedError
		exists     *errs.AlreadyExistsError
		notFound   *errs.ObjectNotFoundError
	)

	switch {
	case errors.As(err, &transition):
		return http.StatusBadRequest, fmt.Sprintf(
			"Invalid status transition from '%s' to '%s'. Valid next status: %s",
			transition.Current, transition.Requested, strings.Join(transition.ValidNextNames(), ", "),
		)
	case errors.Is(err, user.ErrUserIsDisabled):
		return http.StatusBadRequest, "Inactive user"
	case errors.As(err, &denied):
		return http.StatusForbidden, "Access denied. Required roles: " + strings.Join(denied.RequiredRoles, ", ")
	case errors.As(err, &exists):
		return http.StatusBadRequest, fmt.Sprintf("%s with this %s already exists", exists.Entity, exists.Field)
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s with id %v not found", notFound.ParamName, notFound.ID)
	case errors.Is(err, errMissingCredentials):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect username or password"
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// respondError writes the mapped error body. Internal errors are returned to
// echo so the error handler logs them.
func respondError(ctx echo.Context, err error) error {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		return err
	}
	return writeError(ctx, status, message)
}

func writeError(ctx echo.Context, status int, message string) error {
	if status == http.StatusUnauthorized {
		ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	if ctx.Request().Method == http.MethodHead {
		return ctx.NoContent(status)
	}
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// NewHTTPErrorHandler renders every error that reaches echo as an Error body.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var status int
		var message string
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			status, message = classify(err)
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err,
			)
		}

		if writeErr := writeError(ctx, status, message); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
