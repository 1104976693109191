package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lastmile/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	callerKey        = "caller"
	bearerSchemeName = "bearerAuth"
)

// PrincipalResolver turns a bearer token into the calling user.
type PrincipalResolver interface {
	Handle(ctx context.Context, query queries.ResolvePrincipalQuery) (queries.ResolvePrincipalResponse, error)
}

// Authenticate resolves the caller of every operation the contract secures
// with bearerAuth and stores it in the echo context. Routes outside the
// contract pass through.
func Authenticate(doc *openapi3.T, resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			route, _ := findRoute(doc, ctx)
			if route == nil || !requiresBearer(doc, route.Operation) {
				return next(ctx)
			}

			token, ok := bearerToken(ctx.Request())
			if !ok {
				return respondError(ctx, errMissingCredentials)
			}

			query, err := queries.NewResolvePrincipalQuery(token)
			if err != nil {
				return respondError(ctx, err)
			}

			caller, err := resolver.Handle(ctx.Request().Context(), query)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(callerKey, caller)
			return next(ctx)
		}
	}
}

func callerFrom(ctx echo.Context) (queries.ResolvePrincipalResponse, error) {
	caller, ok := ctx.Get(callerKey).(queries.ResolvePrincipalResponse)
	if !ok {
		return queries.ResolvePrincipalResponse{}, errMissingCredentials
	}
	return caller, nil
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func requiresBearer(doc *openapi3.T, operation *openapi3.Operation) bool {
	requirements := operation.Security
	if requirements == nil {
		requirements = &doc.Security
	}
	for _, requirement := range *requirements {
		if _, ok := requirement[bearerSchemeName]; ok {
			return true
		}
	}
	return false
}

// ValidateRequests checks parameters and bodies against the contract and
// answers 422 on the first violation. Security is handled by Authenticate.
func ValidateRequests(doc *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			route, pathParams := findRoute(doc, ctx)
			if route == nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    ctx.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(ctx.Request().Context(), input); err != nil {
				return writeError(ctx, http.StatusUnprocessableEntity, describeValidationError(err))
			}

			return next(ctx)
		}
	}
}

// findRoute matches the echo route of ctx to its operation in doc.
func findRoute(doc *openapi3.T, ctx echo.Context) (*routers.Route, map[string]string) {
	path := toOpenAPIPath(ctx.Path())
	item := doc.Paths.Value(path)
	if item == nil {
		return nil, nil
	}

	method := ctx.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, nil
	}

	names := ctx.ParamNames()
	values := ctx.ParamValues()
	pathParams := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			pathParams[name] = values[i]
		}
	}

	return &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, pathParams
}

// toOpenAPIPath rewrites /shipment/:id as /shipment/{id}.
func toOpenAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

func describeValidationError(err error) string {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return err.Error()
	}

	reason := requestErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(requestErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
			reason = field + ": " + reason
		}
	} else if reason == "" && requestErr.Err != nil {
		reason = requestErr.Err.Error()
	}

	switch {
	case requestErr.Parameter != nil:
		return fmt.Sprintf("parameter %q in %s: %s", requestErr.Parameter.Name, requestErr.Parameter.In, reason)
	case requestErr.RequestBody != nil:
		return "request body: " + reason
	default:
		return reason
	}
}

// RequestLogger writes one slog record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
