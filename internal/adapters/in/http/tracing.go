package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "lastmile/internal/adapters/in/http"

// Trace starts a server span per request, continuing a W3C trace context
// sent by the client. Errors are rendered inside the span so the recorded
// status code is final.
func Trace() echo.MiddlewareFunc {
	tracer := otel.Tracer(tracerName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route := ctx.Path()

			spanCtx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			spanCtx, span := tracer.Start(spanCtx, req.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(req.Method),
					semconv.HTTPRoute(route),
					semconv.URLPath(req.URL.Path),
				),
			)
			defer span.End()

			ctx.SetRequest(req.WithContext(spanCtx))

			if err := next(ctx); err != nil {
				span.RecordError(err)
				ctx.Error(err)
			}

			status := ctx.Response().Status
			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			if id := ctx.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				span.SetAttributes(attribute.String("http.request_id", id))
			}
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			return nil
		}
	}
}
