// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The API runs requests through:
//
//	Recovery → RequestID → CorrelationID → CORS → OpenTelemetry → Logging → Handler
//
// There is no per-request timeout stage; database calls are bounded by the
// pool and the circuit breaker instead.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/college-predictor/internal/platform/config"
	"github.com/jsamuelsen11/college-predictor/internal/platform/telemetry"
)

// Pipeline returns the API's middleware in outermost-first order, ready to
// be passed to Chain or the router. metrics may be nil.
func Pipeline(logger *slog.Logger, metrics *telemetry.Metrics, cors config.CORSConfig) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		CORS(cors),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}

// Chain composes middleware so the first argument is outermost:
// Chain(Recovery, RequestID)(h) equals Recovery(RequestID(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
