// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/college-predictor/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	collegeHandler *handlers.CollegeHandler,
	registrationHandler *handlers.RegistrationHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Service status.
	r.Get("/", healthHandler.Home)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Prediction and lookups.
	r.Post("/predict", collegeHandler.Predict)
	r.Get("/colleges", collegeHandler.SampleBranches)
	r.Get("/categories", collegeHandler.Categories)
	r.Get("/districts", collegeHandler.Districts)
	r.Get("/branches", collegeHandler.Branches)
	r.Get("/all-colleges", collegeHandler.AllColleges)
	r.Get("/filters", collegeHandler.Filters)

	// Registration form.
	r.Post("/register", registrationHandler.Register)

	return r
}
