package ports

import (
	"context"

	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
	"github.com/jsamuelsen11/college-predictor/internal/domain/registration"
)

// CollegeService defines the service port for college prediction and lookups.
// Implemented by the application layer; called by inbound adapters (handlers).
type CollegeService interface {
	// PredictColleges returns the grouped colleges whose cutoffs fall inside
	// the filter range for the filter's category. An empty result is an empty
	// slice, never an error.
	// Returns domain.ErrValidation if the filter fails validation.
	// Returns domain.ErrUnavailable if the database cannot be reached.
	PredictColleges(ctx context.Context, filter college.Filter) ([]college.Record, error)

	// Categories returns the distinct, sorted category names.
	Categories(ctx context.Context) ([]string, error)

	// Districts returns the distinct, sorted district names of known college locations.
	Districts(ctx context.Context) ([]string, error)

	// Branches returns the distinct, sorted, non-null branch names.
	Branches(ctx context.Context) ([]string, error)

	// SampleBranches returns the first rows of the branch table verbatim.
	SampleBranches(ctx context.Context) ([]college.Row, error)

	// AllColleges returns every college location row verbatim.
	AllColleges(ctx context.Context) ([]college.Row, error)

	// Filters returns the district and college code choices. The two lookups
	// run concurrently; the first failure is returned.
	Filters(ctx context.Context) (*college.Filters, error)
}

// RegistrationService defines the service port for the registration form.
// Implemented by the application layer; called by inbound adapters (handlers).
type RegistrationService interface {
	// Register stores a new user.
	// Returns domain.ErrValidation if the user fails validation.
	// Returns domain.ErrConflict if the user is already registered.
	Register(ctx context.Context, user *registration.User) error
}
