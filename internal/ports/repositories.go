package ports

import (
	"context"

	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
	"github.com/jsamuelsen11/college-predictor/internal/domain/registration"
)

// CollegeRepository defines the repository port for college cutoff data.
// Implemented by the database adapter; called by the application layer.
// Every method acquires its own connection and releases it before returning.
// Driver failures are translated to domain sentinels: unreachable databases
// surface as domain.ErrUnavailable.
type CollegeRepository interface {
	// PredictColleges runs the grouped cutoff query for a validated filter.
	PredictColleges(ctx context.Context, filter college.Filter) ([]college.Record, error)

	// DistinctCategories returns the distinct non-null categories, sorted.
	DistinctCategories(ctx context.Context) ([]string, error)

	// DistinctBranches returns the distinct non-null branch names, sorted.
	DistinctBranches(ctx context.Context) ([]string, error)

	// DistinctDistricts returns the distinct non-null college districts, sorted.
	DistinctDistricts(ctx context.Context) ([]string, error)

	// DistinctCollegeCodes returns the distinct non-null college codes, sorted.
	DistinctCollegeCodes(ctx context.Context) ([]string, error)

	// ListBranchRows returns up to limit rows of the branch table.
	ListBranchRows(ctx context.Context, limit int) ([]college.Row, error)

	// ListLocations returns every row of the college location table.
	ListLocations(ctx context.Context) ([]college.Row, error)
}

// UserRepository defines the repository port for registered users.
// Implemented by the database adapter; called by the application layer.
type UserRepository interface {
	// CreateUser inserts a user.
	// Returns domain.ErrConflict on a unique constraint violation.
	CreateUser(ctx context.Context, user *registration.User) error
}
