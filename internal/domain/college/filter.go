// Package college holds the admission cutoff entities served by the predictor:
// the prediction filter, aggregated college records and lookup payloads.
package college

import (
	"math"
	"strings"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
)

// Filter is a prediction request. MinCutoff, MaxCutoff and Category are
// mandatory; empty Branch or District mean "no filter" for that dimension.
type Filter struct {
	MinCutoff float64
	MaxCutoff float64
	Category  string
	Branch    string
	District  string
}

// Normalize returns a copy with surrounding whitespace stripped from every
// text field.
func (f Filter) Normalize() Filter {
	f.Category = strings.TrimSpace(f.Category)
	f.Branch = strings.TrimSpace(f.Branch)
	f.District = strings.TrimSpace(f.District)
	return f
}

// Validate checks business rules for the filter.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. A range with MinCutoff above MaxCutoff is valid and
// simply matches nothing.
func (f Filter) Validate() error {
	if strings.TrimSpace(f.Category) == "" {
		return domain.MissingFields("category")
	}

	fields := make(map[string]string)
	if !finite(f.MinCutoff) {
		fields["min_cutoff"] = "must be a finite number"
	}
	if !finite(f.MaxCutoff) {
		fields["max_cutoff"] = "must be a finite number"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// HasBranch reports whether the branch substring filter applies.
func (f Filter) HasBranch() bool { return strings.TrimSpace(f.Branch) != "" }

// HasDistrict reports whether the district substring filter applies.
func (f Filter) HasDistrict() bool { return strings.TrimSpace(f.District) != "" }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
