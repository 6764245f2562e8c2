package college

import (
	"errors"
	"math"
	"testing"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestFilter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    Filter
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid filter",
			filter: Filter{MinCutoff: 100, MaxCutoff: 200, Category: "OC"},
		},
		{
			name:   "inverted range is accepted",
			filter: Filter{MinCutoff: 200, MaxCutoff: 100, Category: "OC"},
		},
		{
			name:   "zero cutoffs are accepted",
			filter: Filter{Category: "BC"},
		},
		{
			name:      "empty category",
			filter:    Filter{MinCutoff: 1, MaxCutoff: 2},
			wantErr:   true,
			wantField: "category",
		},
		{
			name:      "blank category",
			filter:    Filter{MinCutoff: 1, MaxCutoff: 2, Category: "  \t"},
			wantErr:   true,
			wantField: "category",
		},
		{
			name:      "NaN minimum",
			filter:    Filter{MinCutoff: math.NaN(), MaxCutoff: 2, Category: "OC"},
			wantErr:   true,
			wantField: "min_cutoff",
		},
		{
			name:      "infinite maximum",
			filter:    Filter{MinCutoff: 1, MaxCutoff: math.Inf(1), Category: "OC"},
			wantErr:   true,
			wantField: "max_cutoff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.filter.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestFilter_Normalize(t *testing.T) {
	t.Parallel()

	f := Filter{MinCutoff: 1, MaxCutoff: 2, Category: " OC ", Branch: "\tcomp ", District: "  "}.Normalize()

	if f.Category != "OC" {
		t.Errorf("Category = %q, want %q", f.Category, "OC")
	}
	if f.Branch != "comp" {
		t.Errorf("Branch = %q, want %q", f.Branch, "comp")
	}
	if f.HasDistrict() {
		t.Errorf("HasDistrict() = true for blank district")
	}
	if !f.HasBranch() {
		t.Errorf("HasBranch() = false for %q", f.Branch)
	}
}
