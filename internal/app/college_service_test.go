package app

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
	"github.com/jsamuelsen11/college-predictor/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validFilter() college.Filter {
	return college.Filter{
		MinCutoff: 150,
		MaxCutoff: 200,
		Category:  "OC",
		Branch:    "COMPUTER",
		District:  "",
	}
}

// --- NewCollegeService ---

func TestNewCollegeService_NilLogger(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockCollegeRepository(t)

	svc := NewCollegeService(repo, nil)
	if svc.logger == nil {
		t.Fatal("NewCollegeService(nil logger) should create a no-op logger, got nil")
	}
}

// --- PredictColleges ---

func TestCollegeService_PredictColleges(t *testing.T) {
	t.Parallel()

	t.Run("returns records on success", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		want := []college.Record{
			{
				CollegeName:   "Anna University",
				CollegeCode:   "1",
				Branch:        "COMPUTER SCIENCE AND ENGINEERING",
				District:      "Chennai",
				Category:      "OC",
				LowestCutoff:  195.5,
				HighestCutoff: 199.0,
				Count:         3,
			},
		}
		repo.EXPECT().PredictColleges(mock.Anything, validFilter()).Return(want, nil)

		got, err := svc.PredictColleges(context.Background(), validFilter())
		if err != nil {
			t.Fatalf("PredictColleges() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Fatalf("PredictColleges() len = %d, want 1", len(got))
		}
		if got[0].Count != 3 {
			t.Errorf("PredictColleges()[0].Count = %d, want 3", got[0].Count)
		}
	})

	t.Run("passes trimmed filter to repository", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		in := college.Filter{MinCutoff: 100, MaxCutoff: 120, Category: "  BC ", Branch: " civil", District: "Salem  "}
		want := college.Filter{MinCutoff: 100, MaxCutoff: 120, Category: "BC", Branch: "civil", District: "Salem"}
		repo.EXPECT().PredictColleges(mock.Anything, want).Return(nil, nil)

		if _, err := svc.PredictColleges(context.Background(), in); err != nil {
			t.Fatalf("PredictColleges() error = %v, want nil", err)
		}
	})

	t.Run("returns empty non-nil slice when nothing matches", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		repo.EXPECT().PredictColleges(mock.Anything, mock.Anything).Return(nil, nil)

		got, err := svc.PredictColleges(context.Background(), validFilter())
		if err != nil {
			t.Fatalf("PredictColleges() error = %v, want nil", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("PredictColleges() = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("rejects blank category without querying", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		f := validFilter()
		f.Category = "   "

		_, err := svc.PredictColleges(context.Background(), f)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("PredictColleges() error = %v, want ErrValidation", err)
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("PredictColleges() error type = %T, want *domain.ValidationError", err)
		}
		if verr.Message != "Missing required fields: category" {
			t.Errorf("ValidationError.Message = %q", verr.Message)
		}
	})

	t.Run("rejects non-finite cutoff without querying", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		f := validFilter()
		f.MaxCutoff = math.Inf(1)

		_, err := svc.PredictColleges(context.Background(), f)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("PredictColleges() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		repo.EXPECT().PredictColleges(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.PredictColleges(context.Background(), validFilter())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("PredictColleges() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- Lookups ---

func TestCollegeService_Lookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect func(repo *mocks.MockCollegeRepository, values []string, err error)
		call   func(svc *CollegeService) ([]string, error)
	}{
		{
			name: "Categories",
			expect: func(repo *mocks.MockCollegeRepository, values []string, err error) {
				repo.EXPECT().DistinctCategories(mock.Anything).Return(values, err)
			},
			call: func(svc *CollegeService) ([]string, error) { return svc.Categories(context.Background()) },
		},
		{
			name: "Districts",
			expect: func(repo *mocks.MockCollegeRepository, values []string, err error) {
				repo.EXPECT().DistinctDistricts(mock.Anything).Return(values, err)
			},
			call: func(svc *CollegeService) ([]string, error) { return svc.Districts(context.Background()) },
		},
		{
			name: "Branches",
			expect: func(repo *mocks.MockCollegeRepository, values []string, err error) {
				repo.EXPECT().DistinctBranches(mock.Anything).Return(values, err)
			},
			call: func(svc *CollegeService) ([]string, error) { return svc.Branches(context.Background()) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" returns values", func(t *testing.T) {
			t.Parallel()
			repo := mocks.NewMockCollegeRepository(t)
			svc := NewCollegeService(repo, discardLogger())

			tt.expect(repo, []string{"A", "B"}, nil)

			got, err := tt.call(svc)
			if err != nil {
				t.Fatalf("%s() error = %v, want nil", tt.name, err)
			}
			if len(got) != 2 || got[0] != "A" || got[1] != "B" {
				t.Errorf("%s() = %v, want [A B]", tt.name, got)
			}
		})

		t.Run(tt.name+" returns empty non-nil slice", func(t *testing.T) {
			t.Parallel()
			repo := mocks.NewMockCollegeRepository(t)
			svc := NewCollegeService(repo, discardLogger())

			tt.expect(repo, nil, nil)

			got, err := tt.call(svc)
			if err != nil {
				t.Fatalf("%s() error = %v, want nil", tt.name, err)
			}
			if got == nil {
				t.Errorf("%s() = nil, want empty slice", tt.name)
			}
		})

		t.Run(tt.name+" returns repository error", func(t *testing.T) {
			t.Parallel()
			repo := mocks.NewMockCollegeRepository(t)
			svc := NewCollegeService(repo, discardLogger())

			tt.expect(repo, nil, domain.ErrUnavailable)

			_, err := tt.call(svc)
			if !errors.Is(err, domain.ErrUnavailable) {
				t.Errorf("%s() error = %v, want ErrUnavailable", tt.name, err)
			}
		})
	}
}

// --- SampleBranches ---

func TestCollegeService_SampleBranches(t *testing.T) {
	t.Parallel()

	t.Run("requests ten rows", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		rows := []college.Row{{"college_code": "1", "Branch": "CIVIL"}}
		repo.EXPECT().ListBranchRows(mock.Anything, 10).Return(rows, nil)

		got, err := svc.SampleBranches(context.Background())
		if err != nil {
			t.Fatalf("SampleBranches() error = %v, want nil", err)
		}
		if len(got) != 1 || got[0]["Branch"] != "CIVIL" {
			t.Errorf("SampleBranches() = %v", got)
		}
	})

	t.Run("returns repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		repo.EXPECT().ListBranchRows(mock.Anything, 10).Return(nil, domain.ErrUnavailable)

		_, err := svc.SampleBranches(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("SampleBranches() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- AllColleges ---

func TestCollegeService_AllColleges(t *testing.T) {
	t.Parallel()

	t.Run("returns empty non-nil slice", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		repo.EXPECT().ListLocations(mock.Anything).Return(nil, nil)

		got, err := svc.AllColleges(context.Background())
		if err != nil {
			t.Fatalf("AllColleges() error = %v, want nil", err)
		}
		if got == nil {
			t.Error("AllColleges() = nil, want empty slice")
		}
	})

	t.Run("returns repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		boom := errors.New("boom")
		repo.EXPECT().ListLocations(mock.Anything).Return(nil, boom)

		_, err := svc.AllColleges(context.Background())
		if !errors.Is(err, boom) {
			t.Errorf("AllColleges() error = %v, want %v", err, boom)
		}
	})
}

// --- Filters ---

func TestCollegeService_Filters(t *testing.T) {
	t.Parallel()

	t.Run("combines districts and college codes", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		repo.EXPECT().DistinctDistricts(mock.Anything).Return([]string{"Chennai", "Salem"}, nil)
		repo.EXPECT().DistinctCollegeCodes(mock.Anything).Return([]string{"1", "2", "3"}, nil)

		got, err := svc.Filters(context.Background())
		if err != nil {
			t.Fatalf("Filters() error = %v, want nil", err)
		}
		if len(got.Districts) != 2 {
			t.Errorf("Filters().Districts len = %d, want 2", len(got.Districts))
		}
		if len(got.CollegeCodes) != 3 {
			t.Errorf("Filters().CollegeCodes len = %d, want 3", len(got.CollegeCodes))
		}
	})

	t.Run("runs lookups concurrently", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		var inFlight, peak atomic.Int32
		started := make(chan struct{}, 2)
		release := make(chan struct{})
		track := func(context.Context) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			started <- struct{}{}
			<-release
			inFlight.Add(-1)
		}
		repo.EXPECT().DistinctDistricts(mock.Anything).Run(track).Return([]string{"Chennai"}, nil)
		repo.EXPECT().DistinctCollegeCodes(mock.Anything).Run(track).Return([]string{"1"}, nil)

		done := make(chan error, 1)
		go func() {
			_, err := svc.Filters(context.Background())
			done <- err
		}()

		<-started
		<-started
		close(release)

		if err := <-done; err != nil {
			t.Fatalf("Filters() error = %v, want nil", err)
		}
		if peak.Load() != 2 {
			t.Errorf("peak concurrent lookups = %d, want 2", peak.Load())
		}
	})

	t.Run("returns error when districts lookup fails", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		repo.EXPECT().DistinctDistricts(mock.Anything).Return(nil, domain.ErrUnavailable)
		repo.EXPECT().DistinctCollegeCodes(mock.Anything).Return([]string{"1"}, nil)

		got, err := svc.Filters(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Filters() error = %v, want ErrUnavailable", err)
		}
		if got != nil {
			t.Errorf("Filters() = %v, want nil on error", got)
		}
	})

	t.Run("returns error when college codes lookup fails", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockCollegeRepository(t)
		svc := NewCollegeService(repo, discardLogger())

		boom := errors.New("boom")
		repo.EXPECT().DistinctDistricts(mock.Anything).Return([]string{"Chennai"}, nil)
		repo.EXPECT().DistinctCollegeCodes(mock.Anything).Return(nil, boom)

		_, err := svc.Filters(context.Background())
		if !errors.Is(err, boom) {
			t.Errorf("Filters() error = %v, want %v", err, boom)
		}
	})
}
