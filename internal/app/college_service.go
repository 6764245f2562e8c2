package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/college-predictor/internal/app/fanout"
	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// Compile-time check that CollegeService implements ports.CollegeService.
var _ ports.CollegeService = (*CollegeService)(nil)

// sampleBranchLimit is how many branch rows SampleBranches returns.
const sampleBranchLimit = 10

// filterLookupWorkers bounds the concurrent lookups behind Filters.
const filterLookupWorkers = 2

// CollegeService implements ports.CollegeService on top of the CollegeRepository
// port. It validates prediction filters, logs failures with their context and
// fans out independent lookups; SQL and row mapping stay in the repository.
type CollegeService struct {
	repo   ports.CollegeRepository
	logger *slog.Logger
}

// NewCollegeService creates a CollegeService. A nil logger discards output.
func NewCollegeService(repo ports.CollegeRepository, logger *slog.Logger) *CollegeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CollegeService{
		repo:   repo,
		logger: logger,
	}
}

// PredictColleges validates f and returns the grouped colleges for it.
func (s *CollegeService) PredictColleges(ctx context.Context, f college.Filter) ([]college.Record, error) {
	f = f.Normalize()

	s.logger.InfoContext(ctx, "predicting colleges",
		slog.Float64("min_cutoff", f.MinCutoff),
		slog.Float64("max_cutoff", f.MaxCutoff),
		slog.String("category", f.Category),
		slog.String("branch", f.Branch),
		slog.String("district", f.District),
	)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	records, err := s.repo.PredictColleges(ctx, f)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to predict colleges",
			slog.String("operation", "PredictColleges"),
			slog.Float64("min_cutoff", f.MinCutoff),
			slog.Float64("max_cutoff", f.MaxCutoff),
			slog.String("category", f.Category),
			slog.String("branch", f.Branch),
			slog.String("district", f.District),
			slog.Any("error", err),
		)
		return nil, err
	}

	if records == nil {
		records = []college.Record{}
	}
	return records, nil
}

// Categories returns the distinct, sorted category names.
func (s *CollegeService) Categories(ctx context.Context) ([]string, error) {
	return s.lookup(ctx, "Categories", s.repo.DistinctCategories)
}

// Districts returns the distinct, sorted district names.
func (s *CollegeService) Districts(ctx context.Context) ([]string, error) {
	return s.lookup(ctx, "Districts", s.repo.DistinctDistricts)
}

// Branches returns the distinct, sorted, non-null branch names.
func (s *CollegeService) Branches(ctx context.Context) ([]string, error) {
	return s.lookup(ctx, "Branches", s.repo.DistinctBranches)
}

// SampleBranches returns the first rows of the branch table.
func (s *CollegeService) SampleBranches(ctx context.Context) ([]college.Row, error) {
	s.logger.InfoContext(ctx, "listing sample branches", slog.Int("limit", sampleBranchLimit))

	rows, err := s.repo.ListBranchRows(ctx, sampleBranchLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list sample branches",
			slog.String("operation", "SampleBranches"),
			slog.Int("limit", sampleBranchLimit),
			slog.Any("error", err),
		)
		return nil, err
	}
	return nonNilRows(rows), nil
}

// AllColleges returns every college location row.
func (s *CollegeService) AllColleges(ctx context.Context) ([]college.Row, error) {
	s.logger.InfoContext(ctx, "listing college locations")

	rows, err := s.repo.ListLocations(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list college locations",
			slog.String("operation", "AllColleges"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return nonNilRows(rows), nil
}

// Filters returns the district and college code choices. The two lookups run
// concurrently, each on its own connection. If either fails, the first
// failure in lookup order is returned.
func (s *CollegeService) Filters(ctx context.Context) (*college.Filters, error) {
	s.logger.InfoContext(ctx, "loading filter choices")

	results := fanout.All(ctx, filterLookupWorkers,
		s.repo.DistinctDistricts,
		s.repo.DistinctCollegeCodes,
	)

	if err := fanout.FirstError(results); err != nil {
		s.logger.ErrorContext(ctx, "failed to load filter choices",
			slog.String("operation", "Filters"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &college.Filters{
		Districts:    nonNilStrings(results[0].Value),
		CollegeCodes: nonNilStrings(results[1].Value),
	}, nil
}

func (s *CollegeService) lookup(
	ctx context.Context,
	op string,
	fn func(context.Context) ([]string, error),
) ([]string, error) {
	s.logger.InfoContext(ctx, "listing lookup values", slog.String("lookup", op))

	values, err := fn(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list lookup values",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return nil, err
	}
	return nonNilStrings(values), nil
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilRows(v []college.Row) []college.Row {
	if v == nil {
		return []college.Row{}
	}
	return v
}
