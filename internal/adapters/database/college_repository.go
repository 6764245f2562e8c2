package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
	"github.com/jsamuelsen11/college-predictor/internal/platform/sqlbuild"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// Compile-time check that CollegeRepository implements ports.CollegeRepository.
var _ ports.CollegeRepository = (*CollegeRepository)(nil)

// Tables and columns read by the college repository.
const (
	tableColleges = "colleges"
	tableLocation = "college_location"
	tableBranch   = "Branch"

	colCollegeName = "college_name"
	colCollegeCode = "college_code"
	colBranchName  = "branchname"
	colDistrict    = "district"
	colCommunity   = "community"
	colCutoff      = "average_cutoff"

	colLocationDistrict = "college_district"
	colLocationCode     = "code"
)

// predictGroup is both the GROUP BY and the ORDER BY of the prediction query,
// which keeps repeated requests byte-identical.
var predictGroup = []string{colCollegeName, colCollegeCode, colBranchName, colDistrict, colCommunity}

// CollegeRepository reads admission cutoff data.
type CollegeRepository struct {
	store *Store
}

// NewCollegeRepository creates a CollegeRepository backed by store.
func NewCollegeRepository(store *Store) *CollegeRepository {
	return &CollegeRepository{store: store}
}

// recordRow is one grouped row of the prediction query.
type recordRow struct {
	CollegeName  sql.NullString  `db:"college_name"`
	CollegeCode  sql.NullString  `db:"college_code"`
	Branch       sql.NullString  `db:"branch"`
	District     sql.NullString  `db:"district"`
	Category     sql.NullString  `db:"category"`
	MinCutoff    sql.NullFloat64 `db:"min_cutoff"`
	MaxCutoff    sql.NullFloat64 `db:"max_cutoff"`
	CollegeCount int64           `db:"college_count"`
}

// PredictQuery builds the grouped cutoff query for f. The base predicates are
// the inclusive cutoff range and a case-insensitive category match; non-empty
// branch and district add case-insensitive substring predicates.
func PredictQuery(f college.Filter) *sqlbuild.Select {
	sel := &sqlbuild.Select{
		Columns: []string{
			colCollegeName,
			colCollegeCode,
			colBranchName + " AS branch",
			colDistrict,
			colCommunity + " AS category",
			"MIN(" + colCutoff + ") AS min_cutoff",
			"MAX(" + colCutoff + ") AS max_cutoff",
			"COUNT(*) AS college_count",
		},
		From:    tableColleges,
		GroupBy: predictGroup,
		OrderBy: predictGroup,
	}

	sel.And(
		sqlbuild.Between(colCutoff, f.MinCutoff, f.MaxCutoff),
		sqlbuild.EqualFold(colCommunity, f.Category),
	)
	if f.HasBranch() {
		sel.And(sqlbuild.ContainsFold(colBranchName, f.Branch))
	}
	if f.HasDistrict() {
		sel.And(sqlbuild.ContainsFold(colDistrict, f.District))
	}
	return sel
}

// PredictColleges runs the grouped cutoff query for f.
func (r *CollegeRepository) PredictColleges(ctx context.Context, f college.Filter) ([]college.Record, error) {
	query, args, err := PredictQuery(f.Normalize()).Build(r.store.bindType)
	if err != nil {
		return nil, fmt.Errorf("building predict query: %w", err)
	}

	var rows []recordRow
	err = r.store.withConn(ctx, "PredictColleges", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	records := make([]college.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, college.Record{
			CollegeName:   row.CollegeName.String,
			CollegeCode:   row.CollegeCode.String,
			Branch:        row.Branch.String,
			District:      row.District.String,
			Category:      row.Category.String,
			LowestCutoff:  row.MinCutoff.Float64,
			HighestCutoff: row.MaxCutoff.Float64,
			Count:         row.CollegeCount,
		})
	}
	return records, nil
}

// DistinctCategories returns the distinct non-null categories, sorted.
func (r *CollegeRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "DistinctCategories", tableColleges, colCommunity)
}

// DistinctBranches returns the distinct non-null branch names, sorted.
func (r *CollegeRepository) DistinctBranches(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "DistinctBranches", tableColleges, colBranchName)
}

// DistinctDistricts returns the distinct non-null college districts, sorted.
func (r *CollegeRepository) DistinctDistricts(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "DistinctDistricts", tableLocation, colLocationDistrict)
}

// DistinctCollegeCodes returns the distinct non-null college codes, sorted.
func (r *CollegeRepository) DistinctCollegeCodes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "DistinctCollegeCodes", tableLocation, colLocationCode)
}

// ListBranchRows returns up to limit rows of the branch table.
func (r *CollegeRepository) ListBranchRows(ctx context.Context, limit int) ([]college.Row, error) {
	sel := &sqlbuild.Select{Columns: []string{"*"}, From: tableBranch, Limit: limit}
	return r.dump(ctx, "ListBranchRows", sel)
}

// ListLocations returns every row of the college location table.
func (r *CollegeRepository) ListLocations(ctx context.Context) ([]college.Row, error) {
	sel := &sqlbuild.Select{Columns: []string{"*"}, From: tableLocation}
	return r.dump(ctx, "ListLocations", sel)
}

func (r *CollegeRepository) distinct(ctx context.Context, op, table, column string) ([]string, error) {
	sel := &sqlbuild.Select{
		Distinct: true,
		Columns:  []string{column},
		From:     table,
		Where:    []sqlbuild.Condition{sqlbuild.NotNull(column)},
		OrderBy:  []string{column},
	}
	query, args, err := sel.Build(r.store.bindType)
	if err != nil {
		return nil, fmt.Errorf("building %s query: %w", op, err)
	}

	values := []string{}
	err = r.store.withConn(ctx, op, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &values, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *CollegeRepository) dump(ctx context.Context, op string, sel *sqlbuild.Select) ([]college.Row, error) {
	query, args, err := sel.Build(r.store.bindType)
	if err != nil {
		return nil, fmt.Errorf("building %s query: %w", op, err)
	}

	var out []college.Row
	err = r.store.withConn(ctx, op, func(ctx context.Context, conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out, err = scanRows(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
