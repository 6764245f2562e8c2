package sqlbuild

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Select describes a single-table SELECT. Columns are trusted expressions
// written by the caller (aggregates and aliases are allowed); everything else
// that names a column is validated as an identifier.
type Select struct {
	Distinct bool
	Columns  []string
	From     string
	Where    []Condition
	GroupBy  []string
	OrderBy  []string
	Limit    int
}

// And conjoins more predicates onto the WHERE clause.
func (s *Select) And(conds ...Condition) *Select {
	s.Where = append(s.Where, conds...)
	return s
}

// Build compiles the statement for the given sqlx bind type (sqlx.QUESTION,
// sqlx.DOLLAR, ...). Arguments are returned in placeholder order.
func (s *Select) Build(bindType int) (string, []any, error) {
	if len(s.Columns) == 0 {
		return "", nil, errors.New("sqlbuild: select has no columns")
	}
	if s.From == "" {
		return "", nil, errors.New("sqlbuild: select has no table")
	}
	if err := checkIdent(s.From); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if s.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.From)

	var args []any
	if len(s.Where) > 0 {
		preds := make([]string, 0, len(s.Where))
		for _, c := range s.Where {
			p, err := c.compile()
			if err != nil {
				return "", nil, err
			}
			preds = append(preds, p)
			args = append(args, c.Args...)
		}
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(preds, " AND "))
	}

	if err := writeIdentList(&b, " GROUP BY ", s.GroupBy); err != nil {
		return "", nil, err
	}
	if err := writeIdentList(&b, " ORDER BY ", s.OrderBy); err != nil {
		return "", nil, err
	}

	if s.Limit < 0 {
		return "", nil, fmt.Errorf("sqlbuild: negative limit %d", s.Limit)
	}
	if s.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", s.Limit)
	}

	return sqlx.Rebind(bindType, b.String()), args, nil
}

// Insert describes a single-row INSERT.
type Insert struct {
	Table   string
	Columns []string
	Values  []any
}

// Build compiles the statement for the given sqlx bind type.
func (i *Insert) Build(bindType int) (string, []any, error) {
	if i.Table == "" {
		return "", nil, errors.New("sqlbuild: insert has no table")
	}
	if err := checkIdent(i.Table); err != nil {
		return "", nil, err
	}
	if len(i.Columns) == 0 {
		return "", nil, errors.New("sqlbuild: insert has no columns")
	}
	if len(i.Columns) != len(i.Values) {
		return "", nil, fmt.Errorf("sqlbuild: %d columns but %d values", len(i.Columns), len(i.Values))
	}
	for _, c := range i.Columns {
		if err := checkIdent(c); err != nil {
			return "", nil, err
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(i.Columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		i.Table, strings.Join(i.Columns, ", "), placeholders)

	args := make([]any, len(i.Values))
	copy(args, i.Values)
	return sqlx.Rebind(bindType, query), args, nil
}

func writeIdentList(b *strings.Builder, keyword string, idents []string) error {
	if len(idents) == 0 {
		return nil
	}
	for _, id := range idents {
		if err := checkIdent(id); err != nil {
			return err
		}
	}
	b.WriteString(keyword)
	b.WriteString(strings.Join(idents, ", "))
	return nil
}
