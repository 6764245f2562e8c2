// Package sqlbuild compiles structured SELECT and INSERT statements into SQL
// text plus an ordered argument list. Identifiers are checked against a strict
// pattern and every value travels as a bound parameter; nothing supplied at
// runtime is spliced into the statement text.
package sqlbuild

import (
	"fmt"
	"regexp"
	"strings"
)

// Op is a predicate operator.
type Op int

const (
	// OpEq is column = ?.
	OpEq Op = iota + 1
	// OpEqualFold is a case-insensitive equality.
	OpEqualFold
	// OpContainsFold is a case-insensitive literal substring match.
	OpContainsFold
	// OpBetween is an inclusive range.
	OpBetween
	// OpNotNull is column IS NOT NULL.
	OpNotNull
)

// LikeEscape is the escape character used in LIKE patterns. Backslash is
// avoided because MySQL also treats it as a string-literal escape.
const LikeEscape = "!"

var (
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

	likeEscaper = strings.NewReplacer(
		LikeEscape, LikeEscape+LikeEscape,
		"%", LikeEscape+"%",
		"_", LikeEscape+"_",
	)
)

// Condition is a single predicate over one column.
type Condition struct {
	Column string
	Op     Op
	Args   []any
}

// Eq matches rows where column equals v.
func Eq(column string, v any) Condition {
	return Condition{Column: column, Op: OpEq, Args: []any{v}}
}

// EqualFold matches rows where column equals v ignoring case.
func EqualFold(column, v string) Condition {
	return Condition{Column: column, Op: OpEqualFold, Args: []any{v}}
}

// ContainsFold matches rows where column contains substr ignoring case.
// Wildcards in substr are escaped and match literally.
func ContainsFold(column, substr string) Condition {
	return Condition{
		Column: column,
		Op:     OpContainsFold,
		Args:   []any{"%" + EscapeLike(substr) + "%"},
	}
}

// Between matches rows where lo <= column <= hi.
func Between(column string, lo, hi any) Condition {
	return Condition{Column: column, Op: OpBetween, Args: []any{lo, hi}}
}

// NotNull matches rows where column is not NULL.
func NotNull(column string) Condition {
	return Condition{Column: column, Op: OpNotNull}
}

// EscapeLike escapes LIKE wildcards in s using LikeEscape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// arity is the number of bound arguments the operator takes.
func (o Op) arity() int {
	switch o {
	case OpEq, OpEqualFold, OpContainsFold:
		return 1
	case OpBetween:
		return 2
	case OpNotNull:
		return 0
	default:
		return -1
	}
}

// compile renders the predicate with ? placeholders.
func (c Condition) compile() (string, error) {
	if err := checkIdent(c.Column); err != nil {
		return "", err
	}

	want := c.Op.arity()
	if want < 0 {
		return "", fmt.Errorf("sqlbuild: unknown operator %d on %q", c.Op, c.Column)
	}
	if len(c.Args) != want {
		return "", fmt.Errorf("sqlbuild: %q takes %d argument(s), got %d", c.Column, want, len(c.Args))
	}

	switch c.Op {
	case OpEq:
		return c.Column + " = ?", nil
	case OpEqualFold:
		return "LOWER(" + c.Column + ") = LOWER(?)", nil
	case OpContainsFold:
		return "LOWER(" + c.Column + ") LIKE LOWER(?) ESCAPE '" + LikeEscape + "'", nil
	case OpBetween:
		return c.Column + " BETWEEN ? AND ?", nil
	default:
		return c.Column + " IS NOT NULL", nil
	}
}

func checkIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("sqlbuild: invalid identifier %q", name)
	}
	return nil
}
