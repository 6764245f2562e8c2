package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
)

// scanRows reads every row into a column-keyed map. Drivers hand text and
// decimal columns back as byte slices; those are converted to strings so the
// rows serialize as readable JSON.
func scanRows(rows *sqlx.Rows) ([]college.Row, error) {
	out := []college.Row{}
	for rows.Next() {
		m := make(map[string]any)
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		for k, v := range m {
			if b, ok := v.([]byte); ok {
				m[k] = string(b)
			}
		}
		out = append(out, college.Row(m))
	}
	return out, rows.Err()
}
