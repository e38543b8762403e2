package prettytable

import (
	"database/sql"
	"fmt"
	"time"
)

// FromSQL reads a result set into a table named after the result columns.
// Rows are closed when FromSQL returns. NULL becomes the empty value.
func FromSQL(rows *sql.Rows) (*Table, error) {
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	t, err := New(cols...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for rows.Next() {
		dest := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range dest {
			ptrs[i] = &dest[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]Value, len(cols))
		for i, v := range dest {
			if row[i], err = sqlValue(v); err != nil {
				return nil, fmt.Errorf("column %q: %w", cols[i], err)
			}
		}
		t.rows = append(t.rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func sqlValue(v any) (Value, error) {
	if tm, ok := v.(time.Time); ok {
		return Str(tm.Format(time.DateTime)), nil
	}
	return ValueOf(v)
}
