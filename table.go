package prettytable

import (
	"fmt"
	"slices"
)

// Table is an ordered set of uniquely named columns and rows of values.
// A Table is not safe for concurrent use.
type Table struct {
	columns []string
	rows    [][]Value
	opts    Options
}

// New returns a table with the given columns and [DefaultOptions].
func New(columns ...string) (*Table, error) {
	return NewWithOptions(DefaultOptions(), columns...)
}

// NewWithOptions returns a table with the given columns and options.
func NewWithOptions(opts Options, columns ...string) (*Table, error) {
	t := &Table{opts: opts.clone()}
	if len(columns) > 0 {
		if err := t.SetColumns(columns...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Options returns a copy of the table's options.
func (t *Table) Options() Options { return t.opts.clone() }

// SetOptions replaces the table's options. Options are validated at
// render time.
func (t *Table) SetOptions(opts Options) { t.opts = opts.clone() }

// SetColumnStyle sets per-column overrides. The column need not exist yet.
func (t *Table) SetColumnStyle(column string, style ColumnStyle) {
	if t.opts.Columns == nil {
		t.opts.Columns = make(map[string]ColumnStyle)
	}
	t.opts.Columns[column] = style
}

// Columns returns the column names in render order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// SetColumns declares or renames the columns. When rows exist the count
// must match. Column styles follow their column by position.
func (t *Table) SetColumns(names ...string) error {
	if len(t.rows) > 0 && len(names) != len(t.columns) {
		return fmt.Errorf("%w: %d column names for %d columns", ErrShapeMismatch, len(names), len(t.columns))
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, n)
		}
		seen[n] = struct{}{}
	}
	if len(t.opts.Columns) > 0 && len(t.columns) == len(names) {
		renamed := make(map[string]ColumnStyle, len(t.opts.Columns))
		for name, cs := range t.opts.Columns {
			// Styles for columns that do not exist yet stay, unless a
			// renamed column takes the name.
			if !slices.Contains(t.columns, name) && !slices.Contains(names, name) {
				renamed[name] = cs
			}
		}
		for i, old := range t.columns {
			if cs, ok := t.opts.Columns[old]; ok {
				renamed[names[i]] = cs
			}
		}
		t.opts.Columns = renamed
	}
	t.columns = slices.Clone(names)
	return nil
}

// AddRow appends a row. The number of values must equal the number of
// columns. A table without columns gets "Field 1".."Field N".
func (t *Table) AddRow(values ...any) error {
	row, err := convertRow(values)
	if err != nil {
		return err
	}
	if len(t.columns) == 0 {
		if len(row) == 0 {
			return fmt.Errorf("%w: empty row for a table without columns", ErrShapeMismatch)
		}
		names := make([]string, len(row))
		for i := range names {
			names[i] = fmt.Sprintf("Field %d", i+1)
		}
		t.columns = names
	}
	if len(row) != len(t.columns) {
		return fmt.Errorf("%w: row has %d values, table has %d columns", ErrShapeMismatch, len(row), len(t.columns))
	}
	t.rows = append(t.rows, row)
	return nil
}

// AddRows appends several rows. Either all rows are added or none.
func (t *Table) AddRows(rows ...[]any) error {
	staged := t.Copy()
	for i, r := range rows {
		if err := staged.AddRow(r...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	t.columns, t.rows = staged.columns, staged.rows
	return nil
}

// AddColumn appends a column. When rows exist the number of values must
// equal the row count; on a table without rows one row is created per
// value, with empty values in the other columns.
func (t *Table) AddColumn(name string, values ...any) error {
	if slices.Contains(t.columns, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	col, err := convertRow(values)
	if err != nil {
		return err
	}
	if len(t.rows) > 0 && len(col) != len(t.rows) {
		return fmt.Errorf("%w: column has %d values, table has %d rows", ErrShapeMismatch, len(col), len(t.rows))
	}
	for len(t.rows) < len(col) {
		t.rows = append(t.rows, make([]Value, len(t.columns)))
	}
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], col[i])
	}
	t.columns = append(t.columns, name)
	return nil
}

// SetValue replaces a single cell.
func (t *Table) SetValue(row int, column string, value any) error {
	ci, err := t.locate(row, column)
	if err != nil {
		return err
	}
	v, err := ValueOf(value)
	if err != nil {
		return err
	}
	t.rows[row][ci] = v
	return nil
}

// Cell returns a single cell.
func (t *Table) Cell(row int, column string) (Value, error) {
	ci, err := t.locate(row, column)
	if err != nil {
		return Value{}, err
	}
	return t.rows[row][ci], nil
}

// DeleteRow removes the row at index i.
func (t *Table) DeleteRow(i int) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("%w: %d (table has %d rows)", ErrRowIndex, i, len(t.rows))
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

// DeleteColumn removes a column and its values.
func (t *Table) DeleteColumn(name string) error {
	ci := slices.Index(t.columns, name)
	if ci < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	t.columns = slices.Delete(t.columns, ci, ci+1)
	for i, row := range t.rows {
		t.rows[i] = slices.Delete(row, ci, ci+1)
	}
	delete(t.opts.Columns, name)
	return nil
}

// ClearRows removes all rows and keeps the columns.
func (t *Table) ClearRows() { t.rows = nil }

// Clear removes all rows and columns and keeps the options.
func (t *Table) Clear() {
	t.rows = nil
	t.columns = nil
}

// Rows returns every row in canonical string form, with per-column
// number formats applied.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = t.formatRow(row)
	}
	return out
}

// Copy returns a deep copy.
func (t *Table) Copy() *Table {
	c := &Table{
		columns: slices.Clone(t.columns),
		rows:    make([][]Value, len(t.rows)),
		opts:    t.opts.clone(),
	}
	for i, row := range t.rows {
		c.rows[i] = slices.Clone(row)
	}
	return c
}

// Slice returns a copy holding rows [start, end).
func (t *Table) Slice(start, end int) (*Table, error) {
	if start < 0 || end > len(t.rows) || start > end {
		return nil, fmt.Errorf("%w: [%d:%d] (table has %d rows)", ErrRowIndex, start, end, len(t.rows))
	}
	c := &Table{
		columns: slices.Clone(t.columns),
		opts:    t.opts.clone(),
	}
	for _, row := range t.rows[start:end] {
		c.rows = append(c.rows, slices.Clone(row))
	}
	return c, nil
}

func (t *Table) locate(row int, column string) (int, error) {
	if row < 0 || row >= len(t.rows) {
		return 0, fmt.Errorf("%w: %d (table has %d rows)", ErrRowIndex, row, len(t.rows))
	}
	ci := slices.Index(t.columns, column)
	if ci < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	return ci, nil
}

func (t *Table) formatRow(row []Value) []string {
	out := make([]string, len(row))
	for i, v := range row {
		cs := t.opts.Columns[t.columns[i]]
		out[i] = v.Format(cs.IntFormat, cs.FloatFormat)
	}
	return out
}

func convertRow(values []any) ([]Value, error) {
	row := make([]Value, len(values))
	for i, v := range values {
		val, err := ValueOf(v)
		if err != nil {
			return nil, err
		}
		row[i] = val
	}
	return row, nil
}
