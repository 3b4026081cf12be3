// Package table provides the in-memory tabular data model plus the
// workbook read/write and directory scanning adapters around it.
// The lookup core operates on Tables and never touches files itself.
package table

import "fmt"

// Cell is a single scalar cell value: string, float64, bool, time.Time,
// or nil for an empty cell.
type Cell = any

// Row holds the cell values for one record, in column order.
type Row []Cell

// Table is an ordered set of rows sharing one column schema.
// Column order is significant for output; lookups go through ColumnIndex.
type Table struct {
	Columns []string
	Rows    []Row

	colIdx map[string]int
}

// New creates an empty table with the given column schema.
func New(columns []string) *Table {
	t := &Table{Columns: columns}
	t.colIdx = make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := t.colIdx[c]; !exists {
			t.colIdx[c] = i
		}
	}
	return t
}

// Append adds a row, padding or truncating it to the schema width so
// every stored row has exactly len(Columns) cells.
func (t *Table) Append(row Row) {
	switch {
	case len(row) < len(t.Columns):
		padded := make(Row, len(t.Columns))
		copy(padded, row)
		row = padded
	case len(row) > len(t.Columns):
		row = row[:len(t.Columns)]
	}
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the position of a column by exact name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.colIdx[name]
	return i, ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Head returns a new table holding at most n leading rows; a negative
// n behaves like 0. Rows are shared with the receiver; callers must
// not mutate them.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	out := New(t.Columns)
	out.Rows = t.Rows[:n]
	return out
}

// Sheet pairs a table with the worksheet name it is written to.
type Sheet struct {
	Name  string
	Table *Table
}

// String returns a short description for logging.
func (t *Table) String() string {
	return fmt.Sprintf("Table{%d cols, %d rows}", len(t.Columns), len(t.Rows))
}
