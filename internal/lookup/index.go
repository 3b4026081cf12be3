package lookup

import "sheetmerge/internal/table"

// ReferenceIndex maps a normalized key to the return-column values of
// exactly one reference row. It is built once per (reference table, key
// column, return columns) combination and never mutated afterwards.
type ReferenceIndex struct {
	returnColumns []string
	entries       map[string][]table.Cell
}

// BuildIndex indexes the reference table by keyColumn.
//
// Rows are visited in table order; the first row seen for a key wins and
// later rows with the same key are discarded. This keeps lookups
// single-valued and deterministic, matching spreadsheet VLOOKUP, so the
// dedup rule must not be changed to merge or error.
//
// A missing key or return column fails with a SchemaError.
func BuildIndex(ref *table.Table, keyColumn string, returnColumns []string) (*ReferenceIndex, error) {
	keyIdx, ok := ref.ColumnIndex(keyColumn)
	if !ok {
		return nil, &SchemaError{Table: "reference", Column: keyColumn, Available: ref.Columns}
	}

	retIdx := make([]int, len(returnColumns))
	for i, col := range returnColumns {
		pos, ok := ref.ColumnIndex(col)
		if !ok {
			return nil, &SchemaError{Table: "reference", Column: col, Available: ref.Columns}
		}
		retIdx[i] = pos
	}

	ix := &ReferenceIndex{
		returnColumns: append([]string(nil), returnColumns...),
		entries:       make(map[string][]table.Cell, ref.Len()),
	}

	for _, row := range ref.Rows {
		key := NormalizeKey(row[keyIdx])
		if _, seen := ix.entries[key]; seen {
			continue
		}
		values := make([]table.Cell, len(retIdx))
		for i, pos := range retIdx {
			values[i] = row[pos]
		}
		ix.entries[key] = values
	}

	return ix, nil
}

// Lookup returns the indexed return-column values for a key.
func (ix *ReferenceIndex) Lookup(key string) ([]table.Cell, bool) {
	values, ok := ix.entries[key]
	return values, ok
}

// ReturnColumns returns the column names each indexed entry carries,
// in the order they were requested.
func (ix *ReferenceIndex) ReturnColumns() []string {
	return ix.returnColumns
}

// Len returns the number of distinct keys in the index.
func (ix *ReferenceIndex) Len() int {
	return len(ix.entries)
}
