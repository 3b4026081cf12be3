package lookup

import "sheetmerge/internal/table"

// JoinResult holds the output of one left join: the enriched table and
// the raw search-column values that found no reference match, one entry
// per unmatched row in table order.
type JoinResult struct {
	Table         *table.Table
	UnmatchedKeys []string

	// primaryWidth is where the return columns start in Table. Return
	// columns may share a name with a primary column, so consumers
	// must resolve them by position, not by name.
	primaryWidth int
}

// Join left-joins the primary table against a reference index.
//
// Every primary row produces exactly one output row: the primary
// columns followed by the index's return columns. Rows whose normalized
// search key is absent from the index get nil in every return column
// and contribute their raw search value to UnmatchedKeys. The inputs
// are read but never mutated.
//
// A searchColumn absent from the primary schema fails with a
// SchemaError before any row is processed.
func Join(primary *table.Table, searchColumn string, ix *ReferenceIndex) (*JoinResult, error) {
	searchIdx, ok := primary.ColumnIndex(searchColumn)
	if !ok {
		return nil, &SchemaError{Table: "primary", Column: searchColumn, Available: primary.Columns}
	}

	retCols := ix.ReturnColumns()
	columns := make([]string, 0, len(primary.Columns)+len(retCols))
	columns = append(columns, primary.Columns...)
	columns = append(columns, retCols...)

	out := table.New(columns)
	out.Rows = make([]table.Row, 0, primary.Len())

	var unmatched []string
	for _, row := range primary.Rows {
		joined := make(table.Row, 0, len(columns))
		joined = append(joined, row...)

		key := NormalizeKey(row[searchIdx])
		if values, found := ix.Lookup(key); found {
			joined = append(joined, values...)
		} else {
			for range retCols {
				joined = append(joined, nil)
			}
			unmatched = append(unmatched, key)
		}
		out.Rows = append(out.Rows, joined)
	}

	return &JoinResult{Table: out, UnmatchedKeys: unmatched, primaryWidth: len(primary.Columns)}, nil
}
