package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Load reads one worksheet of an xlsx workbook into a Table.
//
// The first row of the sheet is the column header; every following row
// becomes a data row padded to the header width. Empty cells are stored
// as nil so that downstream non-null checks behave like the spreadsheet's
// own notion of a blank cell.
//
// If sheet is empty or not present in the workbook, the first sheet is
// used instead. The name of the sheet actually read is always returned
// so callers can report the fallback.
func Load(path, sheet string) (*Table, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("workbook %s has no sheets", path)
	}

	used := sheet
	if used == "" || !containsSheet(sheets, used) {
		used = sheets[0]
	}

	rows, err := f.GetRows(used)
	if err != nil {
		return nil, "", fmt.Errorf("read sheet %q of %s: %w", used, path, err)
	}
	if len(rows) == 0 {
		return nil, "", fmt.Errorf("sheet %q of %s is empty", used, path)
	}

	t := New(rows[0])
	for _, raw := range rows[1:] {
		row := make(Row, len(t.Columns))
		for i := 0; i < len(t.Columns) && i < len(raw); i++ {
			if raw[i] != "" {
				row[i] = raw[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, used, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
