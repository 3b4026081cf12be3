package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Write creates a new xlsx workbook at path containing the result sheet
// followed by any extra sheets (summary, input preview). The file is
// created from scratch; an existing file at path is overwritten, so the
// caller is responsible for resolving a non-colliding path first.
func Write(path string, result Sheet, extras ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default workbook starts with one sheet; rename it for the
	// result and append the rest.
	if err := f.SetSheetName("Sheet1", result.Name); err != nil {
		return fmt.Errorf("name result sheet: %w", err)
	}
	if err := writeSheet(f, result); err != nil {
		return err
	}

	for _, extra := range extras {
		if _, err := f.NewSheet(extra.Name); err != nil {
			return fmt.Errorf("add sheet %q: %w", extra.Name, err)
		}
		if err := writeSheet(f, extra); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, s Sheet) error {
	header := make([]any, len(s.Table.Columns))
	for i, c := range s.Table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return fmt.Errorf("write header of %q: %w", s.Name, err)
	}

	for r, row := range s.Table.Rows {
		ref, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("cell reference for row %d: %w", r+2, err)
		}
		values := make([]any, len(row))
		copy(values, row)
		if err := f.SetSheetRow(s.Name, ref, &values); err != nil {
			return fmt.Errorf("write row %d of %q: %w", r+2, s.Name, err)
		}
	}
	return nil
}
