package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// workbookExts are the spreadsheet file extensions a batch run picks up.
var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// ListWorkbooks returns the workbook files directly inside dir, in
// directory order. Subdirectories, hidden files, and Excel lock
// artifacts (the "~$" prefix left by an open workbook) are skipped.
func ListWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			continue
		}
		if !workbookExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}
