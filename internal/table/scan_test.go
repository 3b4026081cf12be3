package table

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListWorkbooks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"a.xlsx",
		"b.XLSM", // extension match is case-insensitive
		"notes.txt",
		"~$a.xlsx",    // Excel lock file
		".hidden.xlsx",
		"c.csv",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.xlsx"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ListWorkbooks(dir)
	if err != nil {
		t.Fatalf("ListWorkbooks() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.xlsx"),
		filepath.Join(dir, "b.XLSM"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ListWorkbooks() = %v, want %v", files, want)
	}
}

func TestListWorkbooks_Empty(t *testing.T) {
	files, err := ListWorkbooks(t.TempDir())
	if err != nil {
		t.Fatalf("ListWorkbooks() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("ListWorkbooks() = %v, want none", files)
	}
}

func TestListWorkbooks_MissingDir(t *testing.T) {
	_, err := ListWorkbooks(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("ListWorkbooks() expected error for missing directory")
	}
}
