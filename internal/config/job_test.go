package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJob(t *testing.T) {
	path := writeJob(t, `
primary:
  path: orders.xlsx
  sheet: Orders
reference:
  path: products.xlsx
search_column: Product Code
lookup_column: Product Code
return_columns:
  - Product Name
  - Price
`)

	job, err := LoadJob(path)
	if err != nil {
		t.Fatalf("LoadJob() error = %v", err)
	}

	if job.Primary.Path != "orders.xlsx" || job.Primary.Sheet != "Orders" {
		t.Errorf("Primary = %+v", job.Primary)
	}
	if job.Reference.Sheet != "" {
		t.Errorf("Reference.Sheet = %q, want empty (first sheet)", job.Reference.Sheet)
	}
	if len(job.ReturnColumns) != 2 || job.ReturnColumns[0] != "Product Name" {
		t.Errorf("ReturnColumns = %v", job.ReturnColumns)
	}
	if !job.Output.AutoSameDir {
		t.Error("Output.AutoSameDir should default to true when output is omitted")
	}
}

func TestLoadJob_ExplicitOutputPath(t *testing.T) {
	path := writeJob(t, `
primary:
  path: orders.xlsx
reference:
  path: products.xlsx
search_column: Code
lookup_column: Code
return_columns: [Name]
output:
  auto_same_dir: false
  path: result.xlsx
`)

	job, err := LoadJob(path)
	if err != nil {
		t.Fatalf("LoadJob() error = %v", err)
	}
	if job.Output.AutoSameDir {
		t.Error("Output.AutoSameDir = true, want false")
	}
	if job.Output.Path != "result.xlsx" {
		t.Errorf("Output.Path = %q, want %q", job.Output.Path, "result.xlsx")
	}
}

func TestLoadJob_Invalid(t *testing.T) {
	path := writeJob(t, `
primary:
  path: orders.xlsx
reference:
  path: products.xlsx
search_column: Code
lookup_column: Code
return_columns: []
`)

	_, err := LoadJob(path)
	if err == nil {
		t.Fatal("LoadJob() expected error for empty return_columns")
	}
	if !strings.Contains(err.Error(), "return_columns") {
		t.Errorf("error should mention return_columns: %v", err)
	}
}

func TestJobValidate_MissingOutputPath(t *testing.T) {
	job := Job{
		Primary:       Source{Path: "a.xlsx"},
		Reference:     Source{Path: "b.xlsx"},
		SearchColumn:  "Code",
		LookupColumn:  "Code",
		ReturnColumns: []string{"Name"},
		Output:        JobOutput{AutoSameDir: false},
	}

	err := job.Validate()
	if err == nil {
		t.Fatal("Validate() expected error when auto_same_dir is false and path is empty")
	}
}

func TestWriteJobTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")

	if err := WriteJobTemplate(path); err != nil {
		t.Fatalf("WriteJobTemplate() error = %v", err)
	}

	// The template must be parseable YAML even before editing.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "search_column") {
		t.Error("template should contain search_column")
	}

	if err := WriteJobTemplate(path); err == nil {
		t.Error("WriteJobTemplate() should refuse to overwrite an existing file")
	}
}
