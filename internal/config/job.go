package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source identifies one worksheet of one workbook.
type Source struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"`
}

// JobOutput controls where a run's result workbook goes.
type JobOutput struct {
	// AutoSameDir saves the result next to the primary file with a
	// timestamped name; when false, Path names the destination exactly.
	AutoSameDir bool   `yaml:"auto_same_dir"`
	Path        string `yaml:"path"`
}

// Job describes one lookup run: which primary sheet to enrich, which
// reference sheet supplies the values, and how to save the result.
type Job struct {
	Primary       Source    `yaml:"primary"`
	Reference     Source    `yaml:"reference"`
	SearchColumn  string    `yaml:"search_column"`
	LookupColumn  string    `yaml:"lookup_column"`
	ReturnColumns []string  `yaml:"return_columns"`
	Output        JobOutput `yaml:"output"`
}

// LoadJob reads and validates a YAML job file.
func LoadJob(path string) (Job, error) {
	job := Job{Output: JobOutput{AutoSameDir: true}}

	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("read job file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if err := job.Validate(); err != nil {
		return Job{}, fmt.Errorf("job file %s: %w", path, err)
	}

	return job, nil
}

// Validate checks that the job names everything a run needs.
func (j Job) Validate() error {
	var errs []string

	if j.Primary.Path == "" {
		errs = append(errs, "primary.path is required")
	}
	if j.Reference.Path == "" {
		errs = append(errs, "reference.path is required")
	}
	if j.SearchColumn == "" {
		errs = append(errs, "search_column is required")
	}
	if j.LookupColumn == "" {
		errs = append(errs, "lookup_column is required")
	}
	if len(j.ReturnColumns) == 0 {
		errs = append(errs, "return_columns must name at least one column")
	}
	if !j.Output.AutoSameDir && j.Output.Path == "" {
		errs = append(errs, "output.path is required when output.auto_same_dir is false")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid job: %s", strings.Join(errs, "; "))
	}
	return nil
}

// jobTemplate is the commented starting point WriteJobTemplate emits.
const jobTemplate = `# Lookup job configuration.
# Edit each value, then run the tool with this file.

# The table being enriched.
primary:
  path: path/to/orders.xlsx
  sheet: Orders        # blank means first sheet

# The table supplying lookup values.
reference:
  path: path/to/products.xlsx
  sheet: Products

search_column: Product Code   # key column in the primary sheet
lookup_column: Product Code   # key column in the reference sheet
return_columns:               # columns copied from the reference sheet
  - Product Name
  - Price

output:
  auto_same_dir: true         # save next to the primary file with a timestamped name
  path: ""                    # used only when auto_same_dir is false
`

// WriteJobTemplate writes a commented job file template for the user to
// edit. Fails if the file already exists, so a configured job is never
// clobbered.
func WriteJobTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("job file %s already exists", path)
	}
	if err := os.WriteFile(path, []byte(jobTemplate), 0o644); err != nil {
		return fmt.Errorf("write job template %s: %w", path, err)
	}
	return nil
}
