package lookup

import (
	"fmt"
	"strings"
)

// SchemaError reports a key or return column that is absent from a
// table's schema. It always names the missing column and lists the
// columns that are available, so the message alone is enough to fix a
// misconfigured job.
type SchemaError struct {
	Table     string // "primary" or "reference"
	Column    string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found in %s table (available: %s)",
		e.Column, e.Table, strings.Join(e.Available, ", "))
}

// NamingExhaustedError reports that no free output path was found within
// the bounded suffix search.
type NamingExhaustedError struct {
	Path     string // last candidate tried
	Attempts int
}

func (e *NamingExhaustedError) Error() string {
	return fmt.Sprintf("no free output path after %d attempts (last tried %s)",
		e.Attempts, e.Path)
}
