package lookup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// outputExt is the extension of every result artifact.
const outputExt = ".xlsx"

// timestampLayout gives second-resolution timestamps in file names.
const timestampLayout = "20060102_150405"

// DefaultMaxNameAttempts bounds the collision-suffix search.
const DefaultMaxNameAttempts = 100

// OutputNamer derives result file paths next to their input file.
// The zero value uses DefaultMaxNameAttempts.
type OutputNamer struct {
	MaxAttempts int
}

// Resolve returns a path in inputPath's directory named
// {base}_{label}_{timestamp}.xlsx that does not exist at the time of the
// call. If the plain candidate exists (two runs within one second), a
// zero-padded numeric suffix starting at _01 is tried until a free path
// is found, bounded by MaxAttempts; beyond that the search fails with a
// NamingExhaustedError.
//
// Resolve only checks for existence, it never creates the file, so a
// race between resolution and the actual write is possible. That is
// acceptable for this tool's sequential execution model.
func (n OutputNamer) Resolve(inputPath, label string, ts time.Time) (string, error) {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stamp := ts.Format(timestampLayout)

	candidate := filepath.Join(dir, fmt.Sprintf("%s_%s_%s%s", base, label, stamp, outputExt))
	if !exists(candidate) {
		return candidate, nil
	}

	max := n.MaxAttempts
	if max <= 0 {
		max = DefaultMaxNameAttempts
	}
	for i := 1; i <= max; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%s_%s_%02d%s", base, label, stamp, i, outputExt))
		if !exists(candidate) {
			return candidate, nil
		}
	}

	return "", &NamingExhaustedError{Path: candidate, Attempts: max}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
