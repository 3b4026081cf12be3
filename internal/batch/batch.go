// Package batch runs one lookup configuration against every workbook in
// a directory, isolating per-file failures so one bad file never aborts
// the rest of the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// RunFunc processes a single primary file. The batch coordinator stays
// decoupled from loading and joining; the caller supplies a closure that
// captures the reference index built once for the whole batch.
type RunFunc func(ctx context.Context, path string) error

// Failure records one file that could not be processed.
type Failure struct {
	File string
	Err  error
}

// Report lists the outcome of a batch run in processing order.
type Report struct {
	Processed []string
	Failed    []Failure
}

// Process applies run to every file sequentially. A failure for one
// file is recorded and the batch continues; only context cancellation
// stops the run early, with the remaining files reported as failed.
func Process(ctx context.Context, files []string, run RunFunc, logger *slog.Logger) Report {
	var report Report

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			for _, rest := range files[i:] {
				report.Failed = append(report.Failed, Failure{File: rest, Err: fmt.Errorf("batch cancelled: %w", err)})
			}
			break
		}

		name := filepath.Base(file)
		logger.Info("processing file", "file", name, "position", i+1, "of", len(files))

		if err := run(ctx, file); err != nil {
			logger.Warn("file failed", "file", name, "error", err)
			report.Failed = append(report.Failed, Failure{File: file, Err: err})
			continue
		}

		report.Processed = append(report.Processed, file)
	}

	logger.Info("batch complete",
		"processed", len(report.Processed),
		"failed", len(report.Failed),
	)
	return report
}
