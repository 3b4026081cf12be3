// Package core provides the business logic for lookup runs.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sheetmerge/internal/batch"
	"sheetmerge/internal/config"
	"sheetmerge/internal/logging"
	"sheetmerge/internal/lookup"
	"sheetmerge/internal/table"
)

// Loader reads one worksheet into a table, falling back to the first
// sheet when the requested one is absent. It reports the sheet actually
// used. Satisfied by table.Load.
type Loader func(path, sheet string) (*table.Table, string, error)

// Writer persists a result workbook: the joined table plus auxiliary
// sheets. Satisfied by table.Write.
type Writer func(path string, result table.Sheet, extras ...table.Sheet) error

// Service runs lookups end to end: load, index, join, summarize, name,
// write. Every run returns its outcome as one value; no intermediate
// state is retained between runs.
type Service struct {
	cfg   *config.Config
	load  Loader
	write Writer
	namer lookup.OutputNamer
	now   func() time.Time
}

// NewService creates a service backed by the xlsx reader and writer.
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:   cfg,
		load:  table.Load,
		write: table.Write,
		namer: lookup.OutputNamer{MaxAttempts: cfg.Output.MaxNameAttempts},
		now:   time.Now,
	}
}

// RunResult is the complete outcome of one lookup run.
type RunResult struct {
	RunID          string
	PrimaryPath    string
	PrimarySheet   string
	ReferenceSheet string
	OutputPath     string
	Summary        lookup.MatchSummary
	Duration       time.Duration
}

// RunLookup executes one job: enrich the primary sheet with the job's
// return columns and write the result workbook.
func (s *Service) RunLookup(ctx context.Context, job config.Job) (*RunResult, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := logging.WithRun(runID)

	ix, refSheet, err := s.buildIndex(logger, job)
	if err != nil {
		return nil, err
	}

	res, err := s.runWithIndex(ctx, logger, runID, job.Primary, job.SearchColumn, ix, job.Output)
	if err != nil {
		return nil, err
	}
	res.ReferenceSheet = refSheet
	return res, nil
}

// RunBatch applies one job's reference configuration to every workbook
// in dir, using each workbook's first sheet as the primary table. The
// reference index is built once and reused for every file. Per-file
// failures are recorded in the report; only an empty directory or a
// reference-side failure aborts the whole batch.
func (s *Service) RunBatch(ctx context.Context, dir string, job config.Job) (*batch.Report, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := logging.WithRun(runID, "batch_dir", dir)

	if s.cfg.Batch.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Batch.Timeout)
		defer cancel()
	}

	ix, _, err := s.buildIndex(logger, job)
	if err != nil {
		return nil, err
	}

	files, err := table.ListWorkbooks(dir)
	if err != nil {
		return nil, err
	}
	// The reference workbook may live inside the batch directory; it is
	// input, not a file to enrich.
	if refAbs, err := filepath.Abs(job.Reference.Path); err == nil {
		kept := files[:0]
		for _, f := range files {
			if abs, err := filepath.Abs(f); err == nil && abs == refAbs {
				continue
			}
			kept = append(kept, f)
		}
		files = kept
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no workbooks found in %s", dir)
	}
	logger.Info("batch starting", "files", len(files))

	// Batch results always save next to their input.
	out := config.JobOutput{AutoSameDir: true}

	report := batch.Process(ctx, files, func(ctx context.Context, path string) error {
		primary := config.Source{Path: path} // first sheet
		_, err := s.runWithIndex(ctx, logger, runID, primary, job.SearchColumn, ix, out)
		return err
	}, logger)

	return &report, nil
}

// buildIndex loads the job's reference sheet and indexes it by the
// lookup column. Returns the sheet actually read.
func (s *Service) buildIndex(logger *slog.Logger, job config.Job) (*lookup.ReferenceIndex, string, error) {
	ref, refSheet, err := s.load(job.Reference.Path, job.Reference.Sheet)
	if err != nil {
		return nil, "", fmt.Errorf("load reference: %w", err)
	}
	if job.Reference.Sheet != "" && refSheet != job.Reference.Sheet {
		logger.Warn("reference sheet not found, using first sheet",
			"requested", job.Reference.Sheet, "used", refSheet)
	}

	ix, err := lookup.BuildIndex(ref, job.LookupColumn, job.ReturnColumns)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("reference indexed", "rows", ref.Len(), "distinct_keys", ix.Len())
	return ix, refSheet, nil
}

// runWithIndex performs the primary-side half of a run against a
// prebuilt reference index.
func (s *Service) runWithIndex(
	ctx context.Context,
	logger *slog.Logger,
	runID string,
	primary config.Source,
	searchColumn string,
	ix *lookup.ReferenceIndex,
	out config.JobOutput,
) (*RunResult, error) {
	start := s.now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	primaryTable, usedSheet, err := s.load(primary.Path, primary.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load primary: %w", err)
	}
	if primary.Sheet != "" && usedSheet != primary.Sheet {
		logger.Warn("primary sheet not found, using first sheet",
			"requested", primary.Sheet, "used", usedSheet)
	}

	res, err := lookup.Join(primaryTable, searchColumn, ix)
	if err != nil {
		return nil, err
	}

	summary, err := lookup.Summarize(res, ix.ReturnColumns()[0])
	if err != nil {
		return nil, err
	}

	outputPath := out.Path
	if out.AutoSameDir || outputPath == "" {
		outputPath, err = s.namer.Resolve(primary.Path, s.cfg.Output.Label, s.now())
		if err != nil {
			return nil, err
		}
	}

	extras := []table.Sheet{
		{Name: "Summary", Table: s.summaryTable(summary, outputPath)},
		{Name: "Input Preview", Table: primaryTable.Head(s.cfg.Output.PreviewRows)},
	}
	if err := s.write(outputPath, table.Sheet{Name: "Lookup Result", Table: res.Table}, extras...); err != nil {
		return nil, fmt.Errorf("write result: %w", err)
	}

	result := &RunResult{
		RunID:        runID,
		PrimaryPath:  primary.Path,
		PrimarySheet: usedSheet,
		OutputPath:   outputPath,
		Summary:      summary,
		Duration:     s.now().Sub(start),
	}

	logger.Info("lookup complete",
		"primary", filepath.Base(primary.Path),
		"output", filepath.Base(outputPath),
		"total", summary.Total,
		"matched", summary.Matched,
		"unmatched", summary.Unmatched,
	)
	return result, nil
}

// summaryTable renders a MatchSummary as the two-column "Summary" sheet
// of a result workbook.
func (s *Service) summaryTable(summary lookup.MatchSummary, outputPath string) *table.Table {
	t := table.New([]string{"Item", "Value"})
	t.Append(table.Row{"Processed At", s.now().Format("2006-01-02 15:04:05")})
	t.Append(table.Row{"Total Rows", summary.Total})
	t.Append(table.Row{"Matched", summary.Matched})
	t.Append(table.Row{"Unmatched", summary.Unmatched})
	t.Append(table.Row{"File Name", filepath.Base(outputPath)})
	t.Append(table.Row{"Directory", filepath.Dir(outputPath)})
	return t
}
