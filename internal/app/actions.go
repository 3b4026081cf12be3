package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sheetmerge/internal/config"
	"sheetmerge/internal/core"
	"sheetmerge/internal/sample"
)

// ActionTimeout is the maximum duration for a single lookup or batch
// action. Can be overridden for testing.
var ActionTimeout = 5 * time.Minute

// Actions binds menu entries and form submits to the lookup service.
type Actions struct {
	service *core.Service
	cfg     *config.Config
}

func NewActions(service *core.Service, cfg *config.Config) *Actions {
	return &Actions{service: service, cfg: cfg}
}

/* ----------------------------------------
	SAMPLE DATA
---------------------------------------- */

func (a *Actions) GenerateBasicSamples() tea.Cmd {
	return a.generateSamples(sample.WriteBasic)
}

func (a *Actions) GenerateBusinessSamples() tea.Cmd {
	return a.generateSamples(sample.WriteBusiness)
}

func (a *Actions) GenerateHRSamples() tea.Cmd {
	return a.generateSamples(sample.WriteHR)
}

func (a *Actions) GenerateInventorySamples() tea.Cmd {
	return a.generateSamples(sample.WriteInventory)
}

func (a *Actions) GenerateAllSamples() tea.Cmd {
	return a.generateSamples(sample.WriteAll)
}

func (a *Actions) generateSamples(write func(string) ([]string, error)) tea.Cmd {
	return func() tea.Msg {
		files, err := write(a.cfg.Sample.Dir)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DoneMsg("Created " + strings.Join(files, ", "))
	}
}

func (a *Actions) RunBasicSample() tea.Cmd {
	return a.runJob(sample.BasicJob(a.cfg.Sample.Dir))
}

func (a *Actions) RunBusinessSample() tea.Cmd {
	return a.runJob(sample.BusinessJob(a.cfg.Sample.Dir))
}

func (a *Actions) RunHRSample() tea.Cmd {
	return a.runJob(sample.HRJob(a.cfg.Sample.Dir))
}

func (a *Actions) RunInventorySample() tea.Cmd {
	return a.runJob(sample.InventoryJob(a.cfg.Sample.Dir))
}

/* ----------------------------------------
	LOOKUP RUNS
---------------------------------------- */

func (a *Actions) RunJobFile(path string) tea.Cmd {
	job, err := config.LoadJob(path)
	if err != nil {
		return func() tea.Msg { return ErrMsg{Err: err} }
	}
	return a.runJob(job)
}

func (a *Actions) RunManual(primaryPath, primarySheet, refPath, refSheet, searchCol, lookupCol, returnCols string) tea.Cmd {
	job := config.Job{
		Primary:       config.Source{Path: primaryPath, Sheet: primarySheet},
		Reference:     config.Source{Path: refPath, Sheet: refSheet},
		SearchColumn:  searchCol,
		LookupColumn:  lookupCol,
		ReturnColumns: splitColumns(returnCols),
		Output:        config.JobOutput{AutoSameDir: true},
	}
	return a.runJob(job)
}

func (a *Actions) RunBatchDir(dir, jobPath string) tea.Cmd {
	job, err := config.LoadJob(jobPath)
	if err != nil {
		return func() tea.Msg { return ErrMsg{Err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ActionTimeout)
		defer cancel()

		report, err := a.service.RunBatch(ctx, dir, job)
		if err != nil {
			return ErrMsg{Err: timeoutErr(err)}
		}
		return batchMsg{Dir: dir, Report: report}
	}
}

func (a *Actions) runJob(job config.Job) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ActionTimeout)
		defer cancel()

		res, err := a.service.RunLookup(ctx, job)
		if err != nil {
			return ErrMsg{Err: timeoutErr(err)}
		}
		return resultMsg{Result: res}
	}
}

/* ----------------------------------------
	JOB FILES
---------------------------------------- */

func (a *Actions) CreateTemplate(path string) tea.Cmd {
	return func() tea.Msg {
		if err := config.WriteJobTemplate(path); err != nil {
			return ErrMsg{Err: err}
		}
		return DoneMsg("Template written to " + path + ". Edit it, then use Run Lookup -> From Job File.")
	}
}

// splitColumns parses a comma separated column list, dropping blanks.
func splitColumns(s string) []string {
	var cols []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			cols = append(cols, part)
		}
	}
	return cols
}

func timeoutErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("operation timed out after %v", ActionTimeout)
	}
	return err
}
