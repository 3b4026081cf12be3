package app

import (
	"sheetmerge/internal/batch"
	"sheetmerge/internal/core"
)

// DoneMsg reports an action that finished without a run result to show.
type DoneMsg string

// ErrMsg wraps an action failure for display.
type ErrMsg struct{ Err error }

// resultMsg carries a completed lookup run back to the model.
type resultMsg struct{ Result *core.RunResult }

// batchMsg carries a completed batch report back to the model.
type batchMsg struct {
	Dir    string
	Report *batch.Report
}
