package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcess(t *testing.T) {
	files := []string{"a.xlsx", "b.xlsx", "c.xlsx"}
	var seen []string

	report := Process(context.Background(), files, func(ctx context.Context, path string) error {
		seen = append(seen, path)
		return nil
	}, discard())

	if !reflect.DeepEqual(seen, files) {
		t.Errorf("processed order = %v, want %v", seen, files)
	}
	if !reflect.DeepEqual(report.Processed, files) {
		t.Errorf("Processed = %v, want %v", report.Processed, files)
	}
	if len(report.Failed) != 0 {
		t.Errorf("Failed = %v, want none", report.Failed)
	}
}

func TestProcess_FailureIsolation(t *testing.T) {
	files := []string{"a.xlsx", "bad.xlsx", "c.xlsx"}
	boom := errors.New("corrupt workbook")

	report := Process(context.Background(), files, func(ctx context.Context, path string) error {
		if path == "bad.xlsx" {
			return boom
		}
		return nil
	}, discard())

	if !reflect.DeepEqual(report.Processed, []string{"a.xlsx", "c.xlsx"}) {
		t.Errorf("Processed = %v", report.Processed)
	}
	if len(report.Failed) != 1 {
		t.Fatalf("Failed = %v, want one entry", report.Failed)
	}
	if report.Failed[0].File != "bad.xlsx" || !errors.Is(report.Failed[0].Err, boom) {
		t.Errorf("Failed[0] = %+v", report.Failed[0])
	}
}

func TestProcess_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	files := []string{"a.xlsx", "b.xlsx", "c.xlsx"}

	report := Process(ctx, files, func(ctx context.Context, path string) error {
		if path == "a.xlsx" {
			cancel() // stop before the remaining files run
		}
		return nil
	}, discard())

	if !reflect.DeepEqual(report.Processed, []string{"a.xlsx"}) {
		t.Errorf("Processed = %v, want only a.xlsx", report.Processed)
	}
	if len(report.Failed) != 2 {
		t.Fatalf("Failed = %v, want the two remaining files", report.Failed)
	}
	for _, f := range report.Failed {
		if !errors.Is(f.Err, context.Canceled) {
			t.Errorf("Failed err = %v, want context.Canceled", f.Err)
		}
	}
}

func TestProcess_NoFiles(t *testing.T) {
	report := Process(context.Background(), nil, func(ctx context.Context, path string) error {
		t.Fatal("run should not be called")
		return nil
	}, discard())

	if len(report.Processed) != 0 || len(report.Failed) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}
