package lookup

import (
	"reflect"
	"testing"

	"sheetmerge/internal/table"
)

func joinResult(t *testing.T, primaryRows ...table.Row) *JoinResult {
	t.Helper()
	primary := primaryTable(primaryRows...)
	res, err := Join(primary, "Product Code", productIndex(t))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestSummarize(t *testing.T) {
	res := joinResult(t,
		table.Row{"ORD-1", "A001", 2.0},
		table.Row{"ORD-2", "Z999", 1.0},
		table.Row{"ORD-3", "B001", 5.0},
	)

	s, err := Summarize(res, "Product Name")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.Total != 3 || s.Matched != 2 || s.Unmatched != 1 {
		t.Errorf("summary = %+v, want Total 3, Matched 2, Unmatched 1", s)
	}
	if s.Matched+s.Unmatched != s.Total {
		t.Errorf("Matched + Unmatched = %d, want Total %d", s.Matched+s.Unmatched, s.Total)
	}
	if !reflect.DeepEqual(s.UnmatchedSamples, []string{"Z999"}) {
		t.Errorf("UnmatchedSamples = %v, want [Z999]", s.UnmatchedSamples)
	}
}

func TestSummarize_SampleCapAndDedup(t *testing.T) {
	rows := []table.Row{
		{"ORD-1", "X1", 1.0},
		{"ORD-2", "X2", 1.0},
		{"ORD-3", "X1", 1.0}, // repeat, must not appear twice
		{"ORD-4", "X3", 1.0},
		{"ORD-5", "X4", 1.0},
		{"ORD-6", "X5", 1.0},
		{"ORD-7", "X6", 1.0}, // seventh distinct key, beyond the cap
	}

	s, err := Summarize(joinResult(t, rows...), "Product Name")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.Unmatched != 7 {
		t.Errorf("Unmatched = %d, want 7 (full count, not capped)", s.Unmatched)
	}
	want := []string{"X1", "X2", "X3", "X4", "X5"}
	if !reflect.DeepEqual(s.UnmatchedSamples, want) {
		t.Errorf("UnmatchedSamples = %v, want %v (first-seen order, capped at %d)",
			s.UnmatchedSamples, want, UnmatchedSampleCap)
	}
}

func TestSummarize_EmptyResult(t *testing.T) {
	s, err := Summarize(joinResult(t), "Product Name")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.Total != 0 || s.Matched != 0 || s.Unmatched != 0 || len(s.UnmatchedSamples) != 0 {
		t.Errorf("summary of empty result = %+v, want all zero", s)
	}
}

func TestSummarize_NilFirstReturnCountsUnmatched(t *testing.T) {
	// A reference row whose first return column is empty is counted as
	// unmatched even though the key did hit the index.
	ref := table.New([]string{"Code", "Name"})
	ref.Append(table.Row{"A001", nil})
	ix, err := BuildIndex(ref, "Code", []string{"Name"})
	if err != nil {
		t.Fatal(err)
	}

	primary := table.New([]string{"Code"})
	primary.Append(table.Row{"A001"})

	res, err := Join(primary, "Code", ix)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Summarize(res, "Name")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.Matched != 0 || s.Unmatched != 1 {
		t.Errorf("summary = %+v, want Matched 0, Unmatched 1", s)
	}
}

func TestSummarize_ReturnColumnSharesPrimaryName(t *testing.T) {
	// The primary table already has a Name column; the job also returns
	// Name from the reference. The summary must count from the return
	// column, not the identically named primary one.
	primary := table.New([]string{"Code", "Name"})
	primary.Append(table.Row{"Z999", "local name"})
	primary.Append(table.Row{"A001", "another local name"})

	ref := table.New([]string{"Code", "Name"})
	ref.Append(table.Row{"A001", "master name"})
	ix, err := BuildIndex(ref, "Code", []string{"Name"})
	if err != nil {
		t.Fatal(err)
	}

	res, err := Join(primary, "Code", ix)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Summarize(res, "Name")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.Matched != 1 || s.Unmatched != 1 {
		t.Errorf("summary = %+v, want Matched 1, Unmatched 1", s)
	}
	if !reflect.DeepEqual(s.UnmatchedSamples, []string{"Z999"}) {
		t.Errorf("UnmatchedSamples = %v, want [Z999]", s.UnmatchedSamples)
	}
}

func TestSummarize_MissingColumn(t *testing.T) {
	res := joinResult(t, table.Row{"ORD-1", "A001", 2.0})

	_, err := Summarize(res, "Nope")
	if err == nil {
		t.Fatal("Summarize() expected error for missing column")
	}
}
