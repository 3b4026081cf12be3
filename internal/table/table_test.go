package table

import (
	"reflect"
	"testing"
)

func TestAppend_PadsAndTruncates(t *testing.T) {
	tbl := New([]string{"A", "B", "C"})

	tbl.Append(Row{"x"})
	tbl.Append(Row{"x", "y", "z", "extra"})

	if got := tbl.Rows[0]; len(got) != 3 || got[1] != nil || got[2] != nil {
		t.Errorf("short row = %v, want padded to 3 with nils", got)
	}
	if got := tbl.Rows[1]; len(got) != 3 || got[2] != "z" {
		t.Errorf("long row = %v, want truncated to 3", got)
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := New([]string{"A", "B", "A"}) // duplicate keeps first position

	if i, ok := tbl.ColumnIndex("B"); !ok || i != 1 {
		t.Errorf("ColumnIndex(B) = %d, %v", i, ok)
	}
	if i, ok := tbl.ColumnIndex("A"); !ok || i != 0 {
		t.Errorf("ColumnIndex(A) = %d, %v, want first occurrence", i, ok)
	}
	if _, ok := tbl.ColumnIndex("Z"); ok {
		t.Error("ColumnIndex(Z) should not be found")
	}
}

func TestHead(t *testing.T) {
	tbl := New([]string{"A"})
	for _, v := range []string{"1", "2", "3"} {
		tbl.Append(Row{v})
	}

	head := tbl.Head(2)
	if head.Len() != 2 {
		t.Errorf("Head(2).Len() = %d, want 2", head.Len())
	}
	if !reflect.DeepEqual(head.Columns, tbl.Columns) {
		t.Errorf("Head columns = %v, want %v", head.Columns, tbl.Columns)
	}

	// n beyond the row count returns everything.
	if got := tbl.Head(10).Len(); got != 3 {
		t.Errorf("Head(10).Len() = %d, want 3", got)
	}
	if got := tbl.Head(0).Len(); got != 0 {
		t.Errorf("Head(0).Len() = %d, want 0", got)
	}
	if got := tbl.Head(-1).Len(); got != 0 {
		t.Errorf("Head(-1).Len() = %d, want 0", got)
	}
}
