package lookup

import (
	"testing"
	"time"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"string passthrough", "A001", "A001"},
		{"whitespace preserved", " A001 ", " A001 "},
		{"case preserved", "a001", "a001"},
		{"integer float", float64(1001), "1001"},
		{"fractional float", 10.5, "10.5"},
		{"int", 42, "42"},
		{"int64", int64(42), "42"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"time", time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), "2024-03-15 09:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.in); got != tt.want {
				t.Errorf("NormalizeKey(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey_Deterministic(t *testing.T) {
	inputs := []any{nil, "A001", 10.5, float64(1001), true}
	for _, in := range inputs {
		first := NormalizeKey(in)
		for i := 0; i < 3; i++ {
			if got := NormalizeKey(in); got != first {
				t.Fatalf("NormalizeKey(%v) not deterministic: %q then %q", in, first, got)
			}
		}
	}
}

func TestNormalizeKey_NumericTextDistinct(t *testing.T) {
	// The text "1001" and the number 1001 happen to normalize to the
	// same string, so a numeric primary key can match a text reference
	// key with the same digits.
	if NormalizeKey("1001") != NormalizeKey(float64(1001)) {
		t.Error("text and numeric 1001 should normalize identically")
	}
	// But formatting differences in the source survive.
	if NormalizeKey("1001.0") == NormalizeKey(float64(1001)) {
		t.Error(`"1001.0" should not equal the display form of 1001`)
	}
}
