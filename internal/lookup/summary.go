package lookup

// UnmatchedSampleCap bounds how many distinct unmatched keys a summary
// carries for display. Full figures are always reported through the
// Matched and Unmatched counts.
const UnmatchedSampleCap = 5

// MatchSummary aggregates the outcome of one join. It is derived
// read-only from a completed JoinResult and never mutated afterwards.
type MatchSummary struct {
	Total            int
	Matched          int
	Unmatched        int
	UnmatchedSamples []string
}

// Summarize derives match statistics from a join result.
//
// A row counts as matched when its first return column is non-nil. A
// reference row that legitimately supplies an empty first return column
// is therefore indistinguishable from a non-match and counts as
// unmatched; this mirrors spreadsheet behavior and is intentional.
//
// UnmatchedSamples holds the distinct unmatched search keys in
// first-seen order, truncated to UnmatchedSampleCap.
//
// firstReturnColumn is resolved among the return columns only. A
// primary column with the same name never shadows it, so counts stay
// correct when a job returns a column the primary table also carries.
func Summarize(res *JoinResult, firstReturnColumn string) (MatchSummary, error) {
	pos := -1
	for i := res.primaryWidth; i < len(res.Table.Columns); i++ {
		if res.Table.Columns[i] == firstReturnColumn {
			pos = i
			break
		}
	}
	if pos < 0 {
		return MatchSummary{}, &SchemaError{
			Table:     "result",
			Column:    firstReturnColumn,
			Available: res.Table.Columns[res.primaryWidth:],
		}
	}

	s := MatchSummary{Total: res.Table.Len()}
	for _, row := range res.Table.Rows {
		if row[pos] != nil {
			s.Matched++
		}
	}
	s.Unmatched = s.Total - s.Matched

	seen := make(map[string]bool, len(res.UnmatchedKeys))
	for _, key := range res.UnmatchedKeys {
		if seen[key] {
			continue
		}
		seen[key] = true
		s.UnmatchedSamples = append(s.UnmatchedSamples, key)
		if len(s.UnmatchedSamples) == UnmatchedSampleCap {
			break
		}
	}

	return s, nil
}
