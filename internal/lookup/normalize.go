// Package lookup implements the key-based left-join engine: key
// normalization, reference-table indexing with first-occurrence-wins
// deduplication, the join itself, match statistics, and collision-free
// output path naming.
package lookup

import (
	"fmt"
	"strconv"
	"time"
)

// NormalizeKey converts a raw cell value into the comparable key string
// used for join equality. The conversion is the value's display form:
// no trimming, case folding, or locale transforms are applied. A nil or
// empty cell normalizes to the empty string, which may legitimately
// match reference rows whose key is also empty.
func NormalizeKey(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", val)
	}
}
