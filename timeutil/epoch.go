package timeutil

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// NotFound is the sentinel returned for values that cannot be
// interpreted as an epoch timestamp.
const NotFound = "Not found"

// maxEpochSeconds is 9999-12-31T23:59:59Z. Anything past that is
// treated as unrepresentable rather than formatted.
const maxEpochSeconds = 253402300799

const epochLayout = "2006-01-02 15:04:05"

// FormatEpoch interprets v as whole seconds since the Unix epoch and
// renders it as a UTC "YYYY-MM-DD HH:MM:SS" string. Absent, non-numeric,
// or out-of-range values yield the NotFound sentinel. Total: never
// panics, never errors.
func FormatEpoch(v any) string {
	sec, ok := epochSeconds(v)
	if !ok || sec < 0 || sec > maxEpochSeconds {
		return NotFound
	}
	return time.Unix(sec, 0).UTC().Format(epochLayout)
}

func epochSeconds(v any) (int64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			// Tolerate a float-shaped number, truncating to seconds.
			f, ferr := t.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(t), true
	case float32:
		return int64(t), true
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		if t > uint64(maxEpochSeconds) {
			return 0, false
		}
		return int64(t), true
	default:
		return 0, false
	}
}
