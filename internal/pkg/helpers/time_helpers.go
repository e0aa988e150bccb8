package helpers

import "time"

// StampLayout is the storage format for record timestamps. The fixed-width
// fractional part keeps lexicographic TEXT ordering identical to
// chronological ordering in SQL.
const StampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DateLayout is the calendar date format used by attendance records.
const DateLayout = "2006-01-02"

// NowStamp returns the current UTC time formatted for storage.
func NowStamp() string {
	return time.Now().UTC().Format(StampLayout)
}

// Today returns the server's local calendar date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether s is a calendar date in strict YYYY-MM-DD form.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	// time.Parse tolerates some non-padded inputs; require the canonical form.
	return t.Format(DateLayout) == s
}
