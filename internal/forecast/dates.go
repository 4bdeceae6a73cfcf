package forecast

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DateKey truncates a forecast timestamp to its calendar day, keeping the
// day as encoded in the timestamp's own offset (no zone normalization).
// Timestamps that are not valid RFC 3339 fall back to reading the first ten
// characters as a plain YYYY-MM-DD date.
func DateKey(ts string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}

	if len(ts) >= len(dayKeyLayout) {
		if t, err := time.Parse(dayKeyLayout, ts[:len(dayKeyLayout)]); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable forecast timestamp %q", ts)
}
