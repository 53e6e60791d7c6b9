package analyzers

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var errInvalidTimestamp = errors.New("invalid timestamp format")

// parseTimestamp parses an ISO-8601 timestamp. A trailing literal Z is
// treated as the +00:00 UTC offset; naked timestamps without any offset are
// accepted as-is. Fractional seconds are allowed by both layouts.
func parseTimestamp(raw string) (time.Time, error) {
	s := raw
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range []string{"2006-01-02T15:04:05-07:00", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errInvalidTimestamp, raw)
}

// hourlyKey renders the record's hour (in its own offset) as "HH:00" for
// the hourly distribution view.
func hourlyKey(t time.Time) string {
	return fmt.Sprintf("%02d:00", t.Hour())
}
