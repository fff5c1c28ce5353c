package shared

import (
	"errors"
	"time"
)

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// Window parses a start/end pair. A missing end defaults to now and a
// missing start to 30 days before the end, so a lone bound still yields a
// bounded window. An end before the start is rejected.
func Window(startRaw, endRaw string, now time.Time) (time.Time, time.Time, error) {
	end := now
	if endRaw != "" {
		parsed, err := ParseDate(endRaw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -30)
	if startRaw != "" {
		parsed, err := ParseDate(startRaw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date precedes start date")
	}
	return start, end, nil
}
