package analytics

import (
	"time"

	"perfscope/internal/domain/reporting"
)

// TimeBucketed splits the window into gapless calendar-aligned buckets and
// counts total and red-flag reports per bucket. Weekly buckets start on the
// Sunday on or before start; monthly buckets are calendar months. Empty
// buckets are emitted so charts get a contiguous series. A report falls into
// exactly the first bucket whose range contains its submission date.
func TimeBucketed(reports []reporting.Report, start, end time.Time, granularity string) []TimeBucket {
	if end.Before(start) {
		return []TimeBucket{}
	}

	buckets := []TimeBucket{}
	var cursor time.Time
	switch granularity {
	case GranularityMonthly:
		cursor = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	default:
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		cursor = day.AddDate(0, 0, -int(day.Weekday()))
	}

	for !cursor.After(end) {
		var label string
		var next time.Time
		if granularity == GranularityMonthly {
			label = cursor.Format("Jan 2006")
			next = cursor.AddDate(0, 1, 0)
		} else {
			label = cursor.Format("Jan 2")
			next = cursor.AddDate(0, 0, 7)
		}
		buckets = append(buckets, TimeBucket{Period: label, Start: cursor})

		bucketIdx := len(buckets) - 1
		for _, r := range reports {
			if r.SubmissionDate.Before(cursor) || !r.SubmissionDate.Before(next) {
				continue
			}
			buckets[bucketIdx].Total++
			if r.EvaluationScore < RedFlagThreshold {
				buckets[bucketIdx].RedFlag++
			}
		}

		cursor = next
	}

	return buckets
}
