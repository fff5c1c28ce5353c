package analytics

import (
	"testing"
	"time"

	"perfscope/internal/domain/reporting"
)

func TestTimeBucketedWeekly(t *testing.T) {
	// 2025-06-03 is a Tuesday; the first bucket starts Sunday 2025-06-01.
	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 13)

	reports := []reporting.Report{
		{ID: "r1", EmployeeID: "e", GoalID: "g", EvaluationScore: 8, SubmissionDate: start.AddDate(0, 0, 1)},
		{ID: "r2", EmployeeID: "e", GoalID: "g", EvaluationScore: 4, SubmissionDate: start.AddDate(0, 0, 8)},
	}

	buckets := TimeBucketed(reports, start, end, GranularityWeekly)
	if len(buckets) != 3 {
		t.Fatalf("a 14-day window spanning 3 calendar weeks must emit 3 buckets, got %d", len(buckets))
	}
	if wd := buckets[0].Start.Weekday(); wd != time.Sunday {
		t.Fatalf("weekly buckets align to Sunday, got %v", wd)
	}
	if buckets[0].Total != 1 || buckets[1].Total != 1 {
		t.Fatalf("unexpected totals: %+v", buckets)
	}
	if buckets[1].RedFlag != 1 {
		t.Fatalf("report scoring 4 is a red flag, got %+v", buckets[1])
	}
	for _, b := range buckets {
		if b.RedFlag > b.Total {
			t.Fatalf("red flag count cannot exceed total in %+v", b)
		}
	}
}

func TestTimeBucketedEmitsEmptyBuckets(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 20)

	buckets := TimeBucketed(nil, start, end, GranularityWeekly)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 empty buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.Total != 0 || b.RedFlag != 0 {
			t.Fatalf("empty series must carry zero counts, got %+v", b)
		}
	}
}

func TestTimeBucketedMonthly(t *testing.T) {
	start := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	reports := []reporting.Report{
		{ID: "r1", EmployeeID: "e", GoalID: "g", EvaluationScore: 9, SubmissionDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)},
	}

	buckets := TimeBucketed(reports, start, end, GranularityMonthly)
	if len(buckets) != 3 {
		t.Fatalf("May through July must emit 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Period != "May 2025" || buckets[2].Period != "Jul 2025" {
		t.Fatalf("unexpected period labels: %+v", buckets)
	}
	if buckets[1].Total != 1 {
		t.Fatalf("June report must land in the June bucket, got %+v", buckets)
	}
}

func TestTimeBucketedReportInExactlyOneBucket(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 27)

	// Boundary report at the exact start of the second week.
	reports := []reporting.Report{
		{ID: "r1", EmployeeID: "e", GoalID: "g", EvaluationScore: 7, SubmissionDate: start.AddDate(0, 0, 7)},
	}

	buckets := TimeBucketed(reports, start, end, GranularityWeekly)
	total := 0
	for _, b := range buckets {
		total += b.Total
	}
	if total != 1 {
		t.Fatalf("boundary report must land in exactly one bucket, counted %d times", total)
	}
	if buckets[1].Total != 1 {
		t.Fatalf("boundary report belongs to the bucket it starts, got %+v", buckets)
	}
}

func TestTimeBucketedInvertedWindow(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if buckets := TimeBucketed(nil, start, start.AddDate(0, 0, -5), GranularityWeekly); len(buckets) != 0 {
		t.Fatalf("inverted window must emit no buckets, got %v", buckets)
	}
}
