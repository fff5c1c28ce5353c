package shared

import (
	"testing"
	"time"
)

func TestWindowDefaultsToTrailingThirtyDays(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	start, end, err := Window("", "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !end.Equal(now) {
		t.Fatalf("end = %v, want now", end)
	}
	if !start.Equal(now.AddDate(0, 0, -30)) {
		t.Fatalf("start = %v, want 30 days before now", start)
	}
}

func TestWindowEndOnlyStaysBounded(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	start, end, err := Window("", "2025-06-15", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("end = %v, want %v", end, want)
	}
	if !start.Equal(want.AddDate(0, 0, -30)) {
		t.Fatalf("start = %v, want 30 days before the supplied end", start)
	}
}

func TestWindowStartOnlyEndsNow(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	start, end, err := Window("2025-06-01", "", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(now) {
		t.Fatalf("end = %v, want now", end)
	}
}

func TestWindowRejectsInvertedRange(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	if _, _, err := Window("2025-06-20", "2025-06-10", now); err == nil {
		t.Fatal("expected an error for end before start")
	}
}

func TestWindowRejectsMalformedDates(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	if _, _, err := Window("June 1st", "", now); err == nil {
		t.Fatal("expected an error for an unparseable start")
	}
	if _, _, err := Window("", "30-06-2025", now); err == nil {
		t.Fatal("expected an error for an unparseable end")
	}
}
