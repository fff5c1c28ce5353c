package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"perfscope/internal/domain/analytics"
)

type fakeOracle struct {
	text string
	err  error
	// barrier lets a test issue a newer generation while a call is in flight.
	barrier func()
}

func (f *fakeOracle) Summarize(ctx context.Context, reasonings []string, criteria []analytics.CriterionAverage) (string, error) {
	if f.barrier != nil {
		f.barrier()
	}
	return f.text, f.err
}

func TestSummarizeSuccess(t *testing.T) {
	svc := NewService(&fakeOracle{text: "solid quarter"}, time.Second)
	gen := svc.Begin()

	text, ok := svc.Summarize(context.Background(), gen, []string{"good work"}, nil)
	if !ok {
		t.Fatal("latest generation must not be discarded")
	}
	if text != "solid quarter" {
		t.Fatalf("unexpected summary %q", text)
	}
}

func TestSummarizeFallbackOnError(t *testing.T) {
	svc := NewService(&fakeOracle{err: errors.New("rate limited")}, time.Second)
	gen := svc.Begin()

	text, ok := svc.Summarize(context.Background(), gen, nil, nil)
	if !ok {
		t.Fatal("failed call for the latest generation still returns the fallback")
	}
	if text != Fallback {
		t.Fatalf("expected fallback text, got %q", text)
	}
}

func TestSummarizeStaleGenerationDiscarded(t *testing.T) {
	svc := NewService(nil, time.Second)
	oracle := &fakeOracle{text: "stale answer", barrier: func() {
		svc.Begin() // a newer request is issued mid-flight
	}}
	svc.Oracle = oracle

	gen := svc.Begin()
	text, ok := svc.Summarize(context.Background(), gen, nil, nil)
	if ok {
		t.Fatalf("stale response must be discarded, got %q", text)
	}
}

func TestBeginMonotonic(t *testing.T) {
	svc := NewService(&fakeOracle{}, time.Second)
	first := svc.Begin()
	second := svc.Begin()
	if second <= first {
		t.Fatalf("generations must increase: %d then %d", first, second)
	}
}

func TestBuildPrompt(t *testing.T) {
	criteria := []analytics.CriterionAverage{
		{Name: "Quality", AverageScore: 7.5, Frequency: 4},
	}
	prompt := BuildPrompt([]string{"shipped the migration", ""}, criteria)

	if !strings.Contains(prompt, "Quality: 7.5") {
		t.Fatalf("prompt missing criteria line: %q", prompt)
	}
	if !strings.Contains(prompt, "shipped the migration") {
		t.Fatalf("prompt missing reasoning: %q", prompt)
	}
	if strings.Contains(prompt, "- \n") {
		t.Fatal("blank reasonings must be skipped")
	}
}

func TestBuildPromptCapsReasonings(t *testing.T) {
	var reasonings []string
	for i := 0; i < 50; i++ {
		reasonings = append(reasonings, "entry")
	}
	prompt := BuildPrompt(reasonings, nil)
	if got := strings.Count(prompt, "- entry"); got != maxReasonings {
		t.Fatalf("expected %d sampled reasonings, got %d", maxReasonings, got)
	}
}

func TestBuildPromptTruncatesOnRuneBoundary(t *testing.T) {
	// A two-byte rune straddling the length cap must be dropped whole, not
	// split into an invalid byte.
	reasoning := strings.Repeat("a", maxReasoningLen-1) + "é"
	prompt := BuildPrompt([]string{reasoning}, nil)

	if !utf8.ValidString(prompt) {
		t.Fatalf("prompt contains invalid UTF-8: %q", prompt)
	}
	if strings.Contains(prompt, "é") {
		t.Fatal("rune straddling the cap must be dropped")
	}
	if !strings.Contains(prompt, strings.Repeat("a", maxReasoningLen-1)) {
		t.Fatal("bytes before the cap must survive truncation")
	}
}
