package summary

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"perfscope/internal/domain/analytics"
)

// Fallback is shown when the oracle rejects or times out; summarization
// failures never propagate.
const Fallback = "A summary could not be generated right now. The metrics below are unaffected."

// Service wraps an Oracle with a timeout and a request-generation guard. Each
// call is tagged with a monotonically increasing id; a response that arrives
// after a newer request has been issued is reported stale so callers discard
// it instead of overwriting a fresher summary.
type Service struct {
	Oracle  Oracle
	Timeout time.Duration

	gen atomic.Uint64
}

func NewService(oracle Oracle, timeout time.Duration) *Service {
	return &Service{Oracle: oracle, Timeout: timeout}
}

// Begin issues a new request generation, invalidating any in-flight call.
func (s *Service) Begin() uint64 {
	return s.gen.Add(1)
}

// Summarize runs the oracle for the given generation. The bool result is
// false when a newer generation was issued while this call was in flight;
// the text must then be discarded. Oracle errors yield the fallback text.
func (s *Service) Summarize(ctx context.Context, generation uint64, reasonings []string, criteria []analytics.CriterionAverage) (string, bool) {
	if s.Oracle == nil {
		return Fallback, generation == s.gen.Load()
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	text, err := s.Oracle.Summarize(ctx, reasonings, criteria)
	if err != nil {
		slog.Warn("summarization failed", "err", err)
		text = Fallback
	}

	if generation != s.gen.Load() {
		return "", false
	}
	return text, true
}
