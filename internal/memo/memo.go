// Package memo maintains the living business-insights document.
//
// The store is the only long-lived mutable state in the server: an
// append-only sequence of insight strings guarded by a mutex. Rendering
// recomputes the document from the current sequence on every read —
// deterministically, or through a summarizer when one is configured,
// falling back to the deterministic form on any summarizer failure.
package memo

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// EmptyMemo is rendered when no insights have been appended yet,
// regardless of summarizer configuration.
const EmptyMemo = "No business insights have been discovered yet."

// Summarizer turns the full insight list into a richer memo body.
// Implementations make a single request with no retries; the store
// imposes the timeout.
type Summarizer interface {
	Summarize(ctx context.Context, insights []string) (string, error)
}

// Store accumulates insights and renders them as a memo document.
type Store struct {
	mu       sync.Mutex
	insights []string

	summarizer Summarizer // nil disables enriched rendering
	timeout    time.Duration
}

// New creates a Store. summarizer may be nil, in which case Render
// always uses the deterministic template. timeout bounds each
// summarizer call; non-positive values get a conservative default.
func New(summarizer Summarizer, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Store{summarizer: summarizer, timeout: timeout}
}

// Append adds an insight to the memo. It never fails and never blocks
// on rendering or the summarizer.
func (s *Store) Append(insight string) {
	s.mu.Lock()
	s.insights = append(s.insights, insight)
	s.mu.Unlock()
}

// Len returns the current number of insights.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.insights)
}

// Render produces the memo document for the insights present at the
// time of the call. It never fails: summarizer errors fall back to the
// deterministic rendering.
func (s *Store) Render(ctx context.Context) string {
	s.mu.Lock()
	snapshot := make([]string, len(s.insights))
	copy(snapshot, s.insights)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return EmptyMemo
	}

	if s.summarizer != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		memo, err := s.summarizer.Summarize(ctx, snapshot)
		if err == nil && strings.TrimSpace(memo) != "" {
			return strings.TrimSpace(memo)
		}
		if err != nil {
			log.Printf("WARNING: memo synthesis failed, using basic format: %v", err)
		}
	}

	return renderBasic(snapshot)
}

// renderBasic is the deterministic memo template. Output is a pure
// function of the insight sequence.
func renderBasic(insights []string) string {
	var b strings.Builder
	b.WriteString("📊 Business Intelligence Memo 📊\n\n")
	b.WriteString("Key Insights Discovered:\n\n")
	for i, insight := range insights {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(insight)
	}

	if len(insights) > 1 {
		b.WriteString("\n\nSummary:\n")
		fmt.Fprintf(&b,
			"Analysis has revealed %d key business insights that suggest opportunities for strategic optimization and growth.",
			len(insights))
	}

	return b.String()
}
