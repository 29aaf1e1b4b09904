// Package memory is an in-process SummaryWriter used in tests and when no
// spreadsheet is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	ports "grana/internal/sheets"
)

type Store struct {
	mu    sync.Mutex
	items []ports.PeriodSummary
}

func New() *Store {
	return &Store{}
}

var _ ports.SummaryWriter = (*Store)(nil)

// AppendSummary stores the summary and returns a synthetic row reference.
func (s *Store) AppendSummary(_ context.Context, summary ports.PeriodSummary) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, summary)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Summaries returns a copy of everything appended so far.
func (s *Store) Summaries() []ports.PeriodSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.PeriodSummary(nil), s.items...)
}
