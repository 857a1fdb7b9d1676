package memory

import (
	"context"
	"slices"

	"junebug/internal/domain/errs"
	"junebug/internal/domain/journal"
)

type JournalRepository struct {
	s *Store
}

func (r *JournalRepository) Append(_ context.Context, e *journal.Entry) error {
	if e.Message == "" {
		return errs.Invalid("message is required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.journal = append(r.s.journal, *e)
	return nil
}

func (r *JournalRepository) List(_ context.Context) ([]journal.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.journal == nil {
		return []journal.Entry{}, nil
	}
	return slices.Clone(r.s.journal), nil
}
