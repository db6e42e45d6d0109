package memory

import (
	"context"
	"sync"

	"codeberg.org/miketth/hyprinput/pkg/journal"
)

type Store struct {
	lock    sync.Mutex
	entries []journal.Entry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Record(_ context.Context, e journal.Entry) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.entries = append(s.entries, e)
	return nil
}

func (s *Store) Recent(_ context.Context, limit int) ([]journal.Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return newestFirst(s.entries, limit), nil
}

func newestFirst(entries []journal.Entry, limit int) []journal.Entry {
	if limit <= 0 {
		return nil
	}
	out := make([]journal.Entry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out
}
