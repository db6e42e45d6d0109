package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/journal"
)

// Store keeps the journal in memory and writes it to a JSON file
// periodically from SaveLooper.
type Store struct {
	entries []journal.Entry
	file    *os.File
	lock    sync.Mutex
	dirty   bool
}

func NewStore(filename string) (*Store, error) {
	fileExists := true
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		fileExists = false
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	store := &Store{file: file}

	if fileExists && info.Size() > 0 {
		err = store.load()
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.file.Close()
}

func (s *Store) load() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	err = json.NewDecoder(s.file).Decode(&s.entries)
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

func (s *Store) Save() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.dirty {
		return nil
	}

	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	err = s.file.Truncate(0)
	if err != nil {
		return fmt.Errorf("truncate file: %w", err)
	}

	err = json.NewEncoder(s.file).Encode(s.entries)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	s.dirty = false

	return nil
}

func (s *Store) SaveLooper(ctx context.Context, interval time.Duration) error {
	defer s.file.Close()

	for {
		select {
		case <-ctx.Done():
			err := s.Save()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}

			return ctx.Err()
		case <-time.After(interval):
			err := s.Save()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
		}
	}
}

func (s *Store) Record(_ context.Context, e journal.Entry) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.entries = append(s.entries, e)
	s.dirty = true
	return nil
}

func (s *Store) Recent(_ context.Context, limit int) ([]journal.Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var out []journal.Entry
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}
