package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/journal"
	"codeberg.org/miketth/hyprinput/pkg/journal/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type Store struct {
	db      *sql.DB
	querier *Queries
}

func NewStore(filename string, log *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{
		db:      db,
		querier: New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, e journal.Entry) error {
	if err := s.querier.InsertAction(ctx, InsertActionParams{
		Session:   e.Session,
		Seat:      e.Seat,
		Action:    e.Action,
		Arg:       e.Arg,
		CreatedAt: e.At.UnixMilli(),
	}); err != nil {
		return fmt.Errorf("sqlite insert: %w", err)
	}

	return nil
}

func (s *Store) Recent(ctx context.Context, limit int) ([]journal.Entry, error) {
	rows, err := s.querier.RecentActions(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("sqlite select: %w", err)
	}

	out := make([]journal.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, journal.Entry{
			Session: row.Session,
			Seat:    row.Seat,
			Action:  row.Action,
			Arg:     row.Arg,
			At:      time.UnixMilli(row.CreatedAt),
		})
	}
	return out, nil
}
