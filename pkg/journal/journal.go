package journal

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"go.uber.org/zap"
)

// Entry is one executed action.
type Entry struct {
	Session string    `json:"session"`
	Seat    string    `json:"seat"`
	Action  string    `json:"action"`
	Arg     string    `json:"arg,omitempty"`
	At      time.Time `json:"at"`
}

type Store interface {
	Record(ctx context.Context, e Entry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Writer moves entries from the input loop to a store. Offering never
// blocks, entries are dropped when the buffer is full.
type Writer struct {
	session string
	store   Store
	entries chan Entry
	log     *zap.SugaredLogger
	now     func() time.Time
}

func NewWriter(session string, store Store, buffer int, log *zap.SugaredLogger) *Writer {
	return &Writer{
		session: session,
		store:   store,
		entries: make(chan Entry, buffer),
		log:     log,
		now:     time.Now,
	}
}

// ObserveAction has the signature the dispatcher expects for OnAction.
func (w *Writer) ObserveAction(seat *input.Seat, a input.Action) {
	w.Offer(Entry{
		Session: w.session,
		Seat:    seat.Name(),
		Action:  a.Kind.String(),
		Arg:     a.Arg(),
		At:      w.now(),
	})
}

func (w *Writer) Offer(e Entry) bool {
	select {
	case w.entries <- e:
		return true
	default:
		w.log.Warnw("journal buffer full, dropping entry", "action", e.Action)
		return false
	}
}

// Run stores entries until ctx is done, then stores what is still buffered.
func (w *Writer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if err := w.drain(); err != nil {
				return err
			}
			return ctx.Err()
		case e := <-w.entries:
			if err := w.store.Record(ctx, e); err != nil {
				return fmt.Errorf("record entry: %w", err)
			}
		}
	}
}

func (w *Writer) drain() error {
	for {
		select {
		case e := <-w.entries:
			if err := w.store.Record(context.Background(), e); err != nil {
				return fmt.Errorf("record entry: %w", err)
			}
		default:
			return nil
		}
	}
}
