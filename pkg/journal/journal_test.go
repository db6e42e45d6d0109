package journal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"codeberg.org/miketth/hyprinput/pkg/journal"
	"codeberg.org/miketth/hyprinput/pkg/journal/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriterDrainsOnCancel(t *testing.T) {
	store := memory.NewStore()
	w := journal.NewWriter("session-1", store, 4, zap.NewNop().Sugar())

	require.True(t, w.Offer(journal.Entry{Session: "session-1", Seat: "seat0", Action: "spawn", Arg: "foot"}))
	require.True(t, w.Offer(journal.Entry{Session: "session-1", Seat: "seat0", Action: "close"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := w.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))

	recent, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "close", recent[0].Action)
	assert.Equal(t, "spawn", recent[1].Action)
	assert.Equal(t, "foot", recent[1].Arg)
}

func TestWriterDropsWhenFull(t *testing.T) {
	w := journal.NewWriter("s", memory.NewStore(), 1, zap.NewNop().Sugar())

	assert.True(t, w.Offer(journal.Entry{Action: "close"}))
	assert.False(t, w.Offer(journal.Entry{Action: "close"}))
}

func TestWriterRecordsWhileRunning(t *testing.T) {
	store := memory.NewStore()
	w := journal.NewWriter("s", store, 8, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	w.Offer(journal.Entry{Action: "terminate"})

	require.Eventually(t, func() bool {
		recent, _ := store.Recent(context.Background(), 1)
		return len(recent) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))
}

func TestObserveAction(t *testing.T) {
	store := memory.NewStore()
	w := journal.NewWriter("abc", store, 4, zap.NewNop().Sugar())

	d := input.NewDispatcher(input.Options{}, zap.NewNop().Sugar())
	seat := d.AddSeat("seat0")
	w.ObserveAction(seat, input.SwitchWorkspace(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = w.Run(ctx)

	recent, err := store.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "abc", recent[0].Session)
	assert.Equal(t, "seat0", recent[0].Seat)
	assert.Equal(t, "workspace", recent[0].Action)
	assert.Equal(t, "3", recent[0].Arg)
	assert.False(t, recent[0].At.IsZero())
}
