package json

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTripsThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, journal.Entry{Session: "a", Seat: "seat0", Action: "spawn", Arg: "foot", At: at}))
	require.NoError(t, store.Record(ctx, journal.Entry{Session: "a", Seat: "seat0", Action: "close", At: at}))
	require.NoError(t, store.Save())
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	recent, err := reopened.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "close", recent[0].Action)
	assert.True(t, at.Equal(recent[0].At))
}

func TestSaveSkipsCleanStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestSaveLooperSavesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(context.Background(), journal.Entry{Action: "terminate"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.SaveLooper(ctx, time.Hour), context.Canceled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"action":"terminate"`)
}

func TestNewStoreRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path)
	assert.Error(t, err)
}
