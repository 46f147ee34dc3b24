package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/Conceptual-Machines/ikovsky-api/internal/config"
	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSong(id string) *models.Song {
	return &models.Song{
		ID:         id,
		Name:       "Quiet River",
		MidiBase64: "TVRoZA==",
		Seed:       "42",
		Key:        "C",
		Tempo:      120,
		TimeSig:    "4/4",
		Parts:      2,
		Bars:       48,
	}
}

// exerciseStore runs the behaviour every persistent store shares
func exerciseStore(t *testing.T, store SongStore) {
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSong("song-1")))
	assert.Error(t, store.Create(ctx, testSong("song-1")), "duplicate ids are rejected")

	got, err := store.Get(ctx, "song-1")
	require.NoError(t, err)
	assert.Equal(t, "Quiet River", got.Name)
	assert.Equal(t, "TVRoZA==", got.MidiBase64)
	assert.Equal(t, "42", got.Seed)
	assert.Equal(t, 48, got.Bars)
	assert.False(t, got.Saved)

	require.NoError(t, store.MarkSaved(ctx, "song-1"))
	got, err = store.Get(ctx, "song-1")
	require.NoError(t, err)
	assert.True(t, got.Saved)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.ErrorIs(t, store.MarkSaved(ctx, "missing"), ErrSongNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreConcurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, testSong("shared")))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx, "shared")
			_ = store.MarkSaved(ctx, "shared")
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, got.Saved)
}

func TestMemoryStoreEvictsOldestUnsaved(t *testing.T) {
	ctx := context.Background()
	store := NewBoundedMemoryStore(3)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Create(ctx, testSong(id)))
	}
	require.NoError(t, store.MarkSaved(ctx, "a"))

	require.NoError(t, store.Create(ctx, testSong("d")))
	assert.Equal(t, 3, store.Len())
	_, err := store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrSongNotFound, "oldest unsaved song is evicted")
	for _, id := range []string{"a", "c", "d"} {
		_, err := store.Get(ctx, id)
		assert.NoError(t, err, id)
	}

	for _, id := range []string{"c", "d"} {
		require.NoError(t, store.MarkSaved(ctx, id))
	}
	require.NoError(t, store.Create(ctx, testSong("e")))
	assert.Equal(t, 3, store.Len())
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSongNotFound, "with every song saved the oldest goes")
}

func TestMemoryStoreLimitFromConfig(t *testing.T) {
	store, err := Open(&config.Config{StorageBackend: BackendMemory, MemoryStoreLimit: 1})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Create(ctx, testSong("first")))
	require.NoError(t, store.Create(ctx, testSong("second")))

	_, err = store.Get(ctx, "first")
	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.Equal(t, 1, store.(*MemoryStore).Len())
}

func TestDiscardStore(t *testing.T) {
	ctx := context.Background()
	store := DiscardStore{}

	require.NoError(t, store.Create(ctx, testSong("song-1")))
	_, err := store.Get(ctx, "song-1")
	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.ErrorIs(t, store.MarkSaved(ctx, "song-1"), ErrSongNotFound)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		backend     string
		want        SongStore
		expectError bool
	}{
		{backend: BackendMemory, want: &MemoryStore{}},
		{backend: BackendNone, want: DiscardStore{}},
		{backend: "", want: DiscardStore{}},
		{backend: "cassandra", expectError: true},
		{backend: BackendPostgres, expectError: true}, // no DATABASE_URL
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := Open(&config.Config{StorageBackend: tt.backend})
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)
		})
	}
}
