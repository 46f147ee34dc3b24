// Package storage persists generated songs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
)

// ErrSongNotFound is returned when no song has the requested id
var ErrSongNotFound = errors.New("song not found")

// Backend names accepted by STORAGE_BACKEND
const (
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
	BackendNone     = "none"
)

// SongStore keeps generated songs so clients can fetch and bookmark them
type SongStore interface {
	Create(ctx context.Context, song *models.Song) error
	Get(ctx context.Context, id string) (*models.Song, error)
	MarkSaved(ctx context.Context, id string) error
}

// DiscardStore drops every song. Generation still works; lookups fail.
type DiscardStore struct{}

func (DiscardStore) Create(context.Context, *models.Song) error { return nil }

func (DiscardStore) Get(_ context.Context, id string) (*models.Song, error) {
	return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
}

func (DiscardStore) MarkSaved(_ context.Context, id string) error {
	return fmt.Errorf("%w: %s", ErrSongNotFound, id)
}

// DefaultMemoryLimit caps a MemoryStore built without an explicit limit
const DefaultMemoryLimit = 1000

// MemoryStore keeps up to limit songs in process memory. When full, the
// oldest unsaved song is evicted; saved songs go only once none are unsaved.
type MemoryStore struct {
	mu    sync.RWMutex
	songs map[string]models.Song
	order []string // ids, oldest first
	limit int
}

func NewMemoryStore() *MemoryStore {
	return NewBoundedMemoryStore(DefaultMemoryLimit)
}

// NewBoundedMemoryStore keeps at most limit songs. A limit of 0 or less
// means DefaultMemoryLimit.
func NewBoundedMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &MemoryStore{songs: make(map[string]models.Song), limit: limit}
}

func (s *MemoryStore) Create(_ context.Context, song *models.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.songs[song.ID]; exists {
		return fmt.Errorf("song %s already exists", song.ID)
	}
	if len(s.songs) >= s.limit {
		s.evict()
	}
	now := time.Now()
	song.CreatedAt, song.UpdatedAt = now, now
	s.songs[song.ID] = *song
	s.order = append(s.order, song.ID)
	return nil
}

// Len reports how many songs are held
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.songs)
}

// evict drops one song. Callers hold the write lock.
func (s *MemoryStore) evict() {
	victim := 0
	for i, id := range s.order {
		if !s.songs[id].Saved {
			victim = i
			break
		}
	}
	delete(s.songs, s.order[victim])
	s.order = slices.Delete(s.order, victim, victim+1)
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	song, ok := s.songs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	return &song, nil
}

func (s *MemoryStore) MarkSaved(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	song, ok := s.songs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	song.Saved = true
	song.UpdatedAt = time.Now()
	s.songs[id] = song
	return nil
}
