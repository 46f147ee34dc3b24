package services

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Conceptual-Machines/ikovsky-api/internal/composer"
	"github.com/Conceptual-Machines/ikovsky-api/internal/logger"
	"github.com/Conceptual-Machines/ikovsky-api/internal/metrics"
	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
	"github.com/Conceptual-Machines/ikovsky-api/internal/names"
	"github.com/Conceptual-Machines/ikovsky-api/internal/params"
	"github.com/Conceptual-Machines/ikovsky-api/internal/score"
	"github.com/Conceptual-Machines/ikovsky-api/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// SongService turns song requests into stored, encoded songs
type SongService struct {
	store    storage.SongStore
	backend  string
	names    *names.Generator
	recorder metrics.Recorder
	slots    *semaphore.Weighted
	maxSlots int

	active    atomic.Int64
	generated atomic.Uint64
	failed    atomic.Uint64

	newID   func() string
	newSeed func() uint64
}

// SongServiceOptions configures a SongService. Zero values pick defaults.
type SongServiceOptions struct {
	Backend       string
	Names         *names.Generator
	Recorder      metrics.Recorder
	MaxConcurrent int
}

func NewSongService(store storage.SongStore, opts SongServiceOptions) *SongService {
	if opts.Names == nil {
		opts.Names = names.New()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.Nop{}
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	return &SongService{
		store:    store,
		backend:  opts.Backend,
		names:    opts.Names,
		recorder: opts.Recorder,
		slots:    semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		maxSlots: opts.MaxConcurrent,
		newID:    uuid.NewString,
		newSeed:  composer.NewSeed,
	}
}

// Stats is a snapshot of generation activity since the service started
type Stats struct {
	ActiveGenerations int    `json:"active_generations"`
	MaxConcurrent     int    `json:"max_concurrent"`
	SongsGenerated    uint64 `json:"songs_generated"`
	FailedGenerations uint64 `json:"failed_generations"`
}

func (s *SongService) Stats() Stats {
	return Stats{
		ActiveGenerations: int(s.active.Load()),
		MaxConcurrent:     s.maxSlots,
		SongsGenerated:    s.generated.Load(),
		FailedGenerations: s.failed.Load(),
	}
}

// Generate composes, encodes, names and stores one song. The seed decides
// every random choice, so repeating a request with its returned seed
// reproduces the same song.
func (s *SongService) Generate(ctx context.Context, req models.GenerateSongRequest) (*models.SongResponse, error) {
	seed := s.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for a generation slot: %w", err)
	}
	defer s.slots.Release(1)
	s.active.Add(1)
	defer s.active.Add(-1)

	resp, err := s.generate(ctx, seed, req)
	if err != nil {
		s.failed.Add(1)
		return nil, err
	}
	s.generated.Add(1)
	return resp, nil
}

func (s *SongService) generate(ctx context.Context, seed uint64, req models.GenerateSongRequest) (*models.SongResponse, error) {
	rng := composer.NewRand(seed)
	cfg, err := params.Parse(req.Request, rng)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	song, err := composer.Compose(cfg, rng)
	if err != nil {
		s.recorder.RecordGeneration(ctx, metrics.Generation{Parts: cfg.NumParts, Duration: time.Since(start)})
		return nil, fmt.Errorf("failed to compose song: %w", err)
	}

	midi, err := score.EncodeBase64(song.Tracks, cfg)
	if err != nil {
		s.recorder.RecordGeneration(ctx, metrics.Generation{Parts: cfg.NumParts, Duration: time.Since(start)})
		return nil, fmt.Errorf("failed to encode song: %w", err)
	}
	elapsed := time.Since(start)

	record := &models.Song{
		ID:         s.newID(),
		Name:       s.names.Generate(rng),
		MidiBase64: midi,
		Seed:       strconv.FormatUint(seed, 10),
		Key:        req.Key,
		Tempo:      cfg.Tempo,
		TimeSig:    cfg.TimeSignature.String(),
		Parts:      len(song.Tracks),
		Bars:       song.Bars(),
	}
	s.recorder.RecordGeneration(ctx, metrics.Generation{
		Parts:    record.Parts,
		Bars:     record.Bars,
		Duration: elapsed,
		Success:  true,
	})

	storeStart := time.Now()
	err = s.store.Create(ctx, record)
	s.recorder.RecordStorage(ctx, s.backend, "create", time.Since(storeStart), err)
	if err != nil {
		return nil, fmt.Errorf("failed to store song: %w", err)
	}

	logger.LogGenerationRequest(ctx, logger.GenerationStats{
		SongID:   record.ID,
		Seed:     seed,
		Key:      record.Key,
		TimeSig:  record.TimeSig,
		Parts:    record.Parts,
		Verses:   len(song.Verses),
		Bars:     record.Bars,
		Duration: elapsed,
	}, logger.Fields{"storage": s.backend})

	return &models.SongResponse{
		ID:         record.ID,
		SongName:   record.Name,
		MidiBase64: record.MidiBase64,
		Seed:       seed,
	}, nil
}

// Get fetches a stored song
func (s *SongService) Get(ctx context.Context, id string) (*models.SongResponse, error) {
	start := time.Now()
	song, err := s.store.Get(ctx, id)
	s.recorder.RecordStorage(ctx, s.backend, "get", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseUint(song.Seed, 10, 64)
	if err != nil {
		logger.Warn("Stored song has an unreadable seed", logger.Fields{"song_id": id, "seed": song.Seed})
	}
	return &models.SongResponse{
		ID:         song.ID,
		SongName:   song.Name,
		MidiBase64: song.MidiBase64,
		Seed:       seed,
		Saved:      song.Saved,
	}, nil
}

// Save bookmarks a stored song
func (s *SongService) Save(ctx context.Context, id string) error {
	start := time.Now()
	err := s.store.MarkSaved(ctx, id)
	s.recorder.RecordStorage(ctx, s.backend, "save", time.Since(start), err)
	return err
}
