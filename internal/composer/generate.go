package composer

// Song is the result of one generation run
type Song struct {
	Tracks []Track
	Verses []Verse
}

// Bars counts the bars across all tracks
func (s Song) Bars() int {
	n := 0
	for _, t := range s.Tracks {
		n += len(t.Bars)
	}
	return n
}

// Generate composes every track of a song. It fails before producing any
// output if the config breaks an engine invariant.
func Generate(cfg *Config, rng Rand) ([]Track, error) {
	song, err := Compose(cfg, rng)
	if err != nil {
		return nil, err
	}
	return song.Tracks, nil
}

// Compose is Generate that also returns the distinct verses the tracks were
// stitched from
func Compose(cfg *Config, rng Rand) (*Song, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := NewComposer(cfg, rng)
	for range cfg.NumParts {
		octave := cfg.MaxOctave
		if cfg.MaxOctave != cfg.MinOctave {
			octave = rng.IntN(cfg.MaxOctave-cfg.MinOctave) + cfg.MinOctave + 1
		}
		rhythm := rng.Float64() < cfg.RhythmChance
		c.AddPart(rhythm, cfg.Instrument, octave, cfg.MinDynamic, cfg.MaxDynamic)
	}

	c.WriteVerses()
	tracks, err := c.WriteSong()
	if err != nil {
		return nil, err
	}
	return &Song{Tracks: tracks, Verses: c.Verses()}, nil
}
