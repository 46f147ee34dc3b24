package composer

import (
	"fmt"
	"slices"
)

// Note durations in beats (quarter note = 1 beat)
const (
	WholeNote     = 4.0
	HalfNote      = 2.0
	QuarterNote   = 1.0
	EighthNote    = 0.5
	SixteenthNote = 0.25
)

// Macro structure defaults
const (
	songDurationLower = 6
	songDurationUpper = 12
	songVersesLower   = 2
	songVersesUpper   = 8

	DefaultRhythmChance = 0.4
)

// Probabilities for the number of parts in a song (1 to 4)
var numPartsWeights = [...]float64{0.05, 0.4, 0.4, 0.15}

// DefaultDurations is the catalog notes draw their length from
func DefaultDurations() []float64 {
	return []float64{HalfNote, QuarterNote, WholeNote, EighthNote, SixteenthNote}
}

// TimeSignature holds the bar length and the rest unit.
// BeatsPerBar counts quarter-note beats; NoteValue is the length of one rest.
type TimeSignature struct {
	BeatsPerBar int
	Denominator int
	NoteValue   float64
}

func (t TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", t.BeatsPerBar, t.Denominator)
}

// Structure is the pre-rolled macro layout of a song
type Structure struct {
	Duration       int   // number of verse/chorus slots (ABACA = 5)
	NumVerses      int   // number of distinct verses (ABACA = 3)
	VerseStructure []int // verse index per slot (ABACA = 0,1,0,2,0)
	NumParts       int
}

// Config is the validated, song-level input to the engine.
// It is built once per request and must be treated as read-only afterwards.
type Config struct {
	Key           PitchClass
	Minor         bool
	Tempo         int
	TimeSignature TimeSignature

	MinOctave int
	MaxOctave int

	MinDynamic int
	MaxDynamic int

	NoteDensity     int // chance out of 100 that a slot holds a note rather than a rest
	ChordWeightings [NumScaleDegrees]float64
	Durations       []float64

	Instrument   int
	RhythmChance float64

	Structure
}

// RollStructure draws the song's macro layout
func RollStructure(rng Rand) Structure {
	s := Structure{
		Duration:  rng.IntN(songDurationUpper-songDurationLower) + songDurationLower,
		NumVerses: rng.IntN(songVersesUpper-songVersesLower) + songVersesLower,
	}
	s.VerseStructure = make([]int, s.Duration)
	for i := range s.VerseStructure {
		s.VerseStructure[i] = rng.IntN(s.NumVerses)
	}
	s.NumParts = rollNumParts(rng)
	return s
}

func rollNumParts(rng Rand) int {
	p := rng.Float64()
	total := 0.0
	for i, w := range numPartsWeights[:len(numPartsWeights)-1] {
		total += w
		if p < total {
			return i + 1
		}
	}
	return len(numPartsWeights)
}

// ClampWeight bounds a chord weighting to [0,1]
func ClampWeight(w float64) float64 {
	return min(max(w, 0), 1)
}

// Validate checks the invariants the engine relies on for termination
// and well-formed output.
func (c *Config) Validate() error {
	if c == nil {
		return invariant("config", "is nil")
	}
	if c.TimeSignature.BeatsPerBar <= 0 {
		return invariant("beatsPerBar", "must be positive, got %d", c.TimeSignature.BeatsPerBar)
	}
	if c.TimeSignature.NoteValue <= 0 {
		return invariant("noteValue", "must be positive, got %g", c.TimeSignature.NoteValue)
	}
	if len(c.Durations) == 0 {
		return invariant("durations", "catalog is empty")
	}
	if slices.Min(c.Durations) <= 0 {
		return invariant("durations", "catalog entries must be positive, got %v", c.Durations)
	}
	if c.NumParts <= 0 {
		return invariant("numParts", "must be positive, got %d", c.NumParts)
	}
	if c.NumVerses <= 0 {
		return invariant("numVerses", "must be positive, got %d", c.NumVerses)
	}
	if len(c.VerseStructure) != c.Duration {
		return invariant("verseStructure", "has %d entries, want %d", len(c.VerseStructure), c.Duration)
	}
	for i, v := range c.VerseStructure {
		if v < 0 || v >= c.NumVerses {
			return invariant("verseStructure", "entry %d is %d, want [0,%d)", i, v, c.NumVerses)
		}
	}
	if c.MinOctave > c.MaxOctave {
		return invariant("octave", "bounds inverted (%d > %d)", c.MinOctave, c.MaxOctave)
	}
	if c.MinDynamic > c.MaxDynamic {
		return invariant("dynamic", "bounds inverted (%d > %d)", c.MinDynamic, c.MaxDynamic)
	}
	for i, w := range c.ChordWeightings {
		if w < 0 || w > 1 {
			return invariant("chordWeightings", "entry %d is %g, want [0,1]", i, w)
		}
	}
	return nil
}
