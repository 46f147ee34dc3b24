package composer

// verseLayout is one (measures, bars) grouping for a verse
type verseLayout struct {
	measures int
	bars     int
	chance   float64
}

// Verse groupings in roulette order; the last entry takes the remaining mass
var verseLayouts = [...]verseLayout{
	{measures: 1, bars: 4, chance: 0.3},
	{measures: 2, bars: 2, chance: 0.3},
	{measures: 2, bars: 1, chance: 0.2},
	{measures: 1, bars: 8},
}

// Composer writes every part of a song over one shared chord progression
type Composer struct {
	cfg    *Config
	chords *ChordPicker
	parts  []*PartCreator
	tracks []Track
	verses []Verse
	rng    Rand
}

// NewComposer creates a composer for a validated config
func NewComposer(cfg *Config, rng Rand) *Composer {
	return &Composer{
		cfg:    cfg,
		chords: NewChordPicker(cfg.Key, cfg.Minor, cfg.ChordWeightings, rng),
		rng:    rng,
	}
}

// AddPart adds an instrumental part and its empty track
func (c *Composer) AddPart(rhythm bool, instrument, octave, dynMin, dynMax int) {
	c.parts = append(c.parts, NewPartCreator(rhythm, c.cfg, instrument, octave, dynMin, dynMax, c.rng))
	c.tracks = append(c.tracks, Track{Instrument: instrument, Rhythm: rhythm})
}

// Parts returns the part writers in the order they were added
func (c *Composer) Parts() []*PartCreator {
	return c.parts
}

// ChordPicker returns the progression shared by all parts
func (c *Composer) ChordPicker() *ChordPicker {
	return c.chords
}

// Verses returns the distinct verses written so far
func (c *Composer) Verses() []Verse {
	return c.verses
}

func (c *Composer) pickLayout() verseLayout {
	p := c.rng.Float64()
	total := 0.0
	for _, l := range verseLayouts[:len(verseLayouts)-1] {
		total += l.chance
		if p < total {
			return l
		}
	}
	return verseLayouts[len(verseLayouts)-1]
}

// WriteVerse writes one distinct verse for every part.
// The progression advances once per bar and every part writes that bar
// over the same chord.
func (c *Composer) WriteVerse() {
	layout := c.pickLayout()

	verse := Verse{Measures: make([]Measure, len(c.parts))}
	for i := range verse.Measures {
		verse.Measures[i].Iterations = layout.measures
	}

	for range layout.bars {
		chord := c.chords.NextChord()
		verse.Chords = append(verse.Chords, chord)
		for i, part := range c.parts {
			verse.Measures[i].Bars = append(verse.Measures[i].Bars, part.WriteBar(chord))
		}
	}

	c.verses = append(c.verses, verse)
}

// WriteVerses writes the pool of distinct verses
func (c *Composer) WriteVerses() {
	for range c.cfg.NumVerses {
		c.WriteVerse()
	}
}

// WriteSong stitches the written verses into one track per part following
// the verse structure. Each phrase is copied Iterations times.
func (c *Composer) WriteSong() ([]Track, error) {
	if len(c.parts) == 0 {
		return nil, invariant("parts", "no parts added")
	}
	if len(c.verses) < c.cfg.NumVerses {
		return nil, invariant("verses", "%d written, want %d", len(c.verses), c.cfg.NumVerses)
	}
	for i, verse := range c.verses {
		if len(verse.Measures) != len(c.parts) {
			return nil, invariant("verses", "verse %d has %d measures for %d parts", i, len(verse.Measures), len(c.parts))
		}
	}

	tracks := make([]Track, len(c.tracks))
	for i, shell := range c.tracks {
		tracks[i] = Track{Instrument: shell.Instrument, Rhythm: shell.Rhythm}
	}
	for _, v := range c.cfg.VerseStructure {
		verse := c.verses[v]
		for i := range tracks {
			measure := verse.Measures[i]
			for range measure.Iterations {
				for _, bar := range measure.Bars {
					tracks[i].Bars = append(tracks[i].Bars, bar.clone())
				}
			}
		}
	}
	return tracks, nil
}
