package composer

// Part writing probabilities
const (
	rhythmFullChordChance = 0.7
	rhythmTwoNoteChance   = 0.15 // cumulative with the full chord chance
	melodySingleChance    = 0.65

	octaveDecreaseChance = 0.05
	octaveIncreaseChance = 0.95 // draw must exceed this
)

// partialChordTones is how many leading chord tones partial chords sample from
const partialChordTones = 2

// PartCreator writes bars for a single instrumental part.
// Octave and melody state carry over from bar to bar.
type PartCreator struct {
	rhythm     bool
	instrument int
	octave     int
	minDynamic int
	maxDynamic int

	cfg   *Config
	notes *NotePicker
	rng   Rand
}

// NewPartCreator creates a part writer starting at the given octave,
// clamped into the song's octave range
func NewPartCreator(rhythm bool, cfg *Config, instrument, octave, dynMin, dynMax int, rng Rand) *PartCreator {
	return &PartCreator{
		rhythm:     rhythm,
		instrument: instrument,
		octave:     min(max(octave, cfg.MinOctave), cfg.MaxOctave),
		minDynamic: dynMin,
		maxDynamic: dynMax,
		cfg:        cfg,
		notes:      NewNotePicker(cfg.Key, cfg.Minor, rng),
		rng:        rng,
	}
}

func (p *PartCreator) IsRhythm() bool  { return p.rhythm }
func (p *PartCreator) Instrument() int { return p.instrument }
func (p *PartCreator) Octave() int     { return p.octave }

// NotePicker exposes the part's melody picker
func (p *PartCreator) NotePicker() *NotePicker { return p.notes }

// WriteBar fills one bar over the given chord. The chord's shape weights
// melody notes; its pitches feed chords and partial chords.
func (p *PartCreator) WriteBar(chord Chord) Bar {
	beatsPerBar := float64(p.cfg.TimeSignature.BeatsPerBar)
	density := float64(p.cfg.NoteDensity) / 100

	var bar Bar
	beats := 0.0
	for beats < beatsPerBar {
		var event Event
		if p.rng.Float64() < density {
			event = Event{
				Pitches:  p.pickPitches(chord),
				Duration: p.cfg.Durations[p.rng.IntN(len(p.cfg.Durations))],
			}
		} else {
			event = Event{Rest: true, Duration: p.cfg.TimeSignature.NoteValue}
		}

		if beats+event.Duration > beatsPerBar {
			event.Duration = beatsPerBar - beats
		}
		if !event.Rest {
			event.Dynamic = p.rng.IntN(p.maxDynamic-p.minDynamic+1) + p.minDynamic
		}

		bar.Events = append(bar.Events, event)
		beats += event.Duration
	}
	return bar
}

// pickPitches chooses the sounding pitches of a note event and applies
// octave drift
func (p *PartCreator) pickPitches(chord Chord) []int {
	var pitches []int
	if p.rhythm {
		switch {
		case p.rng.Float64() < rhythmFullChordChance:
			pitches = append(pitches, chord.Pitches...)
		case p.rng.Float64() < rhythmFullChordChance+rhythmTwoNoteChance:
			pitches = p.partialChord(chord, 2)
		default:
			pitches = p.partialChord(chord, 1)
		}
	} else {
		if p.rng.Float64() < melodySingleChance {
			p.notes.SetChord(chord.Shape)
			pitches = []int{int(p.notes.PickNote())}
		} else {
			pitches = p.partialChord(chord, p.rng.IntN(2)+1)
		}
	}

	p.driftOctave()

	for i := range pitches {
		pitches[i] += p.octave * NumPitchClasses
	}
	return pitches
}

// partialChord samples n tones, with replacement, from the chord's first two tones
func (p *PartCreator) partialChord(chord Chord, n int) []int {
	tones := min(partialChordTones, len(chord.Pitches))
	pitches := make([]int, n)
	for i := range pitches {
		pitches[i] = chord.Pitches[p.rng.IntN(tones)]
	}
	return pitches
}

// driftOctave moves the register down or up using two independent draws
func (p *PartCreator) driftOctave() {
	if p.rng.Float64() < octaveDecreaseChance && p.octave > p.cfg.MinOctave {
		p.octave--
	} else if p.rng.Float64() > octaveIncreaseChance && p.octave < p.cfg.MaxOctave {
		p.octave++
	}
}
