package composer

// altShapeChance is the probability a selection uses the slot's alternate shape
const altShapeChance = 0.15

// ChordPicker walks the diatonic progression of one key.
// A single picker is shared by every part of a song so that all parts
// hear the same chord on the same bar.
type ChordPicker struct {
	key      PitchClass
	minor    bool
	weights  [NumScaleDegrees]float64
	slots    [NumScaleDegrees]DiatonicSlot
	position int
	current  Chord
	rng      Rand
}

// NewChordPicker creates a picker positioned on the tonic (degree I).
// The weights array is copied.
func NewChordPicker(key PitchClass, minor bool, weights [NumScaleDegrees]float64, rng Rand) *ChordPicker {
	slots := Progression(minor)
	return &ChordPicker{
		key:      key,
		minor:    minor,
		weights:  weights,
		slots:    slots,
		position: 1,
		current:  chordFor(slots[0], slots[0].Primary, 1, key),
		rng:      rng,
	}
}

// SelectIndex performs roulette selection over the weights with a single draw.
// When the weights sum below the draw nothing matches and degree I (index 0) wins.
func SelectIndex(weights [NumScaleDegrees]float64, rng Rand) int {
	p := rng.Float64()
	total := 0.0
	for i, w := range weights {
		if p < total+w {
			return i
		}
		total += w
	}
	return 0
}

// NextChord selects and returns the next chord of the progression
func (p *ChordPicker) NextChord() Chord {
	index := SelectIndex(p.weights, p.rng)
	slot := p.slots[index]
	shape := slot.Resolve(p.rng.Float64() < altShapeChance)

	p.position = index + 1
	p.current = chordFor(slot, shape, p.position, p.key)
	return p.current.clone()
}

func chordFor(slot DiatonicSlot, shape ChordShape, position int, key PitchClass) Chord {
	pitches := shape.Intervals()
	for i := range pitches {
		pitches[i] += slot.Root + int(key)
	}
	return Chord{
		Position: position,
		Shape:    shape,
		Root:     Wrap(slot.Root + int(key)),
		Pitches:  pitches,
	}
}

// CurrentPosition is the last selected scale degree (1-7)
func (p *ChordPicker) CurrentPosition() int {
	return p.position
}

// CurrentChord returns a copy of the last selected chord
func (p *ChordPicker) CurrentChord() Chord {
	return p.current.clone()
}

// Weights returns a copy of the weighting vector
func (p *ChordPicker) Weights() [NumScaleDegrees]float64 {
	return p.weights
}

func (p *ChordPicker) Key() PitchClass { return p.key }

func (p *ChordPicker) Minor() bool { return p.minor }
