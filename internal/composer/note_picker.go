package composer

// Layered note weightings
const (
	baseChromaticProbability = 0.005
	scaleProbability         = 0.075
	pentatonicProbability    = 0.125
	chordProbability         = 0.1625
)

// NotePicker chooses melody pitches from the key, its pentatonic subset
// and the underlying chord. One picker lives for the whole of a part.
type NotePicker struct {
	key        PitchClass
	scale      ScaleKind
	pentatonic ScaleKind
	chord      ChordShape
	current    PitchClass
	rng        Rand
}

// NewNotePicker creates a picker for a key, starting over the tonic triad
func NewNotePicker(key PitchClass, minor bool, rng Rand) *NotePicker {
	scale, pentatonic := ScalesFor(minor)
	chord := MajorTriad
	if minor {
		chord = MinorTriad
	}
	return &NotePicker{
		key:        key,
		scale:      scale,
		pentatonic: pentatonic,
		chord:      chord,
		current:    key,
		rng:        rng,
	}
}

// SetChord changes the underlying chord used for weighting
func (p *NotePicker) SetChord(shape ChordShape) {
	p.chord = shape
}

// Chord returns the underlying chord shape
func (p *NotePicker) Chord() ChordShape {
	return p.chord
}

// CurrentNote is the last picked pitch class
func (p *NotePicker) CurrentNote() PitchClass {
	return p.current
}

// Probabilities rebuilds the weight of every pitch class. Layers are additive
// and the result is not normalised.
func (p *NotePicker) Probabilities() [NumPitchClasses]float64 {
	var probs [NumPitchClasses]float64
	for i := range probs {
		probs[i] = baseChromaticProbability
	}
	p.addLayer(&probs, p.scale.Intervals(), scaleProbability)
	p.addLayer(&probs, p.pentatonic.Intervals(), pentatonicProbability)
	p.addLayer(&probs, p.chord.Intervals(), chordProbability)
	return probs
}

func (p *NotePicker) addLayer(probs *[NumPitchClasses]float64, intervals []int, weight float64) {
	for _, interval := range intervals {
		probs[Wrap(int(p.key)+interval)] += weight
	}
}

// PickNote draws the next melody pitch class.
// A draw landing exactly on a boundary, or past the last cumulative
// weight, selects pitch class 0.
func (p *NotePicker) PickNote() PitchClass {
	probs := p.Probabilities()

	var roulette [NumPitchClasses]float64
	total := 0.0
	for i, w := range probs {
		total += w
		roulette[i] = total
	}

	u := p.rng.Float64()
	index := 0
	for i := range roulette {
		if i == 0 {
			if u < roulette[0] {
				index = 0
				break
			}
			continue
		}
		if u > roulette[i-1] && u < roulette[i] {
			index = i
			break
		}
	}

	p.current = PitchClass(index)
	return p.current
}
