package composer

import "slices"

// NumPitchClasses is the size of the chromatic scale
const NumPitchClasses = 12

// NumScaleDegrees is the number of diatonic chords within a key
const NumScaleDegrees = 7

// PitchClass is a chromatic scale position in [0,11] (C = 0)
type PitchClass int

var pitchClassNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Wrap folds any pitch offset back into the chromatic range
func Wrap(pitch int) PitchClass {
	pc := pitch % NumPitchClasses
	if pc < 0 {
		pc += NumPitchClasses
	}
	return PitchClass(pc)
}

func (p PitchClass) String() string {
	return pitchClassNames[Wrap(int(p))]
}

// ScaleKind identifies one of the fixed scales used for melodic weighting
type ScaleKind int

const (
	ScaleMajor ScaleKind = iota
	ScaleMinor
	ScaleMajorPentatonic
	ScaleMinorPentatonic
)

var scaleIntervals = map[ScaleKind][]int{
	ScaleMajor:           {0, 2, 4, 5, 7, 9, 11},
	ScaleMinor:           {0, 2, 3, 5, 7, 8, 10},
	ScaleMajorPentatonic: {0, 2, 4, 7, 9},
	ScaleMinorPentatonic: {0, 3, 5, 7, 10},
}

// Intervals returns a fresh copy of the scale's offsets from the tonic
func (s ScaleKind) Intervals() []int {
	return slices.Clone(scaleIntervals[s])
}

func (s ScaleKind) String() string {
	switch s {
	case ScaleMajor:
		return "major"
	case ScaleMinor:
		return "minor"
	case ScaleMajorPentatonic:
		return "major pentatonic"
	case ScaleMinorPentatonic:
		return "minor pentatonic"
	default:
		return "unknown"
	}
}

// ScalesFor returns the natural scale and its relative pentatonic for a tonality
func ScalesFor(minor bool) (natural, pentatonic ScaleKind) {
	if minor {
		return ScaleMinor, ScaleMinorPentatonic
	}
	return ScaleMajor, ScaleMajorPentatonic
}

// ChordShape identifies a fixed set of intervals stacked on a root
type ChordShape int

const (
	MajorTriad ChordShape = iota
	MinorTriad
	Fifth
	MajorSeventh
	MinorSeventh
	Diminished
)

var chordIntervals = map[ChordShape][]int{
	MajorTriad:   {0, 4, 7},
	MinorTriad:   {0, 3, 7},
	Fifth:        {0, 7},
	MajorSeventh: {0, 4, 7, 10},
	MinorSeventh: {0, 3, 7, 9},
	Diminished:   {0, 3, 6},
}

// Intervals returns a fresh copy of the shape's intervals from its root.
// Callers may mutate the result freely.
func (c ChordShape) Intervals() []int {
	return slices.Clone(chordIntervals[c])
}

func (c ChordShape) String() string {
	switch c {
	case MajorTriad:
		return "major"
	case MinorTriad:
		return "minor"
	case Fifth:
		return "fifth"
	case MajorSeventh:
		return "major seventh"
	case MinorSeventh:
		return "minor seventh"
	case Diminished:
		return "diminished"
	default:
		return "unknown"
	}
}

// DiatonicSlot describes the chord built on one scale degree
type DiatonicSlot struct {
	Primary   ChordShape
	Alternate ChordShape
	Root      int // semitones above the tonic
}

// Resolve picks the slot's shape for a single chord selection
func (s DiatonicSlot) Resolve(alternate bool) ChordShape {
	if alternate {
		return s.Alternate
	}
	return s.Primary
}

// I, ii, iii, IV, V, vi, vii(dim)
var majorProgression = [NumScaleDegrees]DiatonicSlot{
	{Primary: MajorTriad, Root: 0, Alternate: Fifth},
	{Primary: MinorTriad, Root: 2, Alternate: MinorSeventh},
	{Primary: MinorTriad, Root: 4, Alternate: MinorSeventh},
	{Primary: MajorTriad, Root: 5, Alternate: MajorSeventh},
	{Primary: MajorTriad, Root: 7, Alternate: MajorSeventh},
	{Primary: MinorTriad, Root: 9, Alternate: MinorSeventh},
	{Primary: Fifth, Root: 11, Alternate: Diminished},
}

var minorProgression = [NumScaleDegrees]DiatonicSlot{
	{Primary: MinorTriad, Root: 0, Alternate: Fifth},
	{Primary: Fifth, Root: 2, Alternate: Diminished},
	{Primary: MajorTriad, Root: 3, Alternate: MajorSeventh},
	{Primary: MinorTriad, Root: 5, Alternate: MinorSeventh},
	{Primary: MinorTriad, Root: 7, Alternate: MinorSeventh},
	{Primary: MajorTriad, Root: 8, Alternate: MajorSeventh},
	{Primary: MajorTriad, Root: 10, Alternate: MajorSeventh},
}

// Progression returns the diatonic chord table for a tonality.
// The array is returned by value so callers cannot alter the shared table.
func Progression(minor bool) [NumScaleDegrees]DiatonicSlot {
	if minor {
		return minorProgression
	}
	return majorProgression
}

// Chord is one resolved selection from the progression
type Chord struct {
	Position int        `json:"position"` // scale degree, 1-7
	Shape    ChordShape `json:"shape"`    // resolved once per selection
	Root     PitchClass `json:"root"`     // absolute root (slot root + key, wrapped)
	Pitches  []int      `json:"pitches"`  // shape intervals offset by slot root + key, not wrapped
}

func (c Chord) clone() Chord {
	c.Pitches = slices.Clone(c.Pitches)
	return c
}

// RomanNumerals names scale degrees 1-7 for logging
var RomanNumerals = [NumScaleDegrees]string{"I", "II", "III", "IV", "V", "VI", "VII"}
