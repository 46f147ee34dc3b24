package composer

import "fmt"

// scriptedRand replays fixed draws. Exhausted queues return 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted IntN(%d) got %d", n, v))
	}
	return v
}

func testConfig() *Config {
	return &Config{
		Key:   0,
		Tempo: 120,
		TimeSignature: TimeSignature{
			BeatsPerBar: 4,
			Denominator: 4,
			NoteValue:   QuarterNote,
		},
		MinOctave:       3,
		MaxOctave:       5,
		MinDynamic:      60,
		MaxDynamic:      100,
		NoteDensity:     80,
		ChordWeightings: [NumScaleDegrees]float64{0.3, 0.1, 0.1, 0.2, 0.2, 0.1, 0},
		Durations:       DefaultDurations(),
		RhythmChance:    DefaultRhythmChance,
		Structure: Structure{
			Duration:       5,
			NumVerses:      3,
			VerseStructure: []int{0, 1, 0, 2, 1},
			NumParts:       2,
		},
	}
}
