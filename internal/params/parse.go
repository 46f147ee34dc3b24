package params

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/ikovsky-api/internal/composer"
)

// Accepted ranges
const (
	MinOctave = 3
	MaxOctave = 7

	maxBeatsPerBar = 64
	maxPercent     = 100
	maxInstrument  = 125 // larger program numbers fall back to grand piano
)

var (
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	timeSigPattern = regexp.MustCompile(`^([0-9]+)/([0-9]+)$`)
	weightPattern  = regexp.MustCompile(`^[+-]?\d*\.?\d*$`)
)

var keyPitches = map[byte]composer.PitchClass{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var noteValues = map[int]float64{
	1:  composer.WholeNote,
	2:  composer.HalfNote,
	4:  composer.QuarterNote,
	8:  composer.EighthNote,
	16: composer.SixteenthNote,
}

// Parse validates a raw request and builds the song config. The macro
// structure is rolled from rng, so the same request and seed always give
// the same config.
func Parse(req Request, rng composer.Rand) (*composer.Config, error) {
	key, minor, err := ParseKey(req.Key)
	if err != nil {
		return nil, err
	}

	tempo, err := parseDigits("tempo", req.Tempo, 3)
	if err != nil {
		return nil, err
	}
	if tempo == 0 {
		return nil, invalid("tempo", req.Tempo, "must be positive")
	}

	timeSig, err := ParseTimeSignature(req.TimeSig)
	if err != nil {
		return nil, err
	}

	minOctave, err := parseOctave("octaveLow", req.OctaveLow)
	if err != nil {
		return nil, err
	}
	maxOctave, err := parseOctave("octaveHigh", req.OctaveHigh)
	if err != nil {
		return nil, err
	}

	minDynamic, err := parsePercent("dynamicsLow", req.DynamicsLow)
	if err != nil {
		return nil, err
	}
	maxDynamic, err := parsePercent("dynamicsHigh", req.DynamicsHigh)
	if err != nil {
		return nil, err
	}

	density, err := parsePercent("noteDensity", req.NoteDensity)
	if err != nil {
		return nil, err
	}

	instrument, err := parseDigits("instrument", req.Instrument, 3)
	if err != nil {
		return nil, err
	}
	if instrument > maxInstrument {
		instrument = 0
	}

	var weights [composer.NumScaleDegrees]float64
	for i, w := range req.weights() {
		if weights[i], err = ParseWeight(w.name, w.value); err != nil {
			return nil, err
		}
	}

	return &composer.Config{
		Key:             key,
		Minor:           minor,
		Tempo:           tempo,
		TimeSignature:   timeSig,
		MinOctave:       minOctave,
		MaxOctave:       max(maxOctave, minOctave),
		MinDynamic:      minDynamic,
		MaxDynamic:      max(maxDynamic, minDynamic),
		NoteDensity:     density,
		ChordWeightings: weights,
		Durations:       composer.DefaultDurations(),
		Instrument:      instrument,
		RhythmChance:    composer.DefaultRhythmChance,
		Structure:       composer.RollStructure(rng),
	}, nil
}

// ParseKey reads a key such as "C", "FS" (F sharp), "AM" (A minor) or
// "CSM" (C sharp minor). Letters are case-insensitive.
func ParseKey(s string) (composer.PitchClass, bool, error) {
	if s == "" || len(s) > 3 {
		return 0, false, invalid("key", s, "must be 1 to 3 characters")
	}
	key := strings.ToUpper(s)

	pitch, ok := keyPitches[key[0]]
	if !ok {
		return 0, false, invalid("key", s, "tonic must be a letter A-G")
	}

	var sharp, minor bool
	switch key[1:] {
	case "":
	case "S":
		sharp = true
	case "M":
		minor = true
	case "SM":
		sharp, minor = true, true
	default:
		return 0, false, invalid("key", s, "suffix must be S, M or SM")
	}

	if sharp {
		if key[0] == 'B' || key[0] == 'E' {
			return 0, false, invalid("key", s, "no sharp exists for B or E")
		}
		pitch++
	}
	return pitch, minor, nil
}

// ParseTimeSignature reads "beats/denominator". Unknown denominators keep
// the beat count and rest on quarter notes.
func ParseTimeSignature(s string) (composer.TimeSignature, error) {
	m := timeSigPattern.FindStringSubmatch(s)
	if m == nil {
		return composer.TimeSignature{}, invalid("timeSig", s, "must look like 4/4 or 3/8")
	}
	beats, err := strconv.Atoi(m[1])
	if err != nil || beats <= 0 || beats > maxBeatsPerBar {
		return composer.TimeSignature{}, invalid("timeSig", s, fmt.Sprintf("beats per bar must be between 1 and %d", maxBeatsPerBar))
	}
	denominator, err := strconv.Atoi(m[2])
	if err != nil {
		return composer.TimeSignature{}, invalid("timeSig", s, "denominator must be an integer")
	}

	noteValue, ok := noteValues[denominator]
	if !ok {
		denominator, noteValue = 4, composer.QuarterNote
	}
	return composer.TimeSignature{BeatsPerBar: beats, Denominator: denominator, NoteValue: noteValue}, nil
}

// ParseWeight reads one chord weighting, at most four characters of
// signed decimal, clamped to [0,1]
func ParseWeight(param, s string) (float64, error) {
	if s == "" || len(s) > 4 || !weightPattern.MatchString(s) {
		return 0, invalid(param, s, "must be a decimal of at most 4 characters")
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid(param, s, fmt.Sprintf("not a number: %v", err))
	}
	return composer.ClampWeight(w), nil
}

func parseDigits(param, s string, maxLen int) (int, error) {
	if s == "" || len(s) > maxLen || !digitsPattern.MatchString(s) {
		return 0, invalid(param, s, fmt.Sprintf("must be an integer of at most %d digits", maxLen))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid(param, s, err.Error())
	}
	return n, nil
}

func parseOctave(param, s string) (int, error) {
	n, err := parseDigits(param, s, 1)
	if err != nil {
		return 0, err
	}
	return min(max(n, MinOctave), MaxOctave), nil
}

func parsePercent(param, s string) (int, error) {
	n, err := parseDigits(param, s, 3)
	if err != nil {
		return 0, err
	}
	return min(n, maxPercent), nil
}
