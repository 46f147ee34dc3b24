package params

import (
	"errors"
	"testing"

	"github.com/Conceptual-Machines/ikovsky-api/internal/composer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		input       string
		pitch       composer.PitchClass
		minor       bool
		expectError bool
	}{
		{input: "C", pitch: 0},
		{input: "c", pitch: 0},
		{input: "A", pitch: 9},
		{input: "B", pitch: 11},
		{input: "FS", pitch: 6},
		{input: "gs", pitch: 8},
		{input: "AM", pitch: 9, minor: true},
		{input: "em", pitch: 4, minor: true},
		{input: "CSM", pitch: 1, minor: true},
		{input: "fsm", pitch: 6, minor: true},
		{input: "", expectError: true},
		{input: "H", expectError: true},
		{input: "BS", expectError: true},
		{input: "ES", expectError: true},
		{input: "ESM", expectError: true},
		{input: "CX", expectError: true},
		{input: "CMS", expectError: true},
		{input: "CSMM", expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pitch, minor, err := ParseKey(tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pitch, pitch)
			assert.Equal(t, tt.minor, minor)
		})
	}
}

func TestParseTimeSignature(t *testing.T) {
	tests := []struct {
		input       string
		want        composer.TimeSignature
		expectError bool
	}{
		{input: "4/4", want: composer.TimeSignature{BeatsPerBar: 4, Denominator: 4, NoteValue: 1}},
		{input: "3/8", want: composer.TimeSignature{BeatsPerBar: 3, Denominator: 8, NoteValue: 0.5}},
		{input: "2/2", want: composer.TimeSignature{BeatsPerBar: 2, Denominator: 2, NoteValue: 2}},
		{input: "1/1", want: composer.TimeSignature{BeatsPerBar: 1, Denominator: 1, NoteValue: 4}},
		{input: "12/16", want: composer.TimeSignature{BeatsPerBar: 12, Denominator: 16, NoteValue: 0.25}},
		{input: "5/3", want: composer.TimeSignature{BeatsPerBar: 5, Denominator: 4, NoteValue: 1}},
		{input: "0/4", expectError: true},
		{input: "65/4", expectError: true},
		{input: "4", expectError: true},
		{input: "4/", expectError: true},
		{input: "/4", expectError: true},
		{input: "4.5/4", expectError: true},
		{input: "a/b", expectError: true},
		{input: "", expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := ParseTimeSignature(tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input       string
		want        float64
		expectError bool
	}{
		{input: "0", want: 0},
		{input: "1", want: 1},
		{input: "0.25", want: 0.25},
		{input: ".5", want: 0.5},
		{input: "+.3", want: 0.3},
		{input: "-0.5", want: 0},
		{input: "9", want: 1},
		{input: "", expectError: true},
		{input: "0.125", expectError: true},
		{input: "abc", expectError: true},
		{input: ".", expectError: true},
		{input: "1e2", expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, err := ParseWeight("weightA", tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, w, 1e-12)
		})
	}
}

func TestParse(t *testing.T) {
	req := DefaultRequest()
	req.Key = "DM"
	req.TimeSig = "6/8"
	req.OctaveLow = "1"
	req.OctaveHigh = "9"
	req.DynamicsLow = "80"
	req.DynamicsHigh = "40"
	req.NoteDensity = "150"
	req.Instrument = "200"

	cfg, err := Parse(req, composer.NewRand(4))
	require.NoError(t, err)

	assert.Equal(t, composer.PitchClass(2), cfg.Key)
	assert.True(t, cfg.Minor)
	assert.Equal(t, 120, cfg.Tempo)
	assert.Equal(t, composer.TimeSignature{BeatsPerBar: 6, Denominator: 8, NoteValue: 0.5}, cfg.TimeSignature)
	assert.Equal(t, MinOctave, cfg.MinOctave)
	assert.Equal(t, MaxOctave, cfg.MaxOctave)
	assert.Equal(t, 80, cfg.MinDynamic)
	assert.Equal(t, 80, cfg.MaxDynamic, "max dynamic is raised to the minimum")
	assert.Equal(t, 100, cfg.NoteDensity)
	assert.Equal(t, 0, cfg.Instrument, "out of range program falls back to piano")
	assert.Equal(t, [composer.NumScaleDegrees]float64{0.3, 0.05, 0.05, 0.2, 0.25, 0.15, 0}, cfg.ChordWeightings)
	assert.Equal(t, composer.DefaultDurations(), cfg.Durations)
	assert.Equal(t, composer.DefaultRhythmChance, cfg.RhythmChance)
	require.NoError(t, cfg.Validate())
}

func TestParseOctaveOrdering(t *testing.T) {
	req := DefaultRequest()
	req.OctaveLow = "6"
	req.OctaveHigh = "4"

	cfg, err := Parse(req, composer.NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MinOctave)
	assert.Equal(t, 6, cfg.MaxOctave)
}

func TestParseSameSeedSameStructure(t *testing.T) {
	first, err := Parse(DefaultRequest(), composer.NewRand(99))
	require.NoError(t, err)
	second, err := Parse(DefaultRequest(), composer.NewRand(99))
	require.NoError(t, err)
	assert.Equal(t, first.Structure, second.Structure)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		param  string
	}{
		{"empty key", func(r *Request) { r.Key = "" }, "key"},
		{"tempo too long", func(r *Request) { r.Tempo = "1200" }, "tempo"},
		{"tempo zero", func(r *Request) { r.Tempo = "0" }, "tempo"},
		{"decimal tempo", func(r *Request) { r.Tempo = "1.5" }, "tempo"},
		{"time signature", func(r *Request) { r.TimeSig = "four" }, "timeSig"},
		{"two digit octave", func(r *Request) { r.OctaveLow = "10" }, "octaveLow"},
		{"empty octave", func(r *Request) { r.OctaveHigh = "" }, "octaveHigh"},
		{"negative dynamic", func(r *Request) { r.DynamicsLow = "-5" }, "dynamicsLow"},
		{"dynamic too long", func(r *Request) { r.DynamicsHigh = "1000" }, "dynamicsHigh"},
		{"density text", func(r *Request) { r.NoteDensity = "lots" }, "noteDensity"},
		{"instrument too long", func(r *Request) { r.Instrument = "1000" }, "instrument"},
		{"weight", func(r *Request) { r.WeightE = "0.333" }, "weightE"},
		{"last weight", func(r *Request) { r.WeightG = "" }, "weightG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultRequest()
			tt.mutate(&req)

			cfg, err := Parse(req, composer.NewRand(1))
			assert.Nil(t, cfg)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.param, cfgErr.Param)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}
