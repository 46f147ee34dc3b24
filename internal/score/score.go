// Package score renders composed tracks as Standard MIDI Files.
//
// A composed bar always spans BeatsPerBar quarter notes, whatever the
// requested denominator. The meter event is scaled to that length, so a
// 6/8 song is written as 12/8 and bar lines land where the composer put them.
package score

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/Conceptual-Machines/ikovsky-api/internal/composer"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// TicksPerBeat is the file resolution in ticks per quarter note
const TicksPerBeat = 480

const (
	maxChannels  = 16
	drumChannel  = 9
	maxPitch     = 127
	minVelocity  = 1
	maxVelocity  = 127
	conductorTag = "ikovsky"
	quarter      = 4
)

// ErrPitchRange is returned for events that cannot be expressed as MIDI keys
var ErrPitchRange = errors.New("pitch outside MIDI range")

// Encode writes tracks as a format 1 SMF. Track 0 holds tempo and meter,
// each part follows on its own channel.
func Encode(tracks []composer.Track, cfg *composer.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, tracks, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64 is Encode with the bytes base64 encoded for JSON transport
func EncodeBase64(tracks []composer.Track, cfg *composer.Config) (string, error) {
	data, err := Encode(tracks, cfg)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Write streams the SMF for tracks to w
func Write(w io.Writer, tracks []composer.Track, cfg *composer.Config) error {
	if cfg == nil {
		return errors.New("score: nil config")
	}
	if len(tracks) > maxChannels-1 {
		return fmt.Errorf("score: %d tracks exceed the available channels", len(tracks))
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerBeat)

	if err := s.Add(conductorTrack(cfg)); err != nil {
		return fmt.Errorf("score: conductor track: %w", err)
	}
	for i, t := range tracks {
		tr, err := partTrack(i, t)
		if err != nil {
			return err
		}
		if err := s.Add(tr); err != nil {
			return fmt.Errorf("score: track %d: %w", i, err)
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("score: write: %w", err)
	}
	return nil
}

func conductorTrack(cfg *composer.Config) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(conductorTag))
	tr.Add(0, smf.MetaMeter(Meter(cfg.TimeSignature)))
	tr.Add(0, smf.MetaTempo(float64(cfg.Tempo)))
	tr.Close(0)
	return tr
}

// Meter is the MIDI meter whose bar matches ts.BeatsPerBar quarter notes.
// It keeps the requested denominator when the numerator comes out whole
// and fits a byte, and falls back to BeatsPerBar/4 otherwise.
func Meter(ts composer.TimeSignature) (num, denom uint8) {
	scaled := ts.BeatsPerBar * ts.Denominator
	if ts.Denominator > 0 && scaled%quarter == 0 && scaled/quarter <= math.MaxUint8 {
		return uint8(scaled / quarter), uint8(ts.Denominator)
	}
	return uint8(ts.BeatsPerBar), quarter
}

func partTrack(index int, t composer.Track) (smf.Track, error) {
	ch := Channel(index)
	kind := "melody"
	if t.Rhythm {
		kind = "rhythm"
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("part %d (%s)", index+1, kind)))
	tr.Add(0, midi.ProgramChange(ch, uint8(t.Instrument)))

	var delta uint32
	for bar, b := range t.Bars {
		for _, e := range b.Events {
			ticks := Ticks(e.Duration)
			if e.Rest || len(e.Pitches) == 0 {
				delta += ticks
				continue
			}

			keys, err := noteKeys(e.Pitches)
			if err != nil {
				return nil, fmt.Errorf("score: part %d bar %d: %w", index, bar, err)
			}
			velocity := uint8(min(max(e.Dynamic, minVelocity), maxVelocity))
			for _, k := range keys {
				tr.Add(delta, midi.NoteOn(ch, k, velocity))
				delta = 0
			}
			delta = ticks
			for _, k := range keys {
				tr.Add(delta, midi.NoteOff(ch, k))
				delta = 0
			}
		}
	}
	tr.Close(delta)
	return tr, nil
}

// noteKeys converts pitches to distinct MIDI keys in first-seen order
func noteKeys(pitches []int) ([]uint8, error) {
	keys := make([]uint8, 0, len(pitches))
	for _, p := range pitches {
		if p < 0 || p > maxPitch {
			return nil, fmt.Errorf("%w: %d", ErrPitchRange, p)
		}
		if !slices.Contains(keys, uint8(p)) {
			keys = append(keys, uint8(p))
		}
	}
	return keys, nil
}

// Channel maps a part index to a MIDI channel, skipping the drum channel
func Channel(index int) uint8 {
	if index >= drumChannel {
		index++
	}
	return uint8(index)
}

// Ticks converts a duration in beats to ticks
func Ticks(beats float64) uint32 {
	return uint32(math.Round(beats * TicksPerBeat))
}
