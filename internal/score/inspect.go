package score

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Summary describes an encoded song
type Summary struct {
	Tracks       int           `json:"tracks" yaml:"tracks"`
	TicksPerBeat int           `json:"ticksPerBeat" yaml:"ticksPerBeat"`
	Tempo        float64       `json:"tempo" yaml:"tempo"`
	Meter        string        `json:"meter" yaml:"meter"`
	Parts        []PartSummary `json:"parts" yaml:"parts"`
}

// PartSummary describes one part track
type PartSummary struct {
	Name    string `json:"name" yaml:"name"`
	Channel uint8  `json:"channel" yaml:"channel"`
	Program uint8  `json:"program" yaml:"program"`
	Notes   int    `json:"notes" yaml:"notes"`
	Ticks   int64  `json:"ticks" yaml:"ticks"`
}

// Inspect reads an SMF and summarises its conductor and part tracks
func Inspect(r io.Reader) (*Summary, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("score: read: %w", err)
	}

	sum := &Summary{Tracks: len(s.Tracks)}
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		sum.TicksPerBeat = int(mt.Resolution())
	}

	for i, tr := range s.Tracks {
		var part PartSummary
		for _, ev := range tr {
			part.Ticks += int64(ev.Delta)

			var (
				bpm          float64
				num, denom   uint8
				name         string
				ch, key, vel uint8
				program      uint8
			)
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				sum.Tempo = bpm
			case ev.Message.GetMetaMeter(&num, &denom):
				sum.Meter = fmt.Sprintf("%d/%d", num, denom)
			case ev.Message.GetMetaTrackName(&name):
				part.Name = name
			case midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel):
				part.Channel = ch
				part.Notes++
			case midi.Message(ev.Message).GetProgramChange(&ch, &program):
				part.Channel = ch
				part.Program = program
			}
		}
		if i > 0 {
			sum.Parts = append(sum.Parts, part)
		}
	}
	return sum, nil
}
