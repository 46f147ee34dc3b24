package composer

import "slices"

// Event is one timed chord, single note or rest within a bar
type Event struct {
	Pitches  []int   `json:"pitches,omitempty"` // pitch class + octave*12
	Rest     bool    `json:"rest,omitempty"`
	Duration float64 `json:"duration"` // beats
	Dynamic  int     `json:"dynamic"`  // velocity, 0 for rests
}

func (e Event) clone() Event {
	e.Pitches = slices.Clone(e.Pitches)
	return e
}

// Bar is a run of events filling exactly one bar
type Bar struct {
	Events []Event `json:"events"`
}

// Duration sums the bar's event durations
func (b Bar) Duration() float64 {
	total := 0.0
	for _, e := range b.Events {
		total += e.Duration
	}
	return total
}

func (b Bar) clone() Bar {
	events := make([]Event, len(b.Events))
	for i, e := range b.Events {
		events[i] = e.clone()
	}
	return Bar{Events: events}
}

// Measure is a reusable phrase of bars and the number of times it repeats
type Measure struct {
	Bars       []Bar `json:"bars"`
	Iterations int   `json:"iterations"`
}

// Duration is the length of one pass over the phrase
func (m Measure) Duration() float64 {
	total := 0.0
	for _, b := range m.Bars {
		total += b.Duration()
	}
	return total
}

// Verse holds one measure per part, all written over the same chords
type Verse struct {
	Measures []Measure `json:"measures"`
	Chords   []Chord   `json:"chords"`
}

// Track is the finished output of one part
type Track struct {
	Instrument int   `json:"instrument"`
	Rhythm     bool  `json:"rhythm"`
	Bars       []Bar `json:"bars"`
}

// Duration is the total length of the track in beats
func (t Track) Duration() float64 {
	total := 0.0
	for _, b := range t.Bars {
		total += b.Duration()
	}
	return total
}

// Events flattens the track's bars
func (t Track) Events() []Event {
	var events []Event
	for _, b := range t.Bars {
		events = append(events, b.Events...)
	}
	return events
}
