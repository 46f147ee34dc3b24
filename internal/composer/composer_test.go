package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickLayout(t *testing.T) {
	tests := []struct {
		draw     float64
		measures int
		bars     int
	}{
		{0.0, 1, 4},
		{0.29, 1, 4},
		{0.31, 2, 2},
		{0.59, 2, 2},
		{0.61, 2, 1},
		{0.79, 2, 1},
		{0.81, 1, 8},
		{0.99, 1, 8},
	}
	for _, tt := range tests {
		c := NewComposer(testConfig(), &scriptedRand{floats: []float64{tt.draw}})
		layout := c.pickLayout()
		assert.Equal(t, tt.measures, layout.measures, "draw %g", tt.draw)
		assert.Equal(t, tt.bars, layout.bars, "draw %g", tt.draw)
	}
}

func TestWriteVerseSharesChords(t *testing.T) {
	cfg := testConfig()
	c := NewComposer(cfg, NewRand(21))
	c.AddPart(true, 0, 4, 60, 100)
	c.AddPart(false, 24, 5, 60, 100)
	c.AddPart(false, 40, 3, 60, 100)

	for range 20 {
		c.WriteVerse()
	}
	require.Len(t, c.Verses(), 20)
	for _, v := range c.Verses() {
		require.Len(t, v.Measures, 3)
		require.NotEmpty(t, v.Chords)
		for _, m := range v.Measures {
			assert.Len(t, m.Bars, len(v.Chords))
			assert.Equal(t, v.Measures[0].Iterations, m.Iterations)
			assert.Contains(t, []int{1, 2}, m.Iterations)
		}
		for _, chord := range v.Chords {
			assert.GreaterOrEqual(t, chord.Position, 1)
			assert.LessOrEqual(t, chord.Position, NumScaleDegrees)
		}
	}
}

func TestWriteSongFollowsVerseStructure(t *testing.T) {
	cfg := testConfig()
	song, err := Compose(cfg, NewRand(2024))
	require.NoError(t, err)
	require.Len(t, song.Verses, 3)
	require.Len(t, song.Tracks, cfg.NumParts)

	for part, track := range song.Tracks {
		var want []Bar
		for _, v := range []int{0, 1, 0, 2, 1} {
			measure := song.Verses[v].Measures[part]
			for range measure.Iterations {
				want = append(want, measure.Bars...)
			}
		}
		assert.Equal(t, want, track.Bars, "part %d", part)
	}
}

func TestWriteSongCopiesBars(t *testing.T) {
	cfg := testConfig()
	cfg.NoteDensity = 100
	song, err := Compose(cfg, NewRand(9))
	require.NoError(t, err)

	track := song.Tracks[0]
	first := track.Bars[0].Events[0].Pitches[0]
	track.Bars[0].Events[0].Pitches[0] = -1

	assert.Equal(t, first, song.Verses[0].Measures[0].Bars[0].Events[0].Pitches[0])
}

func TestWriteSongIsRepeatable(t *testing.T) {
	cfg := testConfig()
	c := NewComposer(cfg, NewRand(5))
	c.AddPart(false, 0, 4, 60, 100)
	c.WriteVerses()

	first, err := c.WriteSong()
	require.NoError(t, err)
	second, err := c.WriteSong()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteSongInvariants(t *testing.T) {
	t.Run("no parts", func(t *testing.T) {
		c := NewComposer(testConfig(), NewRand(1))
		c.WriteVerses()
		_, err := c.WriteSong()
		assert.ErrorIs(t, err, ErrInvariant)
	})

	t.Run("verses not written", func(t *testing.T) {
		c := NewComposer(testConfig(), NewRand(1))
		c.AddPart(false, 0, 4, 60, 100)
		_, err := c.WriteSong()
		assert.ErrorIs(t, err, ErrInvariant)
	})

	t.Run("part added after verses", func(t *testing.T) {
		c := NewComposer(testConfig(), NewRand(1))
		c.AddPart(false, 0, 4, 60, 100)
		c.WriteVerses()
		c.AddPart(true, 0, 4, 60, 100)
		_, err := c.WriteSong()
		var invErr *InvariantError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, "verses", invErr.Field)
	})
}

func TestAddPart(t *testing.T) {
	c := NewComposer(testConfig(), NewRand(1))
	c.AddPart(true, 33, 4, 10, 20)
	c.AddPart(false, 0, 3, 10, 20)

	require.Len(t, c.Parts(), 2)
	assert.True(t, c.Parts()[0].IsRhythm())
	assert.Equal(t, 33, c.Parts()[0].Instrument())
	assert.False(t, c.Parts()[1].IsRhythm())
}
