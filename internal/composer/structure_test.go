package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollStructure(t *testing.T) {
	parts := map[int]bool{}
	for seed := range uint64(500) {
		s := RollStructure(NewRand(seed))

		require.GreaterOrEqual(t, s.Duration, 6)
		require.Less(t, s.Duration, 12)
		require.GreaterOrEqual(t, s.NumVerses, 2)
		require.Less(t, s.NumVerses, 8)
		require.Len(t, s.VerseStructure, s.Duration)
		for _, v := range s.VerseStructure {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, s.NumVerses)
		}
		require.GreaterOrEqual(t, s.NumParts, 1)
		require.LessOrEqual(t, s.NumParts, 4)
		parts[s.NumParts] = true
	}
	assert.Len(t, parts, 4, "every part count should appear over 500 rolls")
}

func TestRollNumParts(t *testing.T) {
	tests := []struct {
		draw float64
		want int
	}{
		{0.01, 1},
		{0.06, 2},
		{0.44, 2},
		{0.46, 3},
		{0.84, 3},
		{0.86, 4},
		{0.99, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rollNumParts(&scriptedRand{floats: []float64{tt.draw}}), "draw %g", tt.draw)
	}
}

func TestClampWeight(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampWeight(tt.in))
	}
}

func TestDefaultDurationsIsFresh(t *testing.T) {
	d := DefaultDurations()
	d[0] = 99
	assert.Equal(t, []float64{2, 1, 4, 0.5, 0.25}, DefaultDurations())
}

func TestTimeSignatureString(t *testing.T) {
	assert.Equal(t, "6/8", TimeSignature{BeatsPerBar: 6, Denominator: 8, NoteValue: EighthNote}.String())
}
