package heading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridwalk/internal/heading"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want heading.Heading
	}{
		{"N", heading.North},
		{"E", heading.East},
		{"S", heading.South},
		{"W", heading.West},
		{"n", heading.North},
		{" w ", heading.West},
	}
	for _, tc := range cases {
		got, err := heading.Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", " ", "M", "N E", "NE", "1", "É"} {
		_, err := heading.Parse(in)
		assert.ErrorIs(t, err, heading.ErrInvalid, "Parse(%q)", in)
	}
}

func TestLabel(t *testing.T) {
	for _, h := range heading.All() {
		l, err := h.Label()
		require.NoError(t, err)
		back, err := heading.Parse(string(l))
		require.NoError(t, err)
		assert.Equal(t, h, back)
	}

	_, err := heading.Heading(4).Label()
	assert.ErrorIs(t, err, heading.ErrInvalid)
	_, err = heading.Heading(-1).Label()
	assert.ErrorIs(t, err, heading.ErrInvalid)

	assert.Equal(t, "E", heading.East.String())
	assert.Equal(t, "Heading(7)", heading.Heading(7).String())
}

// TestRotate_FullTurns checks that four quarter turns in either direction
// return to the start, and that L undoes R.
func TestRotate_FullTurns(t *testing.T) {
	for _, start := range heading.All() {
		for _, cmd := range []rune{'L', 'R'} {
			h := start
			for i := 0; i < 4; i++ {
				var err error
				h, err = h.Rotate(cmd)
				require.NoError(t, err)
			}
			assert.Equal(t, start, h, "4x %c from %v", cmd, start)
		}

		left, err := start.Rotate('L')
		require.NoError(t, err)
		back, err := left.Rotate('R')
		require.NoError(t, err)
		assert.Equal(t, start, back)
	}
}

func TestRotate_Sequence(t *testing.T) {
	right := []heading.Heading{heading.East, heading.South, heading.West, heading.North}
	h := heading.North
	for i, want := range right {
		cmd := 'R'
		if i%2 == 1 {
			cmd = 'r'
		}
		var err error
		h, err = h.Rotate(cmd)
		require.NoError(t, err)
		assert.Equal(t, want, h)
	}

	left := []heading.Heading{heading.West, heading.South, heading.East, heading.North}
	for _, want := range left {
		var err error
		h, err = h.Rotate('l')
		require.NoError(t, err)
		assert.Equal(t, want, h)
	}
}

func TestRotate_Errors(t *testing.T) {
	_, err := heading.North.Rotate('F')
	assert.ErrorIs(t, err, heading.ErrInvalid)
	_, err = heading.North.Rotate(' ')
	assert.ErrorIs(t, err, heading.ErrInvalid)
	_, err = heading.Heading(-1).Rotate('R')
	assert.ErrorIs(t, err, heading.ErrInvalid)
	_, err = heading.Heading(4).Rotate('L')
	assert.ErrorIs(t, err, heading.ErrInvalid)
}

func TestDelta(t *testing.T) {
	cases := []struct {
		h      heading.Heading
		dx, dy int
	}{
		{heading.North, 0, -1},
		{heading.East, 1, 0},
		{heading.South, 0, 1},
		{heading.West, -1, 0},
	}
	for _, tc := range cases {
		dx, dy, err := tc.h.Delta()
		require.NoError(t, err)
		assert.Equal(t, [2]int{tc.dx, tc.dy}, [2]int{dx, dy}, "Delta(%v)", tc.h)
	}

	_, _, err := heading.Heading(5).Delta()
	assert.ErrorIs(t, err, heading.ErrInvalid)
}
