// Package heading defines the four compass headings a robot can face,
// in clockwise order, together with turning and step deltas.
package heading

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned for unrecognised heading labels, unknown turn
// commands, and Heading values outside the four defined constants.
var ErrInvalid = errors.New("heading: invalid heading")

// Heading is a compass direction. The numeric order is clockwise and
// turning relies on it, so the constants must not be reordered.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

const count = 4

// labels is indexed by Heading.
var labels = [count]rune{'N', 'E', 'S', 'W'}

// All returns the headings in clockwise order starting at North.
func All() []Heading {
	return []Heading{North, East, South, West}
}

// Parse converts a one-letter label (N, E, S or W, any case, surrounding
// whitespace ignored) into a Heading.
func Parse(s string) (Heading, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 {
		for i, l := range labels {
			if rune(s[0]) == l {
				return Heading(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// Valid reports whether h is one of the four defined headings.
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// Label returns the one-letter label of h.
func (h Heading) Label() (rune, error) {
	if !h.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalid, int(h))
	}
	return labels[h], nil
}

func (h Heading) String() string {
	l, err := h.Label()
	if err != nil {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return string(l)
}

// Rotate turns h by one quarter: 'R' clockwise, 'L' counter-clockwise.
// Lower-case commands are accepted.
func (h Heading) Rotate(cmd rune) (Heading, error) {
	if !h.Valid() {
		return h, fmt.Errorf("%w: %d", ErrInvalid, int(h))
	}
	switch cmd {
	case 'R', 'r':
		return (h + 1) % count, nil
	case 'L', 'l':
		return (h + count - 1) % count, nil
	}
	return h, fmt.Errorf("%w: turn command %q", ErrInvalid, cmd)
}

// Delta returns the offset of one step in direction h. Y grows downward,
// so North is (0, -1).
func (h Heading) Delta() (dx, dy int, err error) {
	switch h {
	case North:
		return 0, -1, nil
	case East:
		return 1, 0, nil
	case South:
		return 0, 1, nil
	case West:
		return -1, 0, nil
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrInvalid, int(h))
}
