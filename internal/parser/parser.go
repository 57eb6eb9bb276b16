// Package parser turns the raw input lines (room size and starting pose)
// into validated geometry and heading values.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gridwalk/internal/geometry"
	"gridwalk/internal/heading"
)

var (
	// ErrCoordinates indicates a line that does not start with two
	// non-negative integers.
	ErrCoordinates = errors.New("parser: invalid coordinates")
	// ErrSizeFormat indicates an unreadable room size line.
	ErrSizeFormat = errors.New(`parser: size could not be interpreted ("x y" expected)`)
	// ErrPositionFormat indicates an unreadable starting position.
	ErrPositionFormat = errors.New(`parser: start position could not be interpreted ("x y direction" expected)`)
	// ErrHeadingFormat indicates an unreadable starting heading.
	ErrHeadingFormat = errors.New(`parser: direction could not be interpreted ("x y direction" expected)`)
)

// ParseCoordinates reads the first two whitespace separated words of text
// as the X and Y of a Point. Each word contributes its leading decimal
// integer ("1.2" is 1, "7abc" is 7); a word without one is rejected, as
// are negative values. Words after the second are ignored.
func ParseCoordinates(text string) (geometry.Point, error) {
	if strings.TrimSpace(text) == "" {
		return geometry.Point{}, fmt.Errorf("%w: empty input", ErrCoordinates)
	}
	d, err := parseDescriptor(text)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("%w: %w", ErrCoordinates, err)
	}
	if len(d.Words) < 2 {
		return geometry.Point{}, fmt.Errorf("%w: need two values in %q", ErrCoordinates, text)
	}
	x, err := d.Words[0].value()
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := d.Words[1].value()
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: x, Y: y}, nil
}

// value returns the non-negative leading integer of w.
func (w *word) value() (int, error) {
	if w.Lead.Int == nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrCoordinates, w.text())
	}
	n, err := strconv.Atoi(*w.Lead.Int)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCoordinates, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrCoordinates, n)
	}
	return n, nil
}

func (w *word) text() string {
	var sb strings.Builder
	if w.Lead.Int != nil {
		sb.WriteString(*w.Lead.Int)
	}
	if w.Lead.Other != nil {
		sb.WriteString(*w.Lead.Other)
	}
	for _, r := range w.Rest {
		sb.WriteString(r)
	}
	return sb.String()
}

// ParseSize reads the room size line, e.g. "5 5".
func ParseSize(text string) (geometry.Point, error) {
	size, err := ParseCoordinates(text)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("%w: %w", ErrSizeFormat, err)
	}
	return size, nil
}

// ParsePose reads the starting pose line, e.g. "1 2 N". It returns the
// position and the last non-space character of the line, which holds the
// heading. The heading token is not validated here; see ParseHeading.
func ParsePose(text string) (geometry.Point, rune, error) {
	position, err := ParseCoordinates(text)
	if err != nil {
		return geometry.Point{}, 0, fmt.Errorf("%w: %w", ErrPositionFormat, err)
	}
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return position, last, nil
}

// ParseHeading validates the heading token returned by ParsePose.
func ParseHeading(token rune) (heading.Heading, error) {
	h, err := heading.Parse(string(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrHeadingFormat, err)
	}
	return h, nil
}
