// Package session drives one simulation run: it reads the three input
// lines, validates them in a fixed order, executes the commands and
// produces either a Report or the first error.
package session

import (
	"errors"
	"fmt"
	"io"

	"gridwalk/internal/geometry"
	"gridwalk/internal/interpreter"
	"gridwalk/internal/parser"
)

var (
	// ErrStartOutOfBounds indicates a starting position outside the room.
	ErrStartOutOfBounds = errors.New("session: starting position is out of boundaries")
	// ErrMissingInput indicates the input ended before all three lines
	// were read.
	ErrMissingInput = errors.New("session: missing input")
)

// Setup is the validated start of a run.
type Setup struct {
	Size geometry.Point
	Pose interpreter.Pose
}

// Start validates the size and pose lines. Checks run in this order and
// the first failure wins: size format, position format, position within
// the room, heading format.
func Start(sizeText, poseText string) (Setup, error) {
	size, err := parser.ParseSize(sizeText)
	if err != nil {
		return Setup{}, err
	}
	pose, err := startPose(size, poseText)
	if err != nil {
		return Setup{}, err
	}
	return Setup{Size: size, Pose: pose}, nil
}

func startPose(size geometry.Point, poseText string) (interpreter.Pose, error) {
	position, token, err := parser.ParsePose(poseText)
	if err != nil {
		return interpreter.Pose{}, err
	}
	if !geometry.WithinBounds(position, size) {
		return interpreter.Pose{}, fmt.Errorf(`%w (in-between "0 0" and "%v" expected)`, ErrStartOutOfBounds, size)
	}
	h, err := parser.ParseHeading(token)
	if err != nil {
		return interpreter.Pose{}, err
	}
	return interpreter.Pose{Position: position, Heading: h}, nil
}

// Report is the outcome of a successful run.
type Report struct {
	Pose interpreter.Pose
}

// String formats the report as "x y H".
func (r Report) String() string {
	return r.Pose.String()
}

// Driver runs a session against a line source. Observer, if set,
// receives a trace event for every applied command.
type Driver struct {
	Input    LineReader
	Observer interpreter.Observer
}

func NewDriver(input LineReader, observer interpreter.Observer) *Driver {
	return &Driver{Input: input, Observer: observer}
}

// Run reads the size, the starting pose and the commands, in that order,
// validating each line before the next one is requested.
func (d *Driver) Run() (Report, error) {
	sizeText, err := d.read("size")
	if err != nil {
		return Report{}, err
	}
	size, err := parser.ParseSize(sizeText)
	if err != nil {
		return Report{}, err
	}

	poseText, err := d.read("start position")
	if err != nil {
		return Report{}, err
	}
	start, err := startPose(size, poseText)
	if err != nil {
		return Report{}, err
	}

	// Input that ends after the pose line is an empty command string.
	commands, err := d.read("commands")
	if errors.Is(err, io.EOF) {
		commands, err = "", nil
	}
	if err != nil {
		return Report{}, err
	}
	final, err := interpreter.Run(size, start, commands, d.Observer)
	if err != nil {
		return Report{}, err
	}
	return Report{Pose: final}, nil
}

func (d *Driver) read(what string) (string, error) {
	line, err := d.Input.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingInput, what, err)
	}
	if err != nil {
		return "", fmt.Errorf("session: reading %s: %w", what, err)
	}
	return line, nil
}
