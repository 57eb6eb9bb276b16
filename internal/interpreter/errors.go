package interpreter

import (
	"errors"
	"fmt"

	"gridwalk/internal/geometry"
)

var (
	// ErrOutOfBounds indicates a forward step that would leave the room.
	ErrOutOfBounds = errors.New("interpreter: out of bounds")
	// ErrInvalidCommand indicates a character other than F, L or R.
	ErrInvalidCommand = errors.New(`interpreter: command could not be interpreted ("F", "L" or "R" expected)`)
)

// MoveError reports a rejected step. Candidate is the cell the robot
// would have entered; Pose is where it still is.
type MoveError struct {
	Candidate geometry.Point
	Pose      Pose
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v at %v", ErrOutOfBounds, e.Candidate)
}

func (e *MoveError) Unwrap() error {
	return ErrOutOfBounds
}

// CommandError reports an unknown command character and the byte offset
// at which it was found. Commands before it have already been applied.
type CommandError struct {
	Command rune
	Offset  int
	Pose    Pose
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrInvalidCommand, e.Command, e.Offset)
}

func (e *CommandError) Unwrap() error {
	return ErrInvalidCommand
}
