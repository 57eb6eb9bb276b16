package interpreter

import (
	"fmt"

	"gridwalk/internal/geometry"
	"gridwalk/internal/heading"
)

// Pose is the full state of the robot: where it stands and where it faces.
type Pose struct {
	Position geometry.Point
	Heading  heading.Heading
}

// String formats the pose as "x y H", e.g. "3 0 E".
func (p Pose) String() string {
	return fmt.Sprintf("%v %v", p.Position, p.Heading)
}

// Robot represents the robot inside a room. Its pose changes only
// through Step and Turn.
type Robot struct {
	pose Pose
}

func NewRobot(start Pose) *Robot {
	return &Robot{pose: start}
}

func (r *Robot) Pose() Pose {
	return r.pose
}

// Step moves the robot one cell forward. A step that would leave the
// room is rejected with a *MoveError and the robot stays where it was.
func (r *Robot) Step(room Room) error {
	dx, dy, err := r.pose.Heading.Delta()
	if err != nil {
		return err
	}
	next := r.pose.Position.Add(dx, dy)
	if !room.Contains(next) {
		return &MoveError{Candidate: next, Pose: r.pose}
	}
	r.pose.Position = next
	return nil
}

// Turn rotates the robot a quarter turn left ('L') or right ('R').
func (r *Robot) Turn(cmd rune) error {
	h, err := r.pose.Heading.Rotate(cmd)
	if err != nil {
		return err
	}
	r.pose.Heading = h
	return nil
}

func (r *Robot) String() string {
	return r.pose.String()
}
