package interpreter

import "gridwalk/internal/geometry"

// Room is the rectangle the robot walks in. It spans [0, Size.X) on the
// horizontal axis and [0, Size.Y) on the vertical one.
type Room struct {
	Size geometry.Point
}

func (rm Room) Contains(p geometry.Point) bool {
	return geometry.WithinBounds(p, rm.Size)
}
