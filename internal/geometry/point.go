// Package geometry holds the integer grid model: points and the
// half-open room bounds they are checked against.
package geometry

import "fmt"

// Point is a position on the grid. X grows to the right and Y grows
// downward (screen coordinates). Points are values; Add never mutates.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as "x y", the form used in reports.
func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// WithinBounds reports whether position lies inside the room spanned by
// size, i.e. 0 <= X < size.X and 0 <= Y < size.Y. The upper bound is
// exclusive, so a zero size contains nothing.
func WithinBounds(position, size Point) bool {
	return position.X >= 0 && position.Y >= 0 &&
		position.X < size.X && position.Y < size.Y
}
