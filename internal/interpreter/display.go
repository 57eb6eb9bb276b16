package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gridwalk/internal/heading"
)

// MaxDisplayCells is the largest room area Display will draw.
const MaxDisplayCells = 10000

// ErrRoomTooLarge indicates a room with more cells than MaxDisplayCells.
var ErrRoomTooLarge = errors.New("interpreter: room too large to display")

var arrows = map[heading.Heading]byte{
	heading.North: '^',
	heading.East:  '>',
	heading.South: 'v',
	heading.West:  '<',
}

// Display draws the room as text with the robot shown as an arrow
// pointing where it faces. Row 0 is printed first.
func (rm Room) Display(w io.Writer, pose Pose) error {
	if rm.Size.X > MaxDisplayCells || rm.Size.Y > MaxDisplayCells ||
		rm.Size.X*rm.Size.Y > MaxDisplayCells {
		return fmt.Errorf("%w: %v", ErrRoomTooLarge, rm.Size)
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < rm.Size.Y; y++ {
		for x := 0; x < rm.Size.X; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if pose.Position.X == x && pose.Position.Y == y {
				a, ok := arrows[pose.Heading]
				if !ok {
					a = 'R'
				}
				bw.WriteByte(a)
			} else {
				bw.WriteByte('.')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
