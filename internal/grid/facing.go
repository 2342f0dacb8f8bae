package grid

import (
	"fmt"
	"strings"
)

// Facing is one of the four compass headings. The ordinals form the
// counter-clockwise cycle Right -> Up -> Left -> Down -> Right.
type Facing int

const (
	Right Facing = iota
	Up
	Left
	Down
)

// Facings returns all headings in ordinal order.
func Facings() []Facing {
	return []Facing{Right, Up, Left, Down}
}

func (f Facing) String() string {
	switch f {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Facing(%d)", int(f))
	}
}

// ParseFacing accepts the lowercase heading names, case-insensitively.
func ParseFacing(s string) (Facing, error) {
	for _, f := range Facings() {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return Up, fmt.Errorf("unknown facing %q", s)
}

// Normalize maps any value onto one of the four headings by its
// ordinal modulo 4.
func (f Facing) Normalize() Facing {
	return Facing((int(f)%4 + 4) % 4)
}

// Left returns the heading after a counter-clockwise quarter turn.
func (f Facing) Left() Facing {
	return (f + 1).Normalize()
}

// Right returns the heading after a clockwise quarter turn.
func (f Facing) Right() Facing {
	return (f - 1).Normalize()
}

// Delta is the unit step for the heading, +x to the right and +y up.
func (f Facing) Delta() (dx, dy int) {
	switch f.Normalize() {
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Left:
		return -1, 0
	case Down:
		return 0, -1
	}
	return 0, 0
}
