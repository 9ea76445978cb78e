package rover

import (
	"fmt"
	"strings"
)

// Heading is one of the four cardinal directions
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// String returns the single-letter form used in reports
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// Valid reports whether h is one of the four cardinal values
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// Left returns the heading after a counter-clockwise quarter turn.
// Unknown headings are returned unchanged.
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	default:
		return h
	}
}

// Right returns the heading after a clockwise quarter turn.
// Unknown headings are returned unchanged.
func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return h
	}
}

// Delta returns the one-cell step for the heading
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseHeading accepts N/E/S/W or the full direction name, case-insensitive
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	default:
		return 0, fmt.Errorf("invalid heading %q, must be one of: N, E, S, W", s)
	}
}
