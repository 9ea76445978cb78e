package rover

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Blocked-move notice lines written to the rover's output
const (
	ObstacleDetectedMsg = "Obstacle detected! Can't move."
	MoveAwayMsg         = "Move away from the Obstacle!"
)

// MoveValidator answers whether a cell may be occupied. *grid.Grid satisfies it.
type MoveValidator interface {
	IsValidMove(x, y int) bool
}

// Rover holds a position and heading on a grid it does not own.
// It is not safe for concurrent use.
type Rover struct {
	x       int
	y       int
	heading Heading
	blocked int
	grid    MoveValidator
	out     io.Writer
	logger  zerolog.Logger
}

// New creates a rover at (x, y) facing heading. The seed position is not
// checked against the grid. Notices and reports are written to out.
func New(x, y int, heading Heading, grid MoveValidator, out io.Writer, logger zerolog.Logger) *Rover {
	if out == nil {
		out = io.Discard
	}
	return &Rover{
		x:       x,
		y:       y,
		heading: heading,
		grid:    grid,
		out:     out,
		logger:  logger,
	}
}

// Position returns the current cell
func (r *Rover) Position() (int, int) {
	return r.x, r.y
}

// Heading returns the current heading
func (r *Rover) Heading() Heading {
	return r.heading
}

// Blocked returns how many moves were refused so far
func (r *Rover) Blocked() int {
	return r.blocked
}

// Move steps one cell along the current heading. A move into an obstacle or
// off the grid leaves the position unchanged and writes a notice.
func (r *Rover) Move() {
	dx, dy := r.heading.Delta()
	nextX, nextY := r.x+dx, r.y+dy

	if !r.grid.IsValidMove(nextX, nextY) {
		r.blocked++
		r.logger.Warn().
			Int("x", r.x).
			Int("y", r.y).
			Int("target_x", nextX).
			Int("target_y", nextY).
			Str("heading", r.heading.String()).
			Msg("move blocked")
		fmt.Fprintln(r.out, ObstacleDetectedMsg)
		fmt.Fprintln(r.out, MoveAwayMsg)
		return
	}

	r.logger.Debug().
		Int("from_x", r.x).
		Int("from_y", r.y).
		Int("x", nextX).
		Int("y", nextY).
		Msg("moved")
	r.x, r.y = nextX, nextY
}

// TurnLeft rotates a quarter turn counter-clockwise
func (r *Rover) TurnLeft() {
	r.turn(r.heading.Left(), "left")
}

// TurnRight rotates a quarter turn clockwise
func (r *Rover) TurnRight() {
	r.turn(r.heading.Right(), "right")
}

func (r *Rover) turn(next Heading, direction string) {
	r.logger.Debug().
		Str("from", r.heading.String()).
		Str("to", next.String()).
		Msg("turned " + direction)
	r.heading = next
}

// ReportPosition writes the current position and heading
func (r *Rover) ReportPosition() {
	fmt.Fprintln(r.out, r.String())
}

func (r *Rover) String() string {
	return fmt.Sprintf("Rover is at position (%d, %d) facing %s", r.x, r.y, r.heading)
}
