package mission

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/rover-sim/internal/commands"
	"github.com/rover-sim/internal/config"
	"github.com/rover-sim/internal/grid"
	"github.com/rover-sim/internal/rover"
)

// Result is the rover's state after the command queue has run
type Result struct {
	X        int
	Y        int
	Heading  rover.Heading
	Executed int
	Blocked  int
}

// Run builds the grid, rover and command queue described by cfg, executes
// every command in order and writes the final report to out. Blocked-move
// notices are written to out as they happen.
func Run(cfg *config.Config, out io.Writer, logger zerolog.Logger) (Result, error) {
	heading, err := rover.ParseHeading(cfg.Rover.Heading)
	if err != nil {
		return Result{}, fmt.Errorf("rover heading: %w", err)
	}

	g := grid.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	for _, p := range cfg.Obstacles {
		g.AddObstacle(p.X, p.Y)
	}
	logger.Info().
		Int("width", g.Width()).
		Int("height", g.Height()).
		Int("obstacles", len(g.Obstacles())).
		Msg("grid ready")

	if !g.IsValidMove(cfg.Rover.X, cfg.Rover.Y) {
		logger.Warn().
			Int("x", cfg.Rover.X).
			Int("y", cfg.Rover.Y).
			Msg("rover seeded on a cell that is out of bounds or blocked")
	}
	r := rover.New(cfg.Rover.X, cfg.Rover.Y, heading, g, out, logger.With().Str("component", "rover").Logger())

	cmds, err := commands.DefaultRegistry().Parse(cfg.Commands, r)
	if err != nil {
		return Result{}, fmt.Errorf("parse commands: %w", err)
	}

	invoker := commands.NewInvoker(logger.With().Str("component", "invoker").Logger())
	for _, cmd := range cmds {
		invoker.SetCommand(cmd)
	}
	invoker.ExecuteCommands()

	r.ReportPosition()

	x, y := r.Position()
	result := Result{
		X:        x,
		Y:        y,
		Heading:  r.Heading(),
		Executed: invoker.Len(),
		Blocked:  r.Blocked(),
	}
	logger.Info().
		Int("x", result.X).
		Int("y", result.Y).
		Str("heading", result.Heading.String()).
		Int("executed", result.Executed).
		Int("blocked", result.Blocked).
		Msg("mission complete")

	return result, nil
}
