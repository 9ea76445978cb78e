package mission

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/rover-sim/internal/config"
	"github.com/rover-sim/internal/rover"
)

func defaultScenario() *config.Config {
	return &config.Config{
		Grid:      config.GridConfig{Width: 10, Height: 10},
		Obstacles: []config.Point{{X: 8, Y: 6}, {X: 4, Y: 9}},
		Rover:     config.RoverConfig{X: 1, Y: 3, Heading: "S"},
		Commands:  []string{"move", "right", "move", "left", "move"},
	}
}

func TestRunDefaultScenario(t *testing.T) {
	var out bytes.Buffer
	result, err := Run(defaultScenario(), &out, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	want := "Rover is at position (0, 1) facing S\n"
	if out.String() != want {
		t.Errorf("Expected output %q, got %q", want, out.String())
	}

	wantResult := Result{X: 0, Y: 1, Heading: rover.South, Executed: 5, Blocked: 0}
	if diff := cmp.Diff(wantResult, result); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBlockedByObstacle(t *testing.T) {
	cfg := defaultScenario()
	cfg.Rover = config.RoverConfig{X: 8, Y: 4, Heading: "N"}
	cfg.Commands = []string{"M", "M", "R", "M"}

	var out bytes.Buffer
	result, err := Run(cfg, &out, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	want := strings.Join([]string{
		"Obstacle detected! Can't move.",
		"Move away from the Obstacle!",
		"Rover is at position (9, 5) facing E",
		"",
	}, "\n")
	if out.String() != want {
		t.Errorf("Expected output %q, got %q", want, out.String())
	}
	if result.Blocked != 1 || result.Executed != 4 {
		t.Errorf("Expected 4 executed and 1 blocked, got %+v", result)
	}
}

func TestRunCompactScript(t *testing.T) {
	cfg := defaultScenario()
	cfg.Commands = []string{"MRMLM"}

	var out bytes.Buffer
	if _, err := Run(cfg, &out, zerolog.Nop()); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if !strings.HasPrefix(out.String(), "Rover is at position (0, 1) facing S") {
		t.Errorf("Expected compact script to match the default run, got %q", out.String())
	}
}

func TestRunWarnsOnInvalidSeed(t *testing.T) {
	cfg := defaultScenario()
	cfg.Rover = config.RoverConfig{X: 4, Y: 9, Heading: "E"}
	cfg.Commands = []string{"move"}

	var out, logs bytes.Buffer
	result, err := Run(cfg, &out, zerolog.New(&logs))
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if result.X != 5 || result.Y != 9 {
		t.Errorf("Expected rover to leave the obstacle cell to (5,9), got (%d,%d)", result.X, result.Y)
	}
	if !strings.Contains(logs.String(), "rover seeded on a cell") {
		t.Errorf("Expected seed warning in logs, got %q", logs.String())
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"heading", func(c *config.Config) { c.Rover.Heading = "up" }},
		{"command", func(c *config.Config) { c.Commands = []string{"fly"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultScenario()
			tt.mutate(cfg)

			var out bytes.Buffer
			if _, err := Run(cfg, &out, zerolog.Nop()); err == nil {
				t.Error("Expected error")
			}
			if out.Len() != 0 {
				t.Errorf("Expected no output before failure, got %q", out.String())
			}
		})
	}
}

func TestRunNoCommands(t *testing.T) {
	cfg := defaultScenario()
	cfg.Commands = nil

	var out bytes.Buffer
	result, err := Run(cfg, &out, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if out.String() != "Rover is at position (1, 3) facing S\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
	if result.Executed != 0 {
		t.Errorf("Expected 0 executed commands, got %d", result.Executed)
	}
}
