package main

import (
	"fmt"
	"os"

	"github.com/rover-sim/internal/config"
	"github.com/rover-sim/internal/logging"
	"github.com/rover-sim/internal/mission"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rover: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr, stdout carries only notices and the report
	logger, closer, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rover: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.Info().
		Int("commands", len(cfg.Commands)).
		Str("heading", cfg.Rover.Heading).
		Msg("starting rover mission")

	if _, err := mission.Run(cfg, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("mission failed")
		closer.Close()
		os.Exit(1)
	}
}
