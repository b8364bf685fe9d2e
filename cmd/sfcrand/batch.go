package main

import (
	"github.com/rs/zerolog"

	"github.com/lox/sfcrand/cmd/sfcrand/shared"
	"github.com/lox/sfcrand/internal/batch"
)

// BatchCmd runs the generation jobs described by an HCL config file. Jobs
// run concurrently, each with its own generator instance.
type BatchCmd struct {
	Config string `kong:"arg,help='Path to the HCL job file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	JSON   bool   `kong:"help='Structured JSON log output'"`
}

func (c *BatchCmd) Run() error {
	var logger zerolog.Logger
	if c.JSON {
		logger = shared.SetupStructuredLogger(c.Debug)
	} else {
		logger = shared.SetupLogger(c.Debug)
	}

	cfg, err := batch.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)
	runner := batch.NewRunner(cfg, nil, logger)
	return runner.Run(ctx)
}
