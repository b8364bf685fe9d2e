package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lox/sfcrand/cmd/sfcrand/shared"
	"github.com/lox/sfcrand/sfc"
)

// OutputCmd writes raw generator output to stdout, for piping into files or
// statistical test batteries.
type OutputCmd struct {
	Rng   string `kong:"arg,enum='sfc32,sfc64',help='Generator to use (sfc32 or sfc64)'"`
	Bytes int64  `kong:"arg,help='Number of bytes to write'"`
	Seed  uint64 `kong:"arg,optional,help='Seed to use (defaults to 0)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *OutputCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	if c.Bytes < 0 {
		return fmt.Errorf("byte count must be non-negative, got %d", c.Bytes)
	}

	var fill func([]byte)
	switch c.Rng {
	case "sfc32":
		fill = sfc.New32Seed(c.Seed).Fill
	default:
		fill = sfc.New64Seed(c.Seed).Fill
	}

	w := bufio.NewWriter(os.Stdout)
	buf := make([]byte, 64*1024)
	remaining := c.Bytes
	for remaining > 0 {
		chunk := buf
		if remaining < int64(len(buf)) {
			chunk = buf[:remaining]
		}
		fill(chunk)
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("could not write random bytes to standard output: %w", err)
		}
		remaining -= int64(len(chunk))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write random bytes to standard output: %w", err)
	}

	logger.Debug().
		Str("rng", c.Rng).
		Uint64("seed", c.Seed).
		Str("size", humanize.IBytes(uint64(c.Bytes))).
		Msg("Wrote random bytes")
	return nil
}
