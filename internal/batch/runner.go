package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/coder/quartz"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/sfcrand/sfc"
)

// chunkSize is the working buffer per job. Fill never allocates, so this is
// the only per-job allocation regardless of job size.
const chunkSize = 64 * 1024

// Runner executes the jobs of a batch configuration.
type Runner struct {
	config *Config
	clock  quartz.Clock
	logger zerolog.Logger
}

// NewRunner creates a runner. A nil clock means the real clock; tests inject
// a *quartz.Mock.
func NewRunner(config *Config, clock quartz.Clock, logger zerolog.Logger) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Runner{config: config, clock: clock, logger: logger}
}

// Run executes every job concurrently, one goroutine and one generator
// instance per job. The first failure cancels the remaining jobs.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range r.config.Jobs {
		g.Go(func() error {
			return r.runJob(ctx, job)
		})
	}
	return g.Wait()
}

func (r *Runner) runJob(ctx context.Context, job JobConfig) error {
	start := r.clock.Now()

	r.logger.Info().
		Str("job", job.Name).
		Str("rng", job.Rng).
		Uint64("seed", job.Seed).
		Str("size", humanize.IBytes(uint64(job.Bytes))).
		Str("output", job.Output).
		Msg("Starting job")

	fill := newFill(job.Rng, job.Seed)

	f, err := os.Create(job.Output)
	if err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, chunkSize)
	remaining := job.Bytes
	for remaining > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		chunk := buf
		if remaining < int64(len(buf)) {
			chunk = buf[:remaining]
		}
		fill(chunk)
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("job %s: writing output: %w", job.Name, err)
		}
		remaining -= int64(len(chunk))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("job %s: flushing output: %w", job.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("job %s: closing output: %w", job.Name, err)
	}

	r.logger.Info().
		Str("job", job.Name).
		Dur("elapsed", r.clock.Since(start)).
		Msg("Job complete")
	return nil
}

// newFill returns the buffer-fill operation of a freshly seeded generator of
// the requested width.
func newFill(rng string, seed uint64) func([]byte) {
	if rng == RngSfc32 {
		return sfc.New32Seed(seed).Fill
	}
	return sfc.New64Seed(seed).Fill
}
