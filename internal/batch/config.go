// Package batch runs named bulk-generation jobs described by an HCL file.
// Each job owns its own generator instance, so jobs can run concurrently
// without any locking.
package batch

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Generator names accepted in a job block.
const (
	RngSfc32 = "sfc32"
	RngSfc64 = "sfc64"
)

// Config represents a complete batch job file.
type Config struct {
	Jobs []JobConfig `hcl:"job,block"`
}

// JobConfig defines one bulk-generation job.
type JobConfig struct {
	Name   string `hcl:"name,label"`
	Rng    string `hcl:"rng,optional"`
	Seed   uint64 `hcl:"seed,optional"`
	Bytes  int64  `hcl:"bytes"`
	Output string `hcl:"output"`
}

// LoadConfig loads a batch configuration from an HCL file.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	for i := range config.Jobs {
		if config.Jobs[i].Rng == "" {
			config.Jobs[i].Rng = RngSfc64
		}
	}

	return &config, nil
}

// Validate validates the batch configuration.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("at least one job must be configured")
	}

	seen := make(map[string]bool, len(c.Jobs))
	for _, job := range c.Jobs {
		if seen[job.Name] {
			return fmt.Errorf("duplicate job name: %s", job.Name)
		}
		seen[job.Name] = true

		if job.Rng != RngSfc32 && job.Rng != RngSfc64 {
			return fmt.Errorf("job %s: invalid rng %q", job.Name, job.Rng)
		}
		if job.Bytes <= 0 {
			return fmt.Errorf("job %s: bytes must be positive", job.Name)
		}
		if job.Output == "" {
			return fmt.Errorf("job %s: output path is required", job.Name)
		}
	}
	return nil
}
