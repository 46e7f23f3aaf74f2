// Package config loads sweep parameters from a JSON file so a run can
// be described by a config checked in next to the simulation data.
//
// Fields omitted from the JSON file keep their current values, so
// partial configs are safe; a file that only pins the cutoff range
// leaves trial count and concurrency at their defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lammps-data/crater.report/internal/sweep"
)

// SweepConfig mirrors the cutoff-sweep options. Pointer fields
// distinguish "absent" from zero.
type SweepConfig struct {
	CutoffStart *float64 `json:"cutoff_start,omitempty"`
	CutoffEnd   *float64 `json:"cutoff_end,omitempty"`
	CutoffStep  *float64 `json:"cutoff_step,omitempty"`
	Trials      *int     `json:"trials,omitempty"`
	Concurrency *int     `json:"concurrency,omitempty"`
	Tool        *string  `json:"tool,omitempty"`
}

// Load reads a SweepConfig from a JSON file. The path must have a
// .json extension and the file is capped at 1MB.
func Load(path string) (*SweepConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg SweepConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Apply overlays the set fields onto a sweep configuration.
func (c *SweepConfig) Apply(cfg *sweep.Config) {
	if c.CutoffStart != nil {
		cfg.Range.Start = *c.CutoffStart
	}
	if c.CutoffEnd != nil {
		cfg.Range.End = *c.CutoffEnd
	}
	if c.CutoffStep != nil {
		cfg.Range.Step = *c.CutoffStep
	}
	if c.Trials != nil {
		cfg.Trials = *c.Trials
	}
	if c.Concurrency != nil {
		cfg.Concurrency = *c.Concurrency
	}
	if c.Tool != nil {
		cfg.Tool = *c.Tool
	}
}
