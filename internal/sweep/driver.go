package sweep

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/lammps-data/crater.report/internal/analysis"
	"github.com/lammps-data/crater.report/internal/batch"
	"github.com/lammps-data/crater.report/internal/stats"
	"github.com/lammps-data/crater.report/internal/toolexec"
	"github.com/lammps-data/crater.report/internal/trial"
)

// Defaults for the research workload: ~100 repeated runs, 10 analysis
// processes in flight.
const (
	DefaultTrials      = 100
	DefaultConcurrency = 10
	DefaultCutoffTool  = "crater-analysis"
	DefaultShiftTool   = "component-shift"
)

// Config holds the parameters of one cutoff sweep.
type Config struct {
	BaseDir     string
	Range       CutoffRange
	Trials      int
	Concurrency int
	Tool        string
}

// Validate checks the configuration before any process is spawned.
func (c Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	return validateRun(c.BaseDir, c.Trials, c.Concurrency)
}

func validateRun(baseDir string, trials, concurrency int) error {
	if trials < 1 {
		return fmt.Errorf("trial count must be at least 1, got %d", trials)
	}
	if concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return fmt.Errorf("base directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base directory %s is not a directory", baseDir)
	}
	return nil
}

// Row is one finalized summary line of the sweep: the cutoff value and
// the per-component mean over all trials.
type Row struct {
	Cutoff float64
	Mean   []float64
}

// Driver runs the cutoff sweep.
type Driver struct {
	cfg     Config
	invoker *toolexec.Invoker
}

// New validates cfg and creates a driver.
func New(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{cfg: cfg, invoker: toolexec.NewInvoker(cfg.Tool)}, nil
}

// Run sweeps the cutoff values in ascending order, calling emit with
// one finalized row per value. The first batch failure aborts the
// sweep; rows already emitted stand.
func (d *Driver) Run(ctx context.Context, emit func(Row) error) error {
	cutoffs := d.cfg.Range.Values()
	log.Printf("[Sweep] %d cutoff values over %d trials (concurrency %d): %v",
		len(cutoffs), d.cfg.Trials, d.cfg.Concurrency, cutoffs)

	for _, cutoff := range cutoffs {
		row, err := d.runCutoff(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("cutoff %g: %w", cutoff, err)
		}
		if err := emit(row); err != nil {
			return err
		}
	}
	return nil
}

// runCutoff executes one full trial batch for a fixed cutoff and folds
// the parsed records into a fresh accumulator.
func (d *Driver) runCutoff(ctx context.Context, cutoff float64) (Row, error) {
	cutoffArg := strconv.FormatFloat(cutoff, 'g', -1, 64)
	outputs, err := batch.Run(ctx, d.cfg.Trials, d.cfg.Concurrency,
		func(ctx context.Context, index int) (string, error) {
			tr := trial.New(d.cfg.BaseDir, index)
			return d.invoker.Invoke(ctx, tr.InitialDump(), tr.FinalDump(), tr.Dir(), "-c", cutoffArg)
		})
	if err != nil {
		return Row{}, err
	}

	acc := stats.NewVectorAccumulator(analysis.CutoffRecordLen)
	for i, out := range outputs {
		rec, err := analysis.ParseRecord(out, analysis.CutoffRecordLen)
		if err != nil {
			return Row{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		if err := acc.Add(rec); err != nil {
			return Row{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
	}
	if acc.Count() != d.cfg.Trials {
		return Row{}, fmt.Errorf("aggregate incomplete: folded %d of %d trials",
			acc.Count(), d.cfg.Trials)
	}
	return Row{Cutoff: cutoff, Mean: acc.Mean()}, nil
}
