package sweep

import (
	"context"
	"fmt"
	"log"

	"github.com/lammps-data/crater.report/internal/analysis"
	"github.com/lammps-data/crater.report/internal/batch"
	"github.com/lammps-data/crater.report/internal/stats"
	"github.com/lammps-data/crater.report/internal/toolexec"
	"github.com/lammps-data/crater.report/internal/trial"
)

// ShiftConfig holds the parameters of one component-shift accumulation
// run. No cutoff is swept; the tool takes only the two dump paths.
type ShiftConfig struct {
	BaseDir     string
	Trials      int
	Concurrency int
	Tool        string
}

// Validate checks the configuration before any process is spawned.
func (c ShiftConfig) Validate() error {
	return validateRun(c.BaseDir, c.Trials, c.Concurrency)
}

// ShiftSummary is the finalized aggregate of a shift accumulation run.
type ShiftSummary struct {
	Count float64
	Sum   []float64
	Sum2  []float64
	Mean  []float64
	RMS   []float64
}

// RunShift runs the component-shift tool over every trial and folds the
// pre-aggregated per-trial outputs into one summary.
func RunShift(ctx context.Context, cfg ShiftConfig) (ShiftSummary, error) {
	if err := cfg.Validate(); err != nil {
		return ShiftSummary{}, err
	}
	log.Printf("[Shift] accumulating %d trials (concurrency %d)", cfg.Trials, cfg.Concurrency)

	invoker := toolexec.NewInvoker(cfg.Tool)
	outputs, err := batch.Run(ctx, cfg.Trials, cfg.Concurrency,
		func(ctx context.Context, index int) (string, error) {
			tr := trial.New(cfg.BaseDir, index)
			return invoker.Invoke(ctx, tr.InitialDump(), tr.FinalDump())
		})
	if err != nil {
		return ShiftSummary{}, err
	}

	acc := stats.NewShiftAccumulator()
	for i, out := range outputs {
		parsed, err := analysis.ParseShiftOutput(out)
		if err != nil {
			return ShiftSummary{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		if err := acc.Add(parsed.Count, parsed.Sum, parsed.Sum2); err != nil {
			return ShiftSummary{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
	}

	return ShiftSummary{
		Count: acc.Count(),
		Sum:   acc.Sum(),
		Sum2:  acc.Sum2(),
		Mean:  acc.Mean(),
		RMS:   acc.RMS(),
	}, nil
}
