package sweep

import (
	"context"
	"log"
	"strconv"

	"github.com/lammps-data/crater.report/internal/batch"
	"github.com/lammps-data/crater.report/internal/toolexec"
	"github.com/lammps-data/crater.report/internal/trial"
)

// TableConfig holds the parameters of a raw-table run: every trial is
// analyzed at one fixed cutoff and the unparsed tool output is kept.
type TableConfig struct {
	BaseDir     string
	Cutoff      float64
	Trials      int
	Concurrency int
	Tool        string
}

// Validate checks the configuration before any process is spawned.
func (c TableConfig) Validate() error {
	return validateRun(c.BaseDir, c.Trials, c.Concurrency)
}

// RunTable runs the analysis tool for every trial at the fixed cutoff
// and returns the raw output texts in trial index order.
func RunTable(ctx context.Context, cfg TableConfig) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("[Table] cutoff %g over %d trials (concurrency %d)",
		cfg.Cutoff, cfg.Trials, cfg.Concurrency)

	invoker := toolexec.NewInvoker(cfg.Tool)
	cutoffArg := strconv.FormatFloat(cfg.Cutoff, 'g', -1, 64)
	return batch.Run(ctx, cfg.Trials, cfg.Concurrency,
		func(ctx context.Context, index int) (string, error) {
			tr := trial.New(cfg.BaseDir, index)
			return invoker.Invoke(ctx, tr.InitialDump(), tr.FinalDump(), tr.Dir(), "-c", cutoffArg)
		})
}
