// Command shift-accum runs the component-shift tool over every trial
// directory and prints the aggregated per-component shift statistics.
//
// Usage:
//
//	shift-accum [flags] <base_dir>
//
// The tool pre-aggregates the displacement deltas within each trial;
// this command folds the per-trial partial counts, sums, and sums of
// squares, then reports the mean shift and/or the population RMS shift
// depending on -stat.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lammps-data/crater.report/internal/report"
	"github.com/lammps-data/crater.report/internal/stats"
	"github.com/lammps-data/crater.report/internal/sweep"
)

func main() {
	trials := flag.Int("trials", sweep.DefaultTrials, "Number of run_{i} trial directories")
	concurrency := flag.Int("concurrency", sweep.DefaultConcurrency, "Maximum analysis processes in flight")
	tool := flag.String("tool", sweep.DefaultShiftTool, "Analysis binary to invoke")
	statName := flag.String("stat", string(stats.StatBoth), "Statistic to report: mean, rms, or both")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: shift-accum [flags] <base_dir>")
		os.Exit(2)
	}

	stat, err := stats.ParseStat(*statName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shift-accum: %v\n", err)
		os.Exit(2)
	}

	summary, err := sweep.RunShift(context.Background(), sweep.ShiftConfig{
		BaseDir:     flag.Arg(0),
		Trials:      *trials,
		Concurrency: *concurrency,
		Tool:        *tool,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "shift-accum: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("count %g\n", summary.Count)
	if stat == stats.StatMean || stat == stats.StatBoth {
		fmt.Printf("mean %s\n", report.FormatMeans(summary.Mean))
	}
	if stat == stats.StatRMS || stat == stats.StatBoth {
		fmt.Printf("rms  %s\n", report.FormatMeans(summary.RMS))
	}
}
