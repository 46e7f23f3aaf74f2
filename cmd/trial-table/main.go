// Command trial-table analyzes every trial at one fixed cutoff and
// echoes each tool's raw output prefixed by its trial index, strictly
// in index order despite concurrent execution. The resulting table can
// be re-aggregated offline with mean-table.
//
// Usage:
//
//	trial-table [flags] <base_dir>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lammps-data/crater.report/internal/sweep"
)

func main() {
	cutoff := flag.Float64("cutoff", 1.75, "Cutoff value passed to the analysis tool")
	trials := flag.Int("trials", sweep.DefaultTrials, "Number of run_{i} trial directories")
	concurrency := flag.Int("concurrency", sweep.DefaultConcurrency, "Maximum analysis processes in flight")
	tool := flag.String("tool", sweep.DefaultCutoffTool, "Analysis binary to invoke")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: trial-table [flags] <base_dir>")
		os.Exit(2)
	}

	outputs, err := sweep.RunTable(context.Background(), sweep.TableConfig{
		BaseDir:     flag.Arg(0),
		Cutoff:      *cutoff,
		Trials:      *trials,
		Concurrency: *concurrency,
		Tool:        *tool,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "trial-table: %v\n", err)
		os.Exit(1)
	}

	for i, out := range outputs {
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		fmt.Printf("%d %s", i+1, out)
	}
}
