// Command mean-table re-aggregates a saved trial table (the output of
// trial-table): it drops the leading trial index on each line, sums
// the metric columns, divides by the configured trial count, and
// prints one fixed-width row of means.
//
// Usage:
//
//	mean-table [flags] <table_file>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lammps-data/crater.report/internal/report"
	"github.com/lammps-data/crater.report/internal/sweep"
)

func main() {
	trials := flag.Int("trials", sweep.DefaultTrials, "Trial count the table was built from")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mean-table [flags] <table_file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mean-table: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	means, err := report.TableMeans(f, *trials)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mean-table: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(report.FormatMeans(means))
}
