// Command cutoff-sweep sweeps the clusterization cutoff distance across
// all trial directories and prints one fixed-width row of aggregated
// crater metrics per cutoff value.
//
// Usage:
//
//	cutoff-sweep [flags] <base_dir>
//
// where base_dir holds run_1 .. run_N trial directories. Rows land on
// stdout as they are finalized; on the first failure the sweep aborts
// with a non-zero exit status, leaving already-printed rows valid.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lammps-data/crater.report/internal/config"
	"github.com/lammps-data/crater.report/internal/report"
	"github.com/lammps-data/crater.report/internal/resultsdb"
	"github.com/lammps-data/crater.report/internal/sweep"
	"github.com/lammps-data/crater.report/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version information and exit")
	start := flag.Float64("start", 1.745, "First cutoff value")
	end := flag.Float64("end", 1.755, "Last cutoff value (inclusive)")
	step := flag.Float64("step", 0.005, "Cutoff increment")
	trials := flag.Int("trials", sweep.DefaultTrials, "Number of run_{i} trial directories")
	concurrency := flag.Int("concurrency", sweep.DefaultConcurrency, "Maximum analysis processes in flight")
	tool := flag.String("tool", sweep.DefaultCutoffTool, "Analysis binary to invoke")
	configPath := flag.String("config", "", "JSON config file overriding the flags above")
	csvOut := flag.String("csv", "", "Also write the summary rows to this CSV file")
	chartOut := flag.String("chart", "", "Also render an HTML chart to this file")
	plotOut := flag.String("plot", "", "Also render a PNG plot to this file")
	dbPath := flag.String("db", "", "Also archive the rows in this sqlite database")
	flag.Parse()

	if *showVersion {
		fmt.Println("cutoff-sweep", version.String())
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cutoff-sweep [flags] <base_dir>")
		os.Exit(2)
	}

	cfg := sweep.Config{
		BaseDir:     flag.Arg(0),
		Range:       sweep.CutoffRange{Start: *start, End: *end, Step: *step},
		Trials:      *trials,
		Concurrency: *concurrency,
		Tool:        *tool,
	}
	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
		fileCfg.Apply(&cfg)
	}

	driver, err := sweep.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
		os.Exit(1)
	}

	var csvWriter *report.CSVWriter
	if *csvOut != "" {
		f, err := os.Create(*csvOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		csvWriter = report.NewCSVWriter(f)
		if err := csvWriter.WriteHeader(5); err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
	}

	var archive *resultsdb.DB
	var runID string
	if *dbPath != "" {
		archive, err = resultsdb.NewDB(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
		defer archive.Close()
		runID, err = archive.BeginRun(cfg.BaseDir, cfg.Tool, cfg.Trials)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
	}

	var rows []sweep.Row
	err = driver.Run(context.Background(), func(row sweep.Row) error {
		fmt.Println(report.FormatRow(row))
		rows = append(rows, row)
		if csvWriter != nil {
			if err := csvWriter.WriteRow(row); err != nil {
				return err
			}
		}
		if archive != nil {
			if err := archive.RecordRow(runID, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
		os.Exit(1)
	}

	if csvWriter != nil {
		if err := csvWriter.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
	}
	if *chartOut != "" {
		f, err := os.Create(*chartOut)
		if err == nil {
			err = report.WriteChart(f, rows, "crater cutoff sweep")
			f.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
	}
	if *plotOut != "" {
		if err := report.SavePlot(*plotOut, rows, "crater cutoff sweep"); err != nil {
			fmt.Fprintf(os.Stderr, "cutoff-sweep: %v\n", err)
			os.Exit(1)
		}
	}
}
