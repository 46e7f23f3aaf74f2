// Package report renders finalized sweep results: fixed-width text
// tables, CSV files, HTML charts, and PNG plots.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lammps-data/crater.report/internal/analysis"
	"github.com/lammps-data/crater.report/internal/stats"
	"github.com/lammps-data/crater.report/internal/sweep"
)

// FormatRow renders one sweep row as fixed-width columns: the cutoff
// followed by the per-component means, each %9.3f.
func FormatRow(row sweep.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%9.3f", row.Cutoff)
	for _, m := range row.Mean {
		fmt.Fprintf(&b, "%9.3f", m)
	}
	return b.String()
}

// ParseRow parses a FormatRow line back into a sweep row.
func ParseRow(line string) (sweep.Row, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return sweep.Row{}, fmt.Errorf("summary row needs a cutoff and at least one mean, got %d fields", len(fields))
	}
	values, err := analysis.ParseRecord(line, len(fields))
	if err != nil {
		return sweep.Row{}, err
	}
	return sweep.Row{Cutoff: values[0], Mean: values[1:]}, nil
}

// FormatMeans renders an offline mean-table row, each value %8.2f.
func FormatMeans(means []float64) string {
	var b strings.Builder
	for _, m := range means {
		fmt.Fprintf(&b, "%8.2f", m)
	}
	return b.String()
}

// TableMeans re-aggregates a saved raw trial table: each line is a
// trial index followed by the metric values, and the column sums are
// divided by the configured trial count (not the line count, so a
// truncated table shows up as a shifted mean rather than passing
// silently).
func TableMeans(r io.Reader, trials int) ([]float64, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trial count must be at least 1, got %d", trials)
	}

	acc := stats.NewVectorAccumulator(analysis.CutoffRecordLen)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		// Drop the leading trial index.
		rec, err := analysis.ParseRecord(strings.Join(fields[1:], " "), analysis.CutoffRecordLen)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := acc.Add(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	means := acc.Sum()
	for i := range means {
		means[i] /= float64(trials)
	}
	return means, nil
}
