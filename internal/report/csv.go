package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lammps-data/crater.report/internal/sweep"
)

// CSVWriter writes sweep summary rows as CSV.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSV writer over w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the column header for rows of the given mean width.
func (c *CSVWriter) WriteHeader(width int) error {
	header := []string{"cutoff"}
	for i := 1; i <= width; i++ {
		header = append(header, fmt.Sprintf("mean_%d", i))
	}
	return c.w.Write(header)
}

// WriteRow writes one summary row.
func (c *CSVWriter) WriteRow(row sweep.Row) error {
	record := []string{strconv.FormatFloat(row.Cutoff, 'g', -1, 64)}
	for _, m := range row.Mean {
		record = append(record, strconv.FormatFloat(m, 'g', -1, 64))
	}
	return c.w.Write(record)
}

// Flush flushes buffered rows and reports any accumulated write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
