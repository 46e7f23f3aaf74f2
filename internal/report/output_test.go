package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lammps-data/crater.report/internal/sweep"
)

var sampleRows = []sweep.Row{
	{Cutoff: 1.745, Mean: []float64{1, 2, 3, 4, 5}},
	{Cutoff: 1.75, Mean: []float64{1.5, 2.5, 3.5, 4.5, 5.5}},
	{Cutoff: 1.755, Mean: []float64{2, 3, 4, 5, 6}},
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	if err := w.WriteHeader(5); err != nil {
		t.Fatalf("WriteHeader() error: %v", err)
	}
	for _, row := range sampleRows {
		if err := w.WriteRow(row); err != nil {
			t.Fatalf("WriteRow() error: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("CSV has %d lines, want 4", len(lines))
	}
	if lines[0] != "cutoff,mean_1,mean_2,mean_3,mean_4,mean_5" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if lines[1] != "1.745,1,2,3,4,5" {
		t.Errorf("CSV row = %q", lines[1])
	}
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, sampleRows, "crater cutoff sweep"); err != nil {
		t.Fatalf("WriteChart() error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"crater cutoff sweep", "metric_1", "metric_5", "1.755"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
}

func TestWriteChart_NoRows(t *testing.T) {
	if err := WriteChart(&bytes.Buffer{}, nil, "empty"); err == nil {
		t.Error("WriteChart() with no rows expected error, got nil")
	}
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.png")
	if err := SavePlot(path, sampleRows, "crater cutoff sweep"); err != nil {
		t.Fatalf("SavePlot() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestSavePlot_NoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.png")
	if err := SavePlot(path, nil, "empty"); err == nil {
		t.Error("SavePlot() with no rows expected error, got nil")
	}
}
