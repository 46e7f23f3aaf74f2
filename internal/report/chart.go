package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lammps-data/crater.report/internal/sweep"
)

// WriteChart renders an HTML line chart of every aggregated metric
// against the swept cutoff.
func WriteChart(w io.Writer, rows []sweep.Row, title string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d cutoff values", len(rows))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "cutoff"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	x := make([]string, len(rows))
	for i, row := range rows {
		x[i] = strconv.FormatFloat(row.Cutoff, 'g', -1, 64)
	}
	line.SetXAxis(x)

	width := len(rows[0].Mean)
	for k := 0; k < width; k++ {
		data := make([]opts.LineData, len(rows))
		for i, row := range rows {
			data[i] = opts.LineData{Value: row.Mean[k]}
		}
		line.AddSeries(fmt.Sprintf("metric_%d", k+1), data)
	}

	return line.Render(w)
}
