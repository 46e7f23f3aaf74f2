package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lammps-data/crater.report/internal/sweep"
)

var seriesColors = []color.Color{
	color.RGBA{R: 230, G: 57, B: 70, A: 255},
	color.RGBA{R: 69, G: 123, B: 157, A: 255},
	color.RGBA{R: 42, G: 157, B: 143, A: 255},
	color.RGBA{R: 233, G: 196, B: 106, A: 255},
	color.RGBA{R: 108, G: 92, B: 231, A: 255},
}

// SavePlot writes a PNG line plot of every aggregated metric against
// the swept cutoff. The output format follows the file extension.
func SavePlot(path string, rows []sweep.Row, title string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "cutoff"
	p.Y.Label.Text = "mean"
	p.Legend.Top = true

	width := len(rows[0].Mean)
	for k := 0; k < width; k++ {
		pts := make(plotter.XYs, len(rows))
		for i, row := range rows {
			pts[i] = plotter.XY{X: row.Cutoff, Y: row.Mean[k]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("metric %d: %w", k+1, err)
		}
		line.Color = seriesColors[k%len(seriesColors)]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("metric_%d", k+1), line)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
