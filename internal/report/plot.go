package report

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var seriesColors = map[string]color.RGBA{
	FISR1:  {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	FISR2:  {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	ISR:    {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	Approx: {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// SavePlot writes a PNG line chart of log10 relative error against x (log scale).
func (r *Report) SavePlot(path string) error {
	p := plot.New()
	p.Title.Text = "Inverse square root kernels - relative error"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "log10 |y*sqrt(x) - 1|"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	for _, name := range seriesNames {
		pts := make(plotter.XYs, 0, len(r.Samples))
		for _, s := range r.Samples {
			y := logErr(s.get(name))
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: s.X, Y: y})
		}
		if len(pts) == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = seriesColors[name]
		l.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	p.Legend.Top = true

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
