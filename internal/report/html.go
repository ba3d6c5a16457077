package report

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// SaveHTML writes an interactive go-echarts line chart of the same data as SavePlot.
func (r *Report) SaveHTML(path string) error {
	xs := make([]string, len(r.Samples))
	for i, s := range r.Samples {
		xs[i] = fmt.Sprintf("%.3g", s.X)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Kernel accuracy", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Inverse square root kernels", Subtitle: fmt.Sprintf("samples=%d", len(r.Samples))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "log10 relative error", NameLocation: "middle", NameGap: 40}),
	)
	line.SetXAxis(xs)
	for _, name := range seriesNames {
		data := make([]opts.LineData, len(r.Samples))
		for i, s := range r.Samples {
			y := logErr(s.get(name))
			if math.IsNaN(y) || math.IsInf(y, 0) {
				data[i] = opts.LineData{Value: "-"}
				continue
			}
			data[i] = opts.LineData{Value: y}
		}
		line.AddSeries(name, data)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := line.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
