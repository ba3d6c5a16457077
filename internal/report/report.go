// Package report measures the inverse square root kernels against math.Sqrt
// and renders the errors as charts.
package report

import (
	"errors"
	"fmt"
	"math"
	"sort"

	approx "github.com/meko-christian/algo-approx"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lukaszgryglicki/invsqrt/internal/kernel"
)

// Series names, in chart order.
const (
	FISR1  = "fisr-1"
	FISR2  = "fisr-2"
	ISR    = "isr"
	Approx = "approx"
)

var seriesNames = []string{FISR1, FISR2, ISR, Approx}

// bounds are the documented relative error bounds; Approx has none.
var bounds = map[string]float64{
	FISR1: kernel.OneStepBound,
	FISR2: kernel.TwoStepBound,
	ISR:   kernel.BitSqrtBound,
}

// Sample holds the relative errors |y*sqrt(X) - 1| of each kernel at X.
type Sample struct {
	X      float64
	FISR1  float64
	FISR2  float64
	ISR    float64
	Approx float64
}

func (s Sample) get(name string) float64 {
	switch name {
	case FISR1:
		return s.FISR1
	case FISR2:
		return s.FISR2
	case ISR:
		return s.ISR
	default:
		return s.Approx
	}
}

type Summary struct {
	Name      string
	Max, Mean float64
	P99       float64
}

type Report struct {
	Samples []Sample
}

func relErr(y, x float64) float64 { return math.Abs(y*math.Sqrt(x) - 1) }

// Build samples n points spaced evenly in log10 over [lo, hi].
func Build(lo, hi float64, n int) (*Report, error) {
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("invalid range [%g, %g]", lo, hi)
	}
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	a, b := math.Log10(lo), math.Log10(hi)
	r := &Report{Samples: make([]Sample, n)}
	for i := range r.Samples {
		x := math.Pow(10, a+(b-a)*float64(i)/float64(n-1))
		r.Samples[i] = Sample{
			X:      x,
			FISR1:  relErr(kernel.FastInvSqrt(x, false), x),
			FISR2:  relErr(kernel.FastInvSqrt(x, true), x),
			ISR:    relErr(kernel.BitSqrt(x, true), x),
			Approx: relErr(1/approx.FastSqrt(x), x),
		}
	}
	return r, nil
}

// Column returns the errors of one series in sample order.
func (r *Report) Column(name string) []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.get(name)
	}
	return out
}

// Summaries returns max, mean and 99th percentile error per series.
func (r *Report) Summaries() []Summary {
	out := make([]Summary, 0, len(seriesNames))
	for _, name := range seriesNames {
		col := r.Column(name)
		if len(col) == 0 {
			continue
		}
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		out = append(out, Summary{
			Name: name,
			Max:  floats.Max(col),
			Mean: stat.Mean(col, nil),
			P99:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
		})
	}
	return out
}

// Check reports every sample where a kernel with a documented bound exceeds it.
func (r *Report) Check() error {
	var errs []error
	for _, name := range seriesNames {
		bound, ok := bounds[name]
		if !ok {
			continue
		}
		for _, s := range r.Samples {
			if e := s.get(name); !(e < bound) {
				errs = append(errs, fmt.Errorf("%s: x=%g error %.3g >= %.3g", name, s.X, e, bound))
			}
		}
	}
	return errors.Join(errs...)
}

// logErr maps an error to log10 space for charts, flooring exact results.
func logErr(e float64) float64 {
	return math.Log10(math.Max(e, 1e-17))
}
