package report

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildValidation(t *testing.T) {
	_, err := Build(0, 10, 10)
	require.Error(t, err)
	_, err = Build(10, 1, 10)
	require.Error(t, err)
	_, err = Build(1, 10, 1)
	require.Error(t, err)
}

func TestBuildSamplesLogSpaced(t *testing.T) {
	r, err := Build(1e-2, 1e2, 5)
	require.NoError(t, err)
	require.Len(t, r.Samples, 5)
	for i, want := range []float64{1e-2, 1e-1, 1, 10, 100} {
		assert.InDelta(t, want, r.Samples[i].X, want*1e-12)
	}
}

func TestKernelsWithinBounds(t *testing.T) {
	r, err := Build(1e-6, 1e10, 3000)
	require.NoError(t, err)
	require.NoError(t, r.Check())

	sums := r.Summaries()
	require.Len(t, sums, 4)
	byName := map[string]Summary{}
	for _, s := range sums {
		byName[s.Name] = s
		if s.Name == Approx {
			// external baseline, no documented bound
			continue
		}
		assert.LessOrEqual(t, s.Mean, s.Max, s.Name)
		assert.LessOrEqual(t, s.P99, s.Max, s.Name)
	}
	assert.Less(t, byName[FISR2].Max, byName[FISR1].Max)
	assert.Less(t, byName[ISR].Max, byName[FISR2].Max)
}

func TestCheckReportsViolations(t *testing.T) {
	r := &Report{Samples: []Sample{{X: 2, FISR1: 0.5}}}
	err := r.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), FISR1)
}

func TestColumn(t *testing.T) {
	r := &Report{Samples: []Sample{{X: 1, FISR1: 1, FISR2: 2, ISR: 3, Approx: 4}}}
	assert.Equal(t, []float64{2}, r.Column(FISR2))
	assert.Equal(t, []float64{4}, r.Column(Approx))
}

func TestLogErrFloorsZero(t *testing.T) {
	assert.Equal(t, -17.0, logErr(0))
	assert.InDelta(t, -3, logErr(1e-3), 1e-12)
	assert.False(t, math.IsInf(logErr(0), 0))
}

func TestSavePlotAndHTML(t *testing.T) {
	r, err := Build(1e-3, 1e3, 50)
	require.NoError(t, err)
	dir := t.TempDir()

	png := filepath.Join(dir, "acc.png")
	require.NoError(t, r.SavePlot(png))
	st, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, st.Size())

	html := filepath.Join(dir, "acc.html")
	require.NoError(t, r.SaveHTML(html))
	b, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), FISR2))
}
