package invsqrt

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/invsqrt/internal/kernel"
)

func TestIntensityClamp(t *testing.T) {
	cases := []struct {
		ratio Real
		want  int
	}{
		{1.0, 255},
		{1.5, 255},
		{0.5, int(math.RoundToEven(127.5))},
		{0.05, 13},
		{0, 0},
		{-0.1, -26}, // no lower clamp
		{-1, -255},
	}
	for _, c := range cases {
		if got := Intensity(c.ratio); got != c.want {
			t.Fatalf("Intensity(%g) = %d, want %d", c.ratio, got, c.want)
		}
	}
	if Intensity(0.5) != 128 {
		t.Fatalf("Intensity(0.5) = %d, want 128", Intensity(0.5))
	}
}

func TestShadeCoeffs(t *testing.T) {
	assert.Equal(t, Coeffs{Ka: 0.05, Kd: 0.6, Ks: 0.2}, ShadeCoeffs(true))
	assert.Equal(t, Coeffs{Ka: 0.05, Kd: 0.6, Ks: 0}, ShadeCoeffs(false))
}

func TestRatioLiftedLight(t *testing.T) {
	n := Vector3{0, 0, 1}
	l := Vector3{0, 0.6, 0.8}
	c := ShadeCoeffs(true)
	// n.(l + (0,0,0.5)) = 1.3
	assert.InDelta(t, 0.05+0.6*0.8+0.2*1.3, c.Ratio(n, l), 1e-15)
}

func TestShadeMatchesScalarRatio(t *testing.T) {
	for _, k := range []kernel.Kind{kernel.FISR, kernel.ISR} {
		for _, spec := range []bool{true, false} {
			cfg := DefaultFieldCfg()
			cfg.Size = 40
			cfg.Kernel = k
			h, err := NewHeightField(cfg)
			require.NoError(t, err)
			g := h.Shade(spec)
			c := ShadeCoeffs(spec)
			for i := 0; i < cfg.Size; i++ {
				for j := 0; j < cfg.Size; j++ {
					want := Intensity(c.Ratio(h.Normal(i, j), h.Light()))
					require.InDelta(t, want, g.At(i, j), 1, "%s spec=%v cell %d,%d", k, spec, i, j)
				}
			}
		}
	}
}

func TestShadeWithCustomCoeffsMatchesRatio(t *testing.T) {
	cfg := DefaultFieldCfg()
	cfg.Size = 24
	cfg.Light = Vector3{2, -1, 1}
	h, err := NewHeightField(cfg)
	require.NoError(t, err)
	for _, c := range []Coeffs{{Ka: 0.3}, {Kd: 1}, {Ks: 1}, {Ka: 0.1, Kd: -0.4, Ks: 0.9}} {
		g := h.ShadeWith(c)
		for i := 0; i < cfg.Size; i++ {
			for j := 0; j < cfg.Size; j++ {
				want := Intensity(c.Ratio(h.Normal(i, j), h.Light()))
				require.InDelta(t, want, g.At(i, j), 1, "%+v cell %d,%d", c, i, j)
			}
		}
	}
}

func TestShadeFreshAndDeterministic(t *testing.T) {
	cfg := DefaultFieldCfg()
	cfg.Size = 16
	h, err := NewHeightField(cfg)
	require.NoError(t, err)
	a := h.Shade(true)
	b := h.Shade(true)
	require.NotSame(t, a, b)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("shade not deterministic:\n%s", diff)
	}
	a.Pix[0] = -999
	require.NotEqual(t, -999, h.Shade(true).Pix[0])
}

func TestShadeKeepsNegativeIntensities(t *testing.T) {
	cfg := DefaultFieldCfg()
	cfg.Size = 10
	cfg.Surface = SurfaceCfg{MX: 1, DZ: 100} // h = 100 - x^2: normals lean towards +X
	cfg.Light = Vector3{-1, 0, 0}
	h, err := NewHeightField(cfg)
	require.NoError(t, err)
	g := h.Shade(false)
	require.Positive(t, g.OutOfRange())
	neg := 0
	for _, v := range g.Pix {
		if v < 0 {
			neg++
		}
	}
	require.Positive(t, neg)

	img := g.Image()
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			if g.At(i, j) < 0 {
				require.Equal(t, uint8(0), img.NRGBAAt(i, j).R)
			}
		}
	}
}

func TestPixelGridImage(t *testing.T) {
	g := NewPixelGrid(3)
	copy(g.Pix, []int{0, 10, 20, 300, -5, 128, 255, 1, 2})
	img := g.Image()
	require.Equal(t, 3, img.Bounds().Dx())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c := img.NRGBAAt(i, j)
			want := toByte(g.At(i, j))
			require.Equal(t, want, c.R)
			require.Equal(t, want, c.G)
			require.Equal(t, want, c.B)
			require.Equal(t, uint8(255), c.A)
		}
	}
	// column i, row j
	require.Equal(t, uint8(10), img.NRGBAAt(0, 1).R)
	require.Equal(t, uint8(255), img.NRGBAAt(1, 0).R)
	require.Equal(t, 2, g.OutOfRange())
}
