package invsqrt

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lukaszgryglicki/invsqrt/internal/kernel"
)

var (
	ErrInvalidSize = errors.New("grid size must be positive")
	ErrZeroLight   = errors.New("light direction must be non-zero and finite")
)

// SurfaceCfg holds the paraboloid coefficients:
// height(x, y) = DZ - (MX*x - DX)^2 - (MY*y - DY)^2.
type SurfaceCfg struct {
	MX Real `json:"mx"`
	MY Real `json:"my"`
	DX Real `json:"dx"`
	DY Real `json:"dy"`
	DZ Real `json:"dz"`
}

// DefaultSurface is the paraboloid the renderer uses unless configured otherwise.
func DefaultSurface() SurfaceCfg {
	return SurfaceCfg{MX: 0.15, MY: 0.15, DX: 7.5, DY: 7.5, DZ: 30}
}

func (s SurfaceCfg) height(x, y int) Real {
	a := s.MX*Real(x) - s.DX
	b := s.MY*Real(y) - s.DY
	return s.DZ - a*a - b*b
}

// FieldCfg collects everything needed to build a HeightField.
type FieldCfg struct {
	Size    int
	Light   Vector3
	Surface SurfaceCfg
	Kernel  kernel.Kind
	Workers int // <= 0 means Workers
}

// DefaultFieldCfg returns a fresh default configuration on every call.
func DefaultFieldCfg() FieldCfg {
	return FieldCfg{
		Size:    Size,
		Light:   Vector3{-1, -1, 3},
		Surface: DefaultSurface(),
		Kernel:  kernel.FISR,
	}
}

// HeightField is a padded (N+2)x(N+2) grid of heights with the N x N unit normals
// of its interior and the normalized light direction. It is immutable once built.
type HeightField struct {
	n       int
	kind    kernel.Kind
	workers int
	light   Vector3
	heights []Real // flat: x*(n+2) + y
	// normals, structure of arrays, flat: i*n + j for interior cell (i+1, j+1)
	nx, ny, nz []Real
}

// NewHeightField builds the height grid, the normal grid and the light direction,
// all normalized with cfg.Kernel.
func NewHeightField(cfg FieldCfg) (*HeightField, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}
	if l2 := cfg.Light.Dot(cfg.Light); l2 == 0 || math.IsNaN(l2) || math.IsInf(l2, 0) {
		return nil, fmt.Errorf("%w: %+v", ErrZeroLight, cfg.Light)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = max(Workers, 1)
	}

	n := cfg.Size
	side := n + 2
	h := &HeightField{
		n:       n,
		kind:    cfg.Kernel,
		workers: workers,
		light:   cfg.Light.Norm(cfg.Kernel),
		heights: make([]Real, side*side),
		nx:      make([]Real, n*n),
		ny:      make([]Real, n*n),
		nz:      make([]Real, n*n),
	}
	for x := 0; x < side; x++ {
		row := h.heights[x*side : (x+1)*side]
		for y := range row {
			row[y] = cfg.Surface.height(x, y)
		}
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for x := 1; x <= n; x++ {
		g.Go(func() error {
			h.buildNormalRow(x)
			return nil
		})
	}
	_ = g.Wait()

	DebugLog("height field built", "size", n, "kernel", cfg.Kernel, "light", h.light, "workers", workers)
	return h, nil
}

// buildNormalRow fills the normals of interior row x (1 <= x <= n).
func (h *HeightField) buildNormalRow(x int) {
	base := (x - 1) * h.n
	for y := 1; y <= h.n; y++ {
		v := Vector3{
			h.Height(x-1, y) - h.Height(x+1, y),
			h.Height(x, y-1) - h.Height(x, y+1),
			normalZ,
		}
		v.NormInPlace(h.kind)
		i := base + y - 1
		h.nx[i], h.ny[i], h.nz[i] = v.X, v.Y, v.Z
	}
}

// Size returns N, the side of the interior (shaded) grid.
func (h *HeightField) Size() int { return h.n }

// Kind returns the kernel the field was normalized with.
func (h *HeightField) Kind() kernel.Kind { return h.kind }

// Light returns the normalized light direction.
func (h *HeightField) Light() Vector3 { return h.light }

// Height returns the height at padded coordinates, 0 <= x, y <= N+1.
func (h *HeightField) Height(x, y int) Real { return h.heights[x*(h.n+2)+y] }

// Normal returns the unit normal of interior cell (i+1, j+1), 0 <= i, j < N.
func (h *HeightField) Normal(i, j int) Vector3 {
	k := i*h.n + j
	return Vector3{h.nx[k], h.ny[k], h.nz[k]}
}
