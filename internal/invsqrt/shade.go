package invsqrt

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Coeffs are the ambient, diffuse and specular weights of the shading ratio.
type Coeffs struct {
	Ka, Kd, Ks Real
}

// ShadeCoeffs returns the fixed coefficients, with or without the specular term.
func ShadeCoeffs(specular bool) Coeffs {
	c := Coeffs{Ka: Ka, Kd: Kd}
	if specular {
		c.Ks = Ks
	}
	return c
}

// Ratio is Ka + Kd*n.L + Ks*n.H, where H is L lifted by 0.5 along Z
// (an approximation of the half vector, kept as is for output parity).
// It is the per-cell form of what ShadeWith computes a row at a time.
func (c Coeffs) Ratio(n, light Vector3) Real {
	return c.combine(n.Dot(light), n.Dot(light.Add(Vector3{0, 0, specularLift})))
}

// combine weighs the diffuse dot product dl and the specular one dh.
func (c Coeffs) combine(dl, dh Real) Real {
	return c.Ka + c.Kd*dl + c.Ks*dh
}

// Intensity maps a shading ratio to a gray level. Ratios above 1 saturate at 255;
// there is no lower clamp, so negative ratios give negative intensities.
// Halves round to even.
func Intensity(ratio Real) int {
	if ratio > 1 {
		return 255
	}
	return int(math.RoundToEven(255 * ratio))
}

// Shade computes the pixel grid with the default coefficients.
func (h *HeightField) Shade(specular bool) *PixelGrid {
	return h.ShadeWith(ShadeCoeffs(specular))
}

// ShadeWith computes a fresh pixel grid for the given coefficients.
func (h *HeightField) ShadeWith(c Coeffs) *PixelGrid {
	n := h.n
	g := NewPixelGrid(n)
	half := h.light.Add(Vector3{0, 0, specularLift})

	var eg errgroup.Group
	eg.SetLimit(h.workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			h.shadeRow(i, c, half, g.Pix[i*n:(i+1)*n])
			return nil
		})
	}
	_ = eg.Wait()
	return g
}

// shadeRow writes the intensities of normal row i into out.
func (h *HeightField) shadeRow(i int, c Coeffs, half Vector3, out []int) {
	n := h.n
	nx := h.nx[i*n : (i+1)*n]
	ny := h.ny[i*n : (i+1)*n]
	nz := h.nz[i*n : (i+1)*n]

	dl := make([]Real, n)
	dh := make([]Real, n)
	tmp := make([]Real, n)
	rowDot(dl, tmp, nx, ny, nz, h.light)
	rowDot(dh, tmp, nx, ny, nz, half)

	for j := range out {
		out[j] = Intensity(c.combine(dl[j], dh[j]))
	}
}

// rowDot sets dst[j] = nx[j]*v.X + ny[j]*v.Y + nz[j]*v.Z, in that order.
func rowDot(dst, tmp, nx, ny, nz []Real, v Vector3) {
	vecmath.ScaleBlock(dst, nx, v.X)
	vecmath.ScaleBlock(tmp, ny, v.Y)
	vecmath.AddBlockInPlace(dst, tmp)
	vecmath.ScaleBlock(tmp, nz, v.Z)
	vecmath.AddBlockInPlace(dst, tmp)
}
