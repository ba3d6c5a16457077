package invsqrt

import (
	"image"
)

// PixelGrid is an N x N grid of gray intensities. Pix[i*N+j] is image column i,
// row j. Values may fall outside [0, 255]; see Intensity.
type PixelGrid struct {
	N   int
	Pix []int
}

func NewPixelGrid(n int) *PixelGrid {
	return &PixelGrid{N: n, Pix: make([]int, n*n)}
}

// At returns the intensity at column i, row j.
func (g *PixelGrid) At(i, j int) int { return g.Pix[i*g.N+j] }

// OutOfRange counts intensities outside [0, 255].
func (g *PixelGrid) OutOfRange() int {
	c := 0
	for _, v := range g.Pix {
		if v < 0 || v > 255 {
			c++
		}
	}
	return c
}

func toByte(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Image renders the grid as an opaque gray NRGBA image, clamping to [0, 255].
func (g *PixelGrid) Image() *image.NRGBA {
	n := g.N
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for j := 0; j < n; j++ {
		rowOff := j * img.Stride
		for i := 0; i < n; i++ {
			b := toByte(g.At(i, j))
			p := rowOff + i*4
			img.Pix[p+0] = b
			img.Pix[p+1] = b
			img.Pix[p+2] = b
			img.Pix[p+3] = 255
		}
	}
	return img
}
