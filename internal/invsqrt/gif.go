package invsqrt

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
)

// grayPalette holds all 256 gray levels, so shaded frames quantize exactly.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// SaveAnimatedGIF writes one GIF frame per pixel grid.
// delay is in 100ths of a second; loop 0 repeats forever.
func SaveAnimatedGIF(frames []*PixelGrid, path string, delay, loop int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: loop,
	}

	step := max(1, len(frames)/100)
	for k, g := range frames {
		if k%step == 0 {
			DebugLog("gif progress", "percent", fmt.Sprintf("%.2f", Real(k+1)*100/Real(len(frames))))
		}
		rgba := g.Image()
		pimg := image.NewPaletted(rgba.Bounds(), grayPalette)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
