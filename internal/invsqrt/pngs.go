package invsqrt

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// encoderFor picks an image encoder from a file extension.
func encoderFor(ext string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".png":
		return func(w io.Writer, img image.Image) error {
			enc := png.Encoder{CompressionLevel: png.BestCompression}
			return enc.Encode(w, img)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", ext)
}

// SaveImage writes a single grid; the format follows the file extension
// (.jpg, .jpeg, .png or .bmp).
func SaveImage(g *PixelGrid, path string) error {
	enc, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, g.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveImageSequence writes frames as <prefix>1<ext>, <prefix>2<ext>, ...
// and returns the written paths.
func SaveImageSequence(frames []*PixelGrid, prefix, ext string) ([]string, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	paths := make([]string, 0, len(frames))
	for k, g := range frames {
		full := fmt.Sprintf("%s%d%s", prefix, k+1, ext)
		if err := SaveImage(g, full); err != nil {
			return paths, err
		}
		DebugLog("image saved", "path", full)
		paths = append(paths, full)
	}
	return paths, nil
}
