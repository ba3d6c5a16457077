package invsqrt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// maxRawSize is the largest grid side a raw file may declare.
const maxRawSize = 1 << 15

// SaveRawGrid writes the grid as a zstd stream: int32 N, then N*N int32
// intensities (little-endian), without clamping.
func (g *PixelGrid) SaveRawGrid(path string) error {
	if g.N > maxRawSize {
		return fmt.Errorf("grid size %d above %d", g.N, maxRawSize)
	}
	if g.N < 0 || len(g.Pix) != g.N*g.N {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (N*N)", len(g.Pix), g.N*g.N)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := binary.Write(zw, binary.LittleEndian, int32(g.N)); err != nil {
		zw.Close()
		return err
	}
	body := make([]int32, len(g.Pix))
	for i, v := range g.Pix {
		body[i] = int32(v)
	}
	if err := binary.Write(zw, binary.LittleEndian, body); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return w.Flush()
}

// LoadRawGrid reads a grid written by SaveRawGrid.
func LoadRawGrid(path string) (*PixelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var n int32
	if err := binary.Read(zr, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if n < 0 || n > maxRawSize {
		return nil, fmt.Errorf("grid size %d outside [0, %d]", n, maxRawSize)
	}
	body := make([]int32, int(n)*int(n))
	if err := binary.Read(zr, binary.LittleEndian, body); err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	g := NewPixelGrid(int(n))
	for i, v := range body {
		g.Pix[i] = int(v)
	}
	return g, nil
}
