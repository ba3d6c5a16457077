package invsqrt

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
)

var ErrNoFrames = errors.New("no frames to render")

// SweepLights returns 2*about light directions tracing a circle of radius about
// at height 3*about: the upper half for i = -about..about-1, then the lower
// half for i = about..-about+1.
func SweepLights(about int) []Vector3 {
	if about <= 0 {
		return nil
	}
	r2 := Real(about * about)
	hl := Real(3 * about)
	out := make([]Vector3, 0, 2*about)
	for i := -about; i < about; i++ {
		out = append(out, Vector3{Real(i), math.Sqrt(r2 - Real(i*i)), hl})
	}
	for i := about; i > -about; i-- {
		out = append(out, Vector3{Real(i), -math.Sqrt(r2 - Real(i*i)), hl})
	}
	return out
}

// RenderFrames builds one height field per light (base supplies everything but
// the light) and shades it. Up to base.Workers frames are rendered concurrently;
// they are returned in the order of lights.
func RenderFrames(ctx context.Context, base FieldCfg, lights []Vector3, c Coeffs) ([]*PixelGrid, error) {
	if len(lights) == 0 {
		return nil, ErrNoFrames
	}
	frames := make([]*PixelGrid, len(lights))
	workers := base.Workers
	if workers <= 0 {
		workers = Workers
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for k, l := range lights {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Light = l
			// frames already run in parallel
			cfg.Workers = 1
			h, err := NewHeightField(cfg)
			if err != nil {
				return err
			}
			frames[k] = h.ShadeWith(c)
			DebugLog("frame rendered", "frame", k+1, "of", len(lights), "light", l)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
