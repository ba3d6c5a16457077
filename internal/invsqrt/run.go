package invsqrt

import (
	"context"
	"fmt"
	"time"

	"github.com/lukaszgryglicki/invsqrt/internal/kernel"
	"github.com/lukaszgryglicki/invsqrt/internal/report"
)

// Run loads the config at cfgPath (empty = defaults), applies the package
// toggles and renders.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if UseISR {
		cfg.Kernel = kernel.ISR
	}
	if Animate {
		cfg.Animate = true
	}
	switch {
	case PNG:
		cfg.Format = ".png"
	case BMP:
		cfg.Format = ".bmp"
	}
	return RunConfig(context.Background(), cfg)
}

// RunConfig renders either the single static image (About == 0) or the light
// sweep, as numbered images or one animated GIF.
func RunConfig(ctx context.Context, cfg *Config) error {
	cfg.applyDefaults()
	start := time.Now()

	var (
		frames []*PixelGrid
		names  []string
	)
	if cfg.About == 0 {
		h, err := NewHeightField(cfg.FieldCfg())
		if err != nil {
			return err
		}
		g := h.ShadeWith(cfg.Coeffs())
		path := cfg.Out + "basic" + cfg.Format
		if err := SaveImage(g, path); err != nil {
			return err
		}
		frames, names = []*PixelGrid{g}, []string{cfg.Out + "basic"}
		logger.Info("image saved", "path", path, "kernel", cfg.Kernel, "took", time.Since(start))
	} else {
		lights := SweepLights(cfg.About)
		var err error
		frames, err = RenderFrames(ctx, cfg.FieldCfg(), lights, cfg.Coeffs())
		if err != nil {
			return fmt.Errorf("render sweep: %w", err)
		}
		for k := range frames {
			names = append(names, fmt.Sprintf("%s%d", cfg.Out, k+1))
		}
		if cfg.Animate {
			path := cfg.Out + ".gif"
			if err := SaveAnimatedGIF(frames, path, cfg.GIFDelay, cfg.GIFLoop); err != nil {
				return err
			}
			logger.Info("gif saved", "path", path, "frames", len(frames), "kernel", cfg.Kernel, "took", time.Since(start))
		} else {
			if _, err := SaveImageSequence(frames, cfg.Out, cfg.Format); err != nil {
				return err
			}
			logger.Info("image(s) saved", "frames", len(frames), "kernel", cfg.Kernel, "took", time.Since(start))
		}
	}

	clipped := 0
	for _, g := range frames {
		clipped += g.OutOfRange()
	}
	if clipped > 0 {
		logger.Warn("intensities outside [0, 255] clamped in image output", "count", clipped)
	}

	if RAW {
		for k, g := range frames {
			if err := g.SaveRawGrid(names[k] + RawExt); err != nil {
				return err
			}
		}
		DebugLog("raw grids saved", "count", len(frames))
	}

	if Report {
		if err := writeReport(cfg.Out); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(prefix string) error {
	r, err := report.Build(ReportLo, ReportHi, ReportSamples)
	if err != nil {
		return err
	}
	for _, s := range r.Summaries() {
		logger.Info("kernel accuracy", "kernel", s.Name, "max", s.Max, "mean", s.Mean, "p99", s.P99)
	}
	if err := r.Check(); err != nil {
		logger.Warn("kernel outside documented bound", "error", err)
	}
	if err := r.SavePlot(prefix + "_accuracy.png"); err != nil {
		return err
	}
	if err := r.SaveHTML(prefix + "_accuracy.html"); err != nil {
		return err
	}
	logger.Info("accuracy report saved", "prefix", prefix)
	return nil
}
