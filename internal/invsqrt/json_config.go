package invsqrt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lukaszgryglicki/invsqrt/internal/kernel"
)

type Config struct {
	Size     int         `json:"size"`
	About    int         `json:"about"` // radius of the light sweep, 0 = single static light
	Kernel   kernel.Kind `json:"kernel"`
	Animate  bool        `json:"animate,omitempty"`
	Specular *bool       `json:"specular,omitempty"` // defaults to true
	Light    *Vector3    `json:"light,omitempty"`    // static light; ignored when About > 0
	Surface  *SurfaceCfg `json:"surface,omitempty"`
	Out      string      `json:"out"`
	Format   string      `json:"format,omitempty"` // .jpg, .png or .bmp
	GIFDelay int         `json:"gifDelay,omitempty"`
	GIFLoop  int         `json:"gifLoop,omitempty"`
	Workers  int         `json:"workers,omitempty"`
}

// DefaultConfig returns a fully defaulted config; nothing in it is shared
// between calls.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Size <= 0 {
		c.Size = Size
	}
	if c.About < 0 {
		c.About = 0
	}
	if c.Specular == nil {
		on := true
		c.Specular = &on
	}
	if c.Light == nil {
		l := DefaultFieldCfg().Light
		c.Light = &l
	}
	if c.Surface == nil {
		s := DefaultSurface()
		c.Surface = &s
	}
	if c.Out == "" {
		c.Out = OutPrefix
	}
	if c.Format == "" {
		c.Format = ImageExt
	}
	if !strings.HasPrefix(c.Format, ".") {
		c.Format = "." + c.Format
	}
	if c.GIFDelay <= 0 {
		c.GIFDelay = GIFDelay
	}
	if c.GIFLoop < 0 {
		c.GIFLoop = GIFLoop
	}
	if c.Workers <= 0 {
		c.Workers = max(Workers, 1)
	}
}

// FieldCfg returns the height field configuration for the static light.
func (c *Config) FieldCfg() FieldCfg {
	return FieldCfg{
		Size:    c.Size,
		Light:   *c.Light,
		Surface: *c.Surface,
		Kernel:  c.Kernel,
		Workers: c.Workers,
	}
}

// Coeffs returns the shading coefficients selected by Specular.
func (c *Config) Coeffs() Coeffs { return ShadeCoeffs(c.Specular == nil || *c.Specular) }

// loadConfig reads a JSON config; an empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", clean, err)
	}
	cfg.applyDefaults()
	if _, err := encoderFor(cfg.Format); err != nil {
		return nil, err
	}
	DebugLog("loaded config", "path", clean, "size", cfg.Size, "about", cfg.About, "kernel", cfg.Kernel, "animate", cfg.Animate, "format", cfg.Format)
	return &cfg, nil
}
