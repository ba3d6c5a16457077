package invsqrt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/invsqrt/internal/kernel"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Size, cfg.Size)
	assert.Equal(t, 0, cfg.About)
	assert.Equal(t, kernel.FISR, cfg.Kernel)
	assert.Equal(t, ImageExt, cfg.Format)
	assert.Equal(t, OutPrefix, cfg.Out)
	assert.Equal(t, GIFDelay, cfg.GIFDelay)
	assert.Equal(t, Vector3{-1, -1, 3}, *cfg.Light)
	assert.Equal(t, DefaultSurface(), *cfg.Surface)
	assert.Equal(t, ShadeCoeffs(true), cfg.Coeffs())

	// defaults are not shared between configs
	cfg.Light.X = 9
	other := DefaultConfig()
	assert.Equal(t, Real(-1), other.Light.X)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "cfg.json", `{
		"size": 32,
		"about": 3,
		"kernel": "isr",
		"animate": true,
		"specular": false,
		"surface": {"mx": 1, "my": 1, "dx": 16.5, "dy": 16.5, "dz": 50},
		"out": "frames/run",
		"format": "png",
		"gifDelay": 10
	}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Size)
	assert.Equal(t, 3, cfg.About)
	assert.Equal(t, kernel.ISR, cfg.Kernel)
	assert.True(t, cfg.Animate)
	assert.Equal(t, ShadeCoeffs(false), cfg.Coeffs())
	assert.Equal(t, SurfaceCfg{MX: 1, MY: 1, DX: 16.5, DY: 16.5, DZ: 50}, *cfg.Surface)
	assert.Equal(t, ".png", cfg.Format)
	assert.Equal(t, 10, cfg.GIFDelay)
	assert.Equal(t, "frames/run", cfg.Out)

	fc := cfg.FieldCfg()
	assert.Equal(t, 32, fc.Size)
	assert.Equal(t, kernel.ISR, fc.Kernel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "cfg.yaml", `{}`))
	require.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "bad.json", `{"size": `))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "kernel.json", `{"kernel": "newton"}`))
	require.ErrorIs(t, err, kernel.ErrUnknownKind)

	_, err = loadConfig(writeConfig(t, "format.json", `{"format": "tiff"}`))
	require.Error(t, err)
}
