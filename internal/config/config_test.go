package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "train.csv", c.DataPath)
	assert.Equal(t, "figures", c.OutputDir)
	assert.Equal(t, "png", c.ImageFormat)
	assert.Equal(t, 5, c.HeadRows)
	assert.Equal(t, 30, c.Bins)
	assert.Equal(t, 1000, c.BootstrapSamples)
	assert.Equal(t, 95.0, c.CILevel)
	assert.Equal(t, uint64(0), c.Seed)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "eda.yaml")
	require.NoError(t, Save(&Global{
		DataPath: "data/train.csv", OutputDir: "out", ImageFormat: "svg",
		HeadRows: 3, Bins: 20, BootstrapSamples: 500, CILevel: 90, Seed: 7,
	}, path))

	t.Setenv("TITANIC_EDA_BINS", "40")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/train.csv", c.DataPath)
	assert.Equal(t, "svg", c.ImageFormat)
	assert.Equal(t, 40, c.Bins)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, 90.0, c.CILevel)
}

func TestSaveDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, Save(&Global{DataPath: "x.csv", Bins: 30, CILevel: 95}, ""))
	_, err := os.Stat(filepath.Join(home, ".titanic-eda", "config.yaml"))
	require.NoError(t, err)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "x.csv", c.DataPath)
}

func TestValidate(t *testing.T) {
	base := Global{Bins: 30, BootstrapSamples: 1000, CILevel: 95, HeadRows: 5}
	require.NoError(t, base.Validate())

	bad := base
	bad.Bins = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.CILevel = 100
	assert.Error(t, bad.Validate())

	bad = base
	bad.BootstrapSamples = -1
	assert.Error(t, bad.Validate())
}

func TestMalformedConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bins: [unterminated\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultsAreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, d.Validate())
	assert.Equal(t, uint64(0), d.Seed)
	assert.Equal(t, "png", d.ImageFormat)
}
