package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, int64(1500), cfg.MaxTimeGapSeconds)
	assert.Equal(t, 2.0, cfg.MaxDistanceKm)
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "segmentation:\n  max_time_gap_seconds: 900\n  max_distance_km: 1.5\npalette:\n  - \"#ff0000\"\n  - \"#00ff00\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(900), cfg.MaxTimeGapSeconds)
	assert.Equal(t, 1.5, cfg.MaxDistanceKm)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, cfg.Palette)
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("segmentation: [unclosed"), 0o644))

	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}
