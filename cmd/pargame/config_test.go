package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAugmentConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "augment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 2\nmax_color: 3\nseed: 42\n"), 0644))

	cfg, err := LoadAugmentConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Count)
	require.Equal(t, uint32(3), cfg.MaxColor)
	require.Equal(t, int64(42), cfg.Seed)
}

func TestLoadAugmentConfigRejectsNegativeCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "augment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: -1\n"), 0644))

	_, err := LoadAugmentConfig(path)
	require.Error(t, err)
}

func TestLoadAugmentConfigMissingFile(t *testing.T) {
	_, err := LoadAugmentConfig("/nonexistent/path/augment.yaml")
	require.Error(t, err)
}
