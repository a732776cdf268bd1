package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1_000_000, cfg.TreeSize)
	assert.Equal(t, 5_000_000, cfg.NumQueries)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.NotEmpty(t, cfg.Engines)
	assert.Equal(t, "fast_ffi", cfg.Engines[0])
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastbench.yaml")
	data := []byte("tree_size: 500\nnum_queries: 2000\nengines: [btree, sqlite]\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.TreeSize)
	assert.Equal(t, 2000, cfg.NumQueries)
	assert.Equal(t, []string{"btree", "sqlite"}, cfg.Engines)
	// Untouched fields keep their defaults.
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tree_size: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyArgs(t *testing.T) {
	cases := []struct {
		name        string
		args        []string
		wantSize    int
		wantQueries int
	}{
		{"none", nil, 1_000_000, 5_000_000},
		{"size only", []string{"5000"}, 5000, 5_000_000},
		{"both", []string{"5000", "9000"}, 5000, 9000},
		{"malformed size", []string{"banana", "9000"}, 1_000_000, 9000},
		{"malformed count", []string{"5000", "banana"}, 5000, 5_000_000},
		{"zero rejected", []string{"0", "-3"}, 1_000_000, 5_000_000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			cfg.ApplyArgs(c.args)
			assert.Equal(t, c.wantSize, cfg.TreeSize)
			assert.Equal(t, c.wantQueries, cfg.NumQueries)
		})
	}
}
