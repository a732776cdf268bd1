// Package config holds the run configuration for the benchmark
// harness: workload dimensions, the engine list, and scratch storage.
// Configuration is forgiving by design — a missing file or malformed
// value falls back to defaults so a bare invocation always produces a
// comparable run.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is one benchmark run's configuration.
type Config struct {
	TreeSize   int      `yaml:"tree_size"`
	NumQueries int      `yaml:"num_queries"`
	Seed       uint64   `yaml:"seed"`
	Engines    []string `yaml:"engines"`
	DataDir    string   `yaml:"data_dir"` // empty: per-engine temp dirs
}

// Default returns the canonical cross-language run configuration.
func Default() *Config {
	return &Config{
		TreeSize:   1_000_000,
		NumQueries: 5_000_000,
		Seed:       42,
		Engines: []string{
			"fast_ffi",
			"btree",
			"sorted_slice",
			"eytzinger",
			"bbolt",
			"mdbx",
			"rocksdb",
			"sqlite",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path tries
// the conventional locations; a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, p := range []string{"configs/fastbench.yaml", "fastbench.yaml"} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyArgs overlays the process surface's positional values
// [tree_size [num_queries]]. Malformed or non-positive values are
// ignored, keeping whatever the config already holds.
func (c *Config) ApplyArgs(args []string) {
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			c.TreeSize = v
		}
	}
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
			c.NumQueries = v
		}
	}
}
