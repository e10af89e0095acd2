package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is morphotree's optional on-disk configuration, loaded from a
// morphotree.yaml the caller points --config at. Every field has a usable
// zero value, so a missing config file is never an error.
type Config struct {
	// WeightType selects how edge weights in an edge-list file are
	// interpreted; currently only "float64" is implemented, matching the
	// algorithms' instantiation over cmp.Ordered numeric types.
	WeightType string `yaml:"weight_type"`
	// OutputFormat controls how bpt/qfz print their tree: "text"
	// (default, human-readable) or "json". cut always prints text.
	OutputFormat string `yaml:"output_format"`
}

func defaultConfig() Config {
	return Config{
		WeightType:   "float64",
		OutputFormat: "text",
	}
}

// loadConfig reads path if it exists, overlaying its fields onto the
// defaults; a nonexistent path is not an error, matching the CLI's
// convenience-config contract (SPEC_FULL.md's config loading is never a
// persisted hierarchy format and carries no invariant of its own).
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("loadConfig: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("loadConfig: parsing %s: %w", path, err)
	}

	return cfg, nil
}
