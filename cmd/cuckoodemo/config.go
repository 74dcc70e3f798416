package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// filterConfig mirrors the flag set accepted by every subcommand; a
// --config file overrides whatever was passed on the command line.
type filterConfig struct {
	Capacity   uint32 `yaml:"capacity"`
	BucketSize uint8  `yaml:"bucket_size"`
	FPBits     uint8  `yaml:"fp_bits"`
	Hash       string `yaml:"hash"`
	Dynamic    bool   `yaml:"dynamic"`
}

func loadConfigFile(path string) (filterConfig, error) {
	var cfg filterConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
