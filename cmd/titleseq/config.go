package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".titleseq.yaml"

// Config holds tool-level preferences, read from .titleseq.yaml in the
// working directory or the user's home directory. A missing file means
// defaults; a malformed one is an error worth telling the user about.
type Config struct {
	// SequenceDirs are the folders `titleseq list` scans for sequences.
	SequenceDirs []string `yaml:"sequence_dirs"`

	// NoColor disables colored output, same as --no-color.
	NoColor bool `yaml:"no_color"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}

	path, err := findConfigFile()
	if err != nil || path == "" {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	path := filepath.Join(home, configFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
