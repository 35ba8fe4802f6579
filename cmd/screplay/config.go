package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds persisted default flag values loaded from a YAML file, so
// users don't have to repeat the same flags on every invocation.
type config struct {
	// Sections lists which top-level sections "parse" should print. Valid
	// values: "header", "gameinfo", "frames". Empty means all of them.
	Sections []string `yaml:"sections"`

	// Format is the default output format for "parse": "json" or "text".
	Format string `yaml:"format"`
}

func defaultConfig() *config {
	return &config{Format: "json"}
}

// loadConfig reads path as YAML, returning defaultConfig() unchanged if the
// file does not exist. Any other read or parse error is returned.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
