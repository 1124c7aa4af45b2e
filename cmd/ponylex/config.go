/*
File    : ponylex/cmd/ponylex/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Optional YAML configuration, following the teacher's convention of keeping
tool configuration as a small struct loaded with gopkg.in/yaml.v3 rather
than threading every knob through flags.
*/
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings that apply across all three ponylex modes.
// Command-line flags override whatever a config file sets.
type Config struct {
	Debug bool `yaml:"debug"`
}

// loadConfig reads path as YAML, returning zero-value defaults if path is
// empty. A missing or malformed file at a non-empty path is an error.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
