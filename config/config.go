/*
File    : mova/config/config.go
Package : config

Package config loads the optional .mova.yaml / mova.yaml run
configuration. Its absence is not an error; CLI flags always take
precedence over values it supplies.
*/
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run-configuration fields a .mova.yaml may set.
type Config struct {
	Trace bool `yaml:"trace"`
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Trace: false, Color: true}
}

// candidateNames are tried, in order, when no explicit path is given.
var candidateNames = []string{".mova.yaml", "mova.yaml"}

// Discover loads explicitPath if set, otherwise searches the current
// directory for .mova.yaml or mova.yaml. A missing file at any stage
// yields Default with no error.
func Discover(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return load(explicitPath)
	}
	for _, name := range candidateNames {
		if _, err := os.Stat(name); err == nil {
			return load(name)
		}
	}
	return Default(), nil
}

func load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
