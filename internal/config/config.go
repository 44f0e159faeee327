package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt     = 1e-3
	DefaultSlices = 1
	DefaultK      = 2
	DefaultTol    = 1e-10
)

type Config struct {
	System string  `yaml:"system"`
	Method string  `yaml:"method"`
	Solver string  `yaml:"solver"`
	Slices int     `yaml:"slices"`
	K      int     `yaml:"k"`
	Dt     float64 `yaml:"dt"`
	Tol    float64 `yaml:"tol"`
	MaxDim int     `yaml:"max_dim"`

	// Params override the named parameters of the selected system.
	Params map[string]float64 `yaml:"params"`

	DataDir string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		System:  "hopf",
		Method:  "shooting",
		Solver:  "dense",
		Slices:  DefaultSlices,
		K:       DefaultK,
		Dt:      DefaultDt,
		Tol:     DefaultTol,
		DataDir: ".floq",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
