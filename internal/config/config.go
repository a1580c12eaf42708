package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIterations = 2000
	DefaultTemp       = 50.0
	DefaultCooling    = 0.995
	DefaultScale      = 0.1
	DefaultGridPoints = 8
)

type Config struct {
	Problem    string       `yaml:"problem"`
	Searcher   string       `yaml:"searcher"`
	Iterations int          `yaml:"iterations"`
	Seed       int64        `yaml:"seed"`
	Anneal     AnnealConfig `yaml:"anneal"`
	Grid       GridConfig   `yaml:"grid"`
}

type AnnealConfig struct {
	Temp    float64 `yaml:"temp"`
	Cooling float64 `yaml:"cooling"`
	Scale   float64 `yaml:"scale"`
}

type GridConfig struct {
	Points int `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:    "beam",
		Searcher:   "random",
		Iterations: DefaultIterations,
		Anneal: AnnealConfig{
			Temp:    DefaultTemp,
			Cooling: DefaultCooling,
			Scale:   DefaultScale,
		},
		Grid: GridConfig{
			Points: DefaultGridPoints,
		},
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
