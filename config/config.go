package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultURL is the tariff page this tool targets.
const DefaultURL = "https://www.rialcom.ru/internet_tariffs/"

// DefaultOutput is the default spreadsheet base name.
const DefaultOutput = "example"

// Config holds the page URL, the output base name and the filter criteria
type Config struct {
	URL     string `yaml:"url"`
	Output  string `yaml:"output"`
	Filters struct {
		MinPayment int `yaml:"min_payment"`
		MaxPayment int `yaml:"max_payment"`
		MinSpeed   int `yaml:"min_speed"`
	} `yaml:"filters"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Filters.MaxPayment == 0 {
		cfg.Filters.MaxPayment = 1000000000
	}

	return &cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.URL = DefaultURL
	cfg.Output = DefaultOutput
	cfg.Filters.MinPayment = 0
	cfg.Filters.MaxPayment = 1000000000
	cfg.Filters.MinSpeed = 0
	return cfg
}
