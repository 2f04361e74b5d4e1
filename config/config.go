package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kinko/pms/commission"
	"github.com/kinko/pms/search"
	"gopkg.in/yaml.v3"
)

// Config is the complete application configuration.
type Config struct {
	Search     SearchConfig     `json:"search" yaml:"search"`
	Commission CommissionConfig `json:"commission" yaml:"commission"`
	Log        LogConfig        `json:"log" yaml:"log"`
}

// SearchConfig tunes the autocomplete.
type SearchConfig struct {
	MaxResults int    `json:"max_results" yaml:"max_results"`
	Records    string `json:"records,omitempty" yaml:"records,omitempty"` // default records file
}

// CommissionConfig selects the fee schedule.
type CommissionConfig struct {
	DefaultMarket   string `json:"default_market" yaml:"default_market"`
	ExactClassRates bool   `json:"exact_class_rates" yaml:"exact_class_rates"`

	// Rates overrides cells of the built-in table.
	Rates commission.RateTable `json:"rates,omitempty" yaml:"rates,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn or error
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration as YAML or JSON depending on the
// extension of path.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive")
	}
	if _, err := commission.ParseMarket(c.Commission.DefaultMarket); err != nil {
		return fmt.Errorf("commission.default_market: %w", err)
	}
	if err := c.Commission.Rates.Validate(); err != nil {
		return fmt.Errorf("commission.rates: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Market returns the default market of order entry.
func (c *Config) Market() commission.Market {
	m, err := commission.ParseMarket(c.Commission.DefaultMarket)
	if err != nil {
		return commission.TSE
	}
	return m
}

// Engine returns the commission engine described by the configuration:
// the built-in rates with the configured cells laid over them.
func (c *Config) Engine() commission.Engine {
	e := commission.Engine{ExactClassRates: c.Commission.ExactClassRates}
	if len(c.Commission.Rates) == 0 {
		return e
	}

	table := commission.DefaultRates.Clone()
	for m, classes := range c.Commission.Rates {
		if table[m] == nil {
			table[m] = map[commission.Class]commission.SideRates{}
		}
		for cl, r := range classes {
			table[m][cl] = r
		}
	}
	e.Rates = table
	return e
}

// Ranker returns the search ranker described by the configuration.
func (c *Config) Ranker() search.Ranker {
	return search.Ranker{Limit: c.Search.MaxResults}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults: search.DefaultLimit,
		},
		Commission: CommissionConfig{
			DefaultMarket: string(commission.TSE),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
