package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete backtest configuration
type Config struct {
	Data     DataConfig     `json:"data" yaml:"data"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// DataConfig locates the price history
type DataConfig struct {
	Dir         string `json:"dir" yaml:"dir"`
	TimeHorizon int    `json:"time_horizon" yaml:"time_horizon"` // last N trading days, 0 = all
}

// StrategyConfig contains strategy parameters
type StrategyConfig struct {
	Benchmark       string  `json:"benchmark" yaml:"benchmark"`
	LargeMove       float64 `json:"large_move" yaml:"large_move"` // percent, negative
	ProfitTarget    float64 `json:"profit_target" yaml:"profit_target"`
	StartingCapital float64 `json:"starting_capital" yaml:"starting_capital"`
	SMAWindow       int     `json:"sma_window" yaml:"sma_window"` // 0 disables the overlay
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	ResultsFile string `json:"results_file,omitempty" yaml:"results_file,omitempty"`
	CurvesFile  string `json:"curves_file,omitempty" yaml:"curves_file,omitempty"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
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

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
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
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Data.TimeHorizon < 0 {
		return fmt.Errorf("data.time_horizon must not be negative")
	}
	if c.Strategy.Benchmark == "" {
		return fmt.Errorf("strategy.benchmark is required")
	}
	if c.Strategy.LargeMove >= 0 {
		return fmt.Errorf("strategy.large_move must be negative (a down move in percent)")
	}
	if c.Strategy.ProfitTarget <= 0 {
		return fmt.Errorf("strategy.profit_target must be positive")
	}
	if c.Strategy.StartingCapital <= 0 {
		return fmt.Errorf("strategy.starting_capital must be positive")
	}
	if c.Strategy.SMAWindow < 0 {
		return fmt.Errorf("strategy.sma_window must not be negative")
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.ResultsFile == "" || c.Journal.CurvesFile == "" {
			return fmt.Errorf("journal results_file and curves_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:         "./data",
			TimeHorizon: 200,
		},
		Strategy: StrategyConfig{
			Benchmark:       "SPY",
			LargeMove:       -0.5,
			ProfitTarget:    1000,
			StartingCapital: 5000,
			SMAWindow:       10,
		},
		Journal: JournalConfig{
			Type:        "csv",
			ResultsFile: "./results.csv",
			CurvesFile:  "./curves.csv",
		},
	}
}
