package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rustyeddy/tradebook/instrument"
	"gopkg.in/yaml.v3"
)

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Trading TradingConfig `json:"trading" yaml:"trading"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
	// CalendarURL is the embedded economic-calendar widget shown on the
	// dashboard banner.
	CalendarURL string `json:"calendar_url,omitempty" yaml:"calendar_url,omitempty"`
}

// StorageConfig selects and locates the journal store.
type StorageConfig struct {
	Type   string `json:"type" yaml:"type"` // "sqlite" or "badger"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Dir    string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// TradingConfig carries the per-user trading defaults fed into the
// calculator when the form leaves them blank.
type TradingConfig struct {
	Instrument      string  `json:"instrument" yaml:"instrument"`
	FeesPerContract float64 `json:"fees_per_contract" yaml:"fees_per_contract"`
	AccountEquity   float64 `json:"account_equity,omitempty" yaml:"account_equity,omitempty"`
	ExportBasename  string  `json:"export_basename" yaml:"export_basename"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
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

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
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

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite type")
		}
	case "badger":
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage.dir required for badger type")
		}
	default:
		return fmt.Errorf("storage.type must be 'sqlite' or 'badger'")
	}
	if c.Trading.Instrument == "" {
		return fmt.Errorf("trading.instrument is required")
	}
	if _, ok := instrument.Instruments[c.Trading.Instrument]; !ok {
		return fmt.Errorf("unknown instrument: %s", c.Trading.Instrument)
	}
	if c.Trading.FeesPerContract < 0 {
		return fmt.Errorf("trading.fees_per_contract must not be negative")
	}
	if c.Trading.ExportBasename == "" {
		return fmt.Errorf("trading.export_basename is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        "127.0.0.1:8787",
			CalendarURL: "https://www.myfxbook.com/forex-economic-calendar",
		},
		Storage: StorageConfig{
			Type:   "sqlite",
			DBPath: "./tradebook.sqlite",
		},
		Trading: TradingConfig{
			Instrument:      instrument.Default,
			FeesPerContract: 1,
			ExportBasename:  "trading-history",
		},
	}
}
