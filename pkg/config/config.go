package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	MarketData struct {
		BaseURL    string        `yaml:"base_url"`
		Range      string        `yaml:"range"`
		PeriodDays int           `yaml:"period_days"`
		Timeout    time.Duration `yaml:"timeout"`
		Suffixes   []string      `yaml:"suffixes"`
		MinRows    int           `yaml:"min_rows"`
	} `yaml:"marketdata"`
	Forecast struct {
		MinHistory        int     `yaml:"min_history"`
		MinTrained        int     `yaml:"min_trained"`
		TrainSplit        float64 `yaml:"train_split"`
		Seed              int64   `yaml:"seed"`
		ConfidenceFloor   float64 `yaml:"confidence_floor"`
		ConfidenceCeiling float64 `yaml:"confidence_ceiling"`
	} `yaml:"forecast"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		if port, perr := strconv.Atoi(v); perr == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("MARKET_DATA_URL"); v != "" {
		c.MarketData.BaseURL = v
	}
	if v := os.Getenv("MARKET_DATA_SUFFIXES"); v != "" {
		c.MarketData.Suffixes = strings.Split(v, ",")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.MarketData.BaseURL == "" {
		return fmt.Errorf("marketdata.base_url is required")
	}
	if len(c.MarketData.Suffixes) == 0 {
		return fmt.Errorf("marketdata.suffixes cannot be empty")
	}
	if c.MarketData.PeriodDays <= 0 {
		return fmt.Errorf("marketdata.period_days must be positive")
	}
	if c.Forecast.TrainSplit <= 0 || c.Forecast.TrainSplit >= 1 {
		return fmt.Errorf("forecast.train_split must be in (0, 1), got %v", c.Forecast.TrainSplit)
	}
	if c.Forecast.ConfidenceFloor >= c.Forecast.ConfidenceCeiling {
		return fmt.Errorf("forecast.confidence_floor must be below confidence_ceiling")
	}
	return nil
}
