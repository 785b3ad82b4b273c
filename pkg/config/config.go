package config

import (
	"fmt"
	"os"
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
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	MarketData struct {
		BaseURL         string            `yaml:"base_url"`
		Timeout         time.Duration     `yaml:"timeout"`
		UserAgent       string            `yaml:"user_agent"`
		BenchmarkSymbol string            `yaml:"benchmark_symbol"`
		LookbackDays    int               `yaml:"lookback_days"`
		BenchmarkDays   int               `yaml:"benchmark_days"`
		SymbolMap       map[string]string `yaml:"symbol_map"`
	} `yaml:"marketdata"`
	Forecast struct {
		DefaultHorizon int `yaml:"default_horizon"`
		MaxHorizon     int `yaml:"max_horizon"`
		MAWindow       int `yaml:"ma_window"`
	} `yaml:"forecast"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		Compression  string        `yaml:"compression"`
		RequiredAcks int           `yaml:"required_acks"`
		MaxAttempts  int           `yaml:"max_attempts"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"kafka"`
	Alerts struct {
		Enabled  bool   `yaml:"enabled"`
		Schedule string `yaml:"schedule"`
	} `yaml:"alerts"`
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

	c.applyDefaults()
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

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("MARKETDATA_BASE_URL"); v != "" {
		c.MarketData.BaseURL = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.MarketData.BaseURL == "" {
		c.MarketData.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.MarketData.BenchmarkSymbol == "" {
		c.MarketData.BenchmarkSymbol = "^GSPC"
	}
	if c.MarketData.LookbackDays == 0 {
		c.MarketData.LookbackDays = 30
	}
	if c.MarketData.BenchmarkDays == 0 {
		c.MarketData.BenchmarkDays = 7
	}
	if c.Forecast.DefaultHorizon == 0 {
		c.Forecast.DefaultHorizon = 7
	}
	if c.Forecast.MaxHorizon == 0 {
		c.Forecast.MaxHorizon = 90
	}
	if c.Forecast.MAWindow == 0 {
		c.Forecast.MAWindow = 50
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if c.MarketData.LookbackDays < 2 {
		return fmt.Errorf("marketdata.lookback_days must be at least 2")
	}
	if c.MarketData.BenchmarkDays < 1 {
		return fmt.Errorf("marketdata.benchmark_days must be positive")
	}
	if c.Forecast.DefaultHorizon < 1 {
		return fmt.Errorf("forecast.default_horizon must be positive")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers required when kafka is enabled")
	}
	if c.Alerts.Enabled && c.Alerts.Schedule == "" {
		return fmt.Errorf("alerts.schedule required when alerts are enabled")
	}
	return nil
}
