package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Security  SecurityConfig  `yaml:"security" envconfig:"SECURITY"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Analytics AnalyticsConfig `yaml:"analytics" envconfig:"ANALYTICS"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json"`
}

// AnalyticsConfig carries the engine defaults applied when a request omits
// a tunable. The engine itself stays stateless; these only fill blanks at
// the API boundary.
type AnalyticsConfig struct {
	SeasonLength    int     `yaml:"season_length" envconfig:"SEASON_LENGTH" default:"7"`
	ZScoreThreshold float64 `yaml:"zscore_threshold" envconfig:"ZSCORE_THRESHOLD" default:"2.0"`
	TrendWindow     int     `yaml:"trend_window" envconfig:"TREND_WINDOW" default:"5"`
	SurgeThreshold  float64 `yaml:"surge_threshold" envconfig:"SURGE_THRESHOLD" default:"1.3"`
	MaxSeriesLength int     `yaml:"max_series_length" envconfig:"MAX_SERIES_LENGTH" default:"100000"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
}

// Load loads configuration from environment variables and an optional
// YAML file. Environment variables win over the file; struct tag defaults
// fill everything else.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("LABPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func configFilePath() string {
	if path := os.Getenv("LABPULSE_CONFIG_FILE"); path != "" {
		return path
	}
	return "labpulse.yaml"
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// mergeConfigs overlays env-derived values (which include the tag
// defaults) on top of the file config: a field set in the file survives
// only when the corresponding environment variable is absent.
func mergeConfigs(file, env Config) Config {
	merged := env

	overlay := func(envVar string, apply func()) {
		if _, set := os.LookupEnv(envVar); !set {
			apply()
		}
	}

	if file.Server.Port != 0 {
		overlay("LABPULSE_SERVER_PORT", func() { merged.Server.Port = file.Server.Port })
	}
	if file.Logging.Level != "" {
		overlay("LABPULSE_LOGGING_LEVEL", func() { merged.Logging.Level = file.Logging.Level })
	}
	if file.Logging.Format != "" {
		overlay("LABPULSE_LOGGING_FORMAT", func() { merged.Logging.Format = file.Logging.Format })
	}
	if file.Analytics.SeasonLength != 0 {
		overlay("LABPULSE_ANALYTICS_SEASON_LENGTH", func() { merged.Analytics.SeasonLength = file.Analytics.SeasonLength })
	}
	if file.Analytics.ZScoreThreshold != 0 {
		overlay("LABPULSE_ANALYTICS_ZSCORE_THRESHOLD", func() { merged.Analytics.ZScoreThreshold = file.Analytics.ZScoreThreshold })
	}
	if file.Analytics.TrendWindow != 0 {
		overlay("LABPULSE_ANALYTICS_TREND_WINDOW", func() { merged.Analytics.TrendWindow = file.Analytics.TrendWindow })
	}
	if file.Analytics.SurgeThreshold != 0 {
		overlay("LABPULSE_ANALYTICS_SURGE_THRESHOLD", func() { merged.Analytics.SurgeThreshold = file.Analytics.SurgeThreshold })
	}
	if file.Paths.DataDir != "" {
		overlay("LABPULSE_PATHS_DATA_DIR", func() { merged.Paths.DataDir = file.Paths.DataDir })
	}
	if file.Paths.ReportsDir != "" {
		overlay("LABPULSE_PATHS_REPORTS_DIR", func() { merged.Paths.ReportsDir = file.Paths.ReportsDir })
	}

	return merged
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Analytics.SeasonLength < 1 {
		return fmt.Errorf("season length must be positive, got %d", c.Analytics.SeasonLength)
	}
	if c.Analytics.ZScoreThreshold <= 0 {
		return fmt.Errorf("z-score threshold must be positive, got %g", c.Analytics.ZScoreThreshold)
	}
	if c.Analytics.TrendWindow < 1 {
		return fmt.Errorf("trend window must be positive, got %d", c.Analytics.TrendWindow)
	}
	if c.Security.RateLimit.Enabled && c.Security.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %g", c.Security.RateLimit.RPS)
	}

	return nil
}
