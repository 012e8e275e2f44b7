// Package config loads application settings from a YAML file and the
// environment. Environment variables always win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root of all application settings.
type Config struct {
	Input    Input    `yaml:"input"`
	Data     Data     `yaml:"data"`
	Analyze  Analyze  `yaml:"analyze"`
	Output   Output   `yaml:"output"`
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
}

// Input selects the document to analyze.
type Input struct {
	Path string `yaml:"path" env:"INPUT_PATH"`
}

// Data points at the dictionary and homonym lexicon files. Empty paths
// select the built-in defaults.
type Data struct {
	Dictionary string `yaml:"dictionary" env:"DATA_DICTIONARY"`
	Lexicon    string `yaml:"lexicon" env:"DATA_LEXICON"`
}

// Analyze tunes the pipeline.
type Analyze struct {
	Workers       int `yaml:"workers" env:"ANALYZE_WORKERS" env-default:"1"`
	ContextWindow int `yaml:"context_window" env:"ANALYZE_CONTEXT_WINDOW" env-default:"3"`
	MaxWords      int `yaml:"max_words" env:"ANALYZE_MAX_WORDS" env-default:"0"`
}

// Output controls which run artifacts are written and where.
type Output struct {
	Dir      string `yaml:"dir" env:"OUTPUT_DIR" env-default:"output"`
	Excel    bool   `yaml:"excel" env:"OUTPUT_EXCEL" env-default:"false"`
	Snapshot bool   `yaml:"snapshot" env:"OUTPUT_SNAPSHOT" env-default:"false"`
}

// Log configures the application logger.
type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `yaml:"addr" env:"SERVER_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" env-default:"*"`
}

// Database configures run persistence. An empty DSN disables it.
type Database struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

// Load reads configuration from the file named by CONFIG_PATH, falling
// back to ./config.yaml, and finally to environment variables alone when
// no file exists.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Analyze.Workers < 1 {
		return errors.New("config: analyze.workers must be at least 1")
	}
	if c.Analyze.ContextWindow < 0 {
		return errors.New("config: analyze.context_window must not be negative")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q", c.Log.Format)
	}
	return nil
}
