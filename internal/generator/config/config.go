package config

import (
	"fmt"
	"os"
	"time"

	"golang-synth-datagen/pkg/config"
)

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Generator holds dataset generation settings.
type Generator struct {
	OutputDir   string  `mapstructure:"output_dir"`
	MaxRecords  int     `mapstructure:"max_records"`
	BatchSize   int     `mapstructure:"batch_size"`
	Temperature float64 `mapstructure:"temperature"`
}

// Scheduler holds recurring-generation settings.
type Scheduler struct {
	PollingInterval string `mapstructure:"polling_interval"`
}

// Worker holds job consumer settings.
type Worker struct {
	JobTimeout time.Duration `mapstructure:"job_timeout"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the generator service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Gemini    Gemini          `mapstructure:"gemini"`
	Generator Generator       `mapstructure:"generator"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
	Worker    Worker          `mapstructure:"worker"`
	Telegram  Telegram        `mapstructure:"telegram"`
}

// Load loads the generator configuration from the given path and applies
// defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if cfg.Gemini.MaxRequestPerMinute <= 0 {
		cfg.Gemini.MaxRequestPerMinute = 60
	}
	if cfg.Gemini.MaxTokenPerMinute <= 0 {
		cfg.Gemini.MaxTokenPerMinute = 1000000
	}
	if cfg.Generator.OutputDir == "" {
		cfg.Generator.OutputDir = "data/output"
	}
	if cfg.Generator.MaxRecords <= 0 {
		cfg.Generator.MaxRecords = 100000
	}
	if cfg.Generator.BatchSize <= 0 {
		cfg.Generator.BatchSize = 100
	}
	if cfg.Generator.Temperature <= 0 {
		cfg.Generator.Temperature = 0.7
	}
	if cfg.Worker.JobTimeout <= 0 {
		cfg.Worker.JobTimeout = 30 * time.Minute
	}

	return &cfg, nil
}

// Validate checks the settings required before any generation begins.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini api_key is required")
	}
	if err := os.MkdirAll(c.Generator.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir %q is not usable: %w", c.Generator.OutputDir, err)
	}
	return nil
}
