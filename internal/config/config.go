package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Crawl    CrawlConfig    `yaml:"crawl"`
	Mining   MiningConfig   `yaml:"mining"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Alerts   AlertsConfig   `yaml:"alerts"`
	Server   ServerConfig   `yaml:"server"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CrawlConfig configures graph crawling and tweet acquisition.
type CrawlConfig struct {
	Seed        string   `yaml:"seed"`
	Depth       int      `yaml:"depth"`
	BearerToken string   `yaml:"bearer_token"`
	NitterURL   string   `yaml:"nitter_url"`
	Accounts    []string `yaml:"accounts"`
}

// MiningConfig carries the windowing and mining thresholds.
type MiningConfig struct {
	WindowSize    int     `yaml:"window_size"`
	MinSupport    float64 `yaml:"min_support"`
	MinConfidence float64 `yaml:"min_confidence"`
	MinUtility    float64 `yaml:"min_utility"`
	MinFrequency  int     `yaml:"min_frequency"`
}

// ScheduleConfig configures crawl and mining intervals.
type ScheduleConfig struct {
	CrawlInterval  string `yaml:"crawl_interval"`
	MiningInterval string `yaml:"mining_interval"`
}

// ParseCrawlInterval returns the crawl interval as time.Duration.
func (s ScheduleConfig) ParseCrawlInterval() time.Duration {
	d, err := time.ParseDuration(s.CrawlInterval)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}

// ParseMiningInterval returns the mining interval as time.Duration.
func (s ScheduleConfig) ParseMiningInterval() time.Duration {
	d, err := time.ParseDuration(s.MiningInterval)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

// AlertsConfig configures alert destinations.
type AlertsConfig struct {
	Slack   SlackConfig   `yaml:"slack"`
	Discord DiscordConfig `yaml:"discord"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// SlackConfig for Slack webhook alerts.
type SlackConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// DiscordConfig for Discord webhook alerts.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// WebhookConfig for generic webhook alerts.
type WebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Secret  string `yaml:"secret"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./cryptolens.db"},
		Crawl: CrawlConfig{
			Seed:      "vitalikbuterin",
			Depth:     1,
			NitterURL: "https://nitter.net",
		},
		Mining: MiningConfig{
			WindowSize:    60,
			MinSupport:    0.01,
			MinConfidence: 0.5,
			MinUtility:    0.1,
			MinFrequency:  3,
		},
		Schedule: ScheduleConfig{
			CrawlInterval:  "30m",
			MiningInterval: "15m",
		},
		Alerts: AlertsConfig{},
		Server: ServerConfig{Port: 8080},
	}
}

// Load reads configuration from a YAML file and applies env var overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CRYPTOLENS_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("TWITTER_BEARER_TOKEN"); v != "" {
		cfg.Crawl.BearerToken = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Alerts.Slack.WebhookURL = v
		cfg.Alerts.Slack.Enabled = true
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.Alerts.Discord.WebhookURL = v
		cfg.Alerts.Discord.Enabled = true
	}
}
