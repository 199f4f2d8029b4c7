// Package config provides YAML-based configuration loading for Daypack.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Daypack configuration, loaded from daypack.yaml.
type Config struct {
	Owner     string          `yaml:"owner"`
	Backend   BackendConfig   `yaml:"backend"`
	Cache     CacheConfig     `yaml:"cache"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Coach     CoachConfig     `yaml:"coach"`
	Notify    NotifyConfig    `yaml:"notify"`
	GitHub    GitHubConfig    `yaml:"github"`
}

// BackendConfig holds connection settings for the hosted MySQL-compatible
// backend. When Host is empty the app runs in local-only mode, serving and
// mutating only the local cache.
type BackendConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Configured reports whether backend credentials are present.
func (b BackendConfig) Configured() bool {
	return b.Host != ""
}

// CacheConfig holds settings for the local SQLite snapshot cache.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// DashboardConfig holds settings for the local web dashboard.
type DashboardConfig struct {
	Port int `yaml:"port"`
}

// RateLimitConfig bounds outgoing backend requests per session. Requests
// beyond the budget are dropped, not queued.
type RateLimitConfig struct {
	WindowSeconds int `yaml:"window_seconds"`
	Budget        int `yaml:"budget"`
}

// CoachConfig holds credentials for the optional generative coaching summary.
type CoachConfig struct {
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	Model           string `yaml:"model"`
}

// NotifyConfig holds credentials for the optional insights digest notifiers.
type NotifyConfig struct {
	Schedule string        `yaml:"schedule"` // 5-field cron expression
	Slack    SlackConfig   `yaml:"slack"`
	Discord  DiscordConfig `yaml:"discord"`
}

// SlackConfig identifies a Slack bot and target channel.
type SlackConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

// DiscordConfig identifies a Discord bot and target channel.
type DiscordConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

// GitHubConfig holds a token for the starred-repo discovery import.
type GitHubConfig struct {
	Token string `yaml:"token"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Backend.Port == 0 {
		c.Backend.Port = 3306
	}
	if c.Backend.Database == "" && c.Backend.Configured() {
		c.Backend.Database = "daypack_" + c.Owner
	}
	if c.Backend.User == "" {
		c.Backend.User = "root"
	}
	if c.Cache.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c.Cache.Path = "daypack-cache.db"
		} else {
			c.Cache.Path = filepath.Join(home, ".daypack", "cache.db")
		}
	}
	if c.Dashboard.Port == 0 {
		c.Dashboard.Port = 8080
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.RateLimit.Budget == 0 {
		c.RateLimit.Budget = 120
	}
	if c.Coach.Model == "" {
		c.Coach.Model = "claude-sonnet-4-5"
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Owner == "" {
		errs = append(errs, "owner is required")
	}
	if c.RateLimit.Budget < 0 {
		errs = append(errs, "rate_limit.budget must be non-negative")
	}
	if c.Notify.Slack.BotToken != "" && c.Notify.Slack.ChannelID == "" {
		errs = append(errs, "notify.slack.channel_id is required when a bot token is set")
	}
	if c.Notify.Discord.BotToken != "" && c.Notify.Discord.ChannelID == "" {
		errs = append(errs, "notify.discord.channel_id is required when a bot token is set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
