package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		SiteDir  string        `yaml:"site_dir" json:"site_dir" jsonschema:"default=site,description=Directory with static site files and translated pages"`
		BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS export and external links"`
		ViewTTL  time.Duration `yaml:"view_ttl" json:"view_ttl" jsonschema:"default=30m,description=How long an open page view keeps its loaded articles"`
		MaxViews int           `yaml:"max_views" json:"max_views" jsonschema:"default=1000,minimum=1,description=Maximum number of page views kept in memory"`
		Throttle int           `yaml:"throttle" json:"throttle" jsonschema:"default=100,minimum=0,description=Maximum number of concurrent requests, zero means unlimited"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Feed document source"`

	Display DisplayConfig `yaml:"display" json:"display" jsonschema:"description=Rendering options"`
}

// FeedConfig holds feed document source settings
type FeedConfig struct {
	Source    string        `yaml:"source" json:"source" jsonschema:"default=data/articles.json,description=Feed document path (relative to site_dir) or http(s) URL"`
	Format    string        `yaml:"format" json:"format" jsonschema:"default=auto,enum=auto,enum=articles,enum=rss,description=Feed document format"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"description=HTTP fetch timeout, zero means no timeout"`
	Retries   int           `yaml:"retries" json:"retries" jsonschema:"default=1,minimum=1,description=Number of fetch attempts"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsdeck/1.0,description=User agent for HTTP requests"`
	MaxSize   int64         `yaml:"max_size" json:"max_size" jsonschema:"default=10485760,description=Maximum feed document size in bytes"`
}

// DisplayConfig holds rendering settings
type DisplayConfig struct {
	Title            string `yaml:"title" json:"title" jsonschema:"default=News,description=Page title"`
	DateLayout       string `yaml:"date_layout" json:"date_layout" jsonschema:"description=Go time layout for publication dates"`
	Timezone         string `yaml:"timezone" json:"timezone" jsonschema:"default=Local,description=Timezone for displayed dates"`
	CollapseErrors   bool   `yaml:"collapse_errors" json:"collapse_errors" jsonschema:"default=false,description=Show empty list instead of error card when feed can't be loaded"`
	CompactThreshold int    `yaml:"compact_threshold" json:"compact_threshold" jsonschema:"default=24,minimum=0,description=Scroll offset after which the header is compacted, zero compacts on any scroll"`
}

// default values
const (
	DefaultListen     = ":8080"
	DefaultSource     = "data/articles.json"
	DefaultDateLayout = "Jan 2, 2006, 3:04 PM"
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	// file values are laid over defaults, so explicit zeros survive
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// empty strings, e.g. from unset env variables, fall back to defaults
	setDefaults(cfg)

	// validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file given
func Default() *Config {
	cfg := &Config{}
	cfg.Server.MaxViews = 1000
	cfg.Server.Throttle = 100
	cfg.Display.CompactThreshold = 24
	setDefaults(cfg)
	return cfg
}

// Validate checks configuration, exported for callers applying CLI overrides
func (c *Config) Validate() error {
	return validate(c)
}

// setDefaults fills empty values. Numbers where zero is meaningful are preset by Default only.
func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = DefaultListen
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.SiteDir == "" {
		cfg.Server.SiteDir = "site"
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}
	if cfg.Server.ViewTTL == 0 {
		cfg.Server.ViewTTL = 30 * time.Minute
	}

	// feed
	if cfg.Feed.Source == "" {
		cfg.Feed.Source = DefaultSource
	}
	if cfg.Feed.Format == "" {
		cfg.Feed.Format = "auto"
	}
	if cfg.Feed.Retries == 0 {
		cfg.Feed.Retries = 1
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "Newsdeck/1.0"
	}
	if cfg.Feed.MaxSize == 0 {
		cfg.Feed.MaxSize = 10 * 1024 * 1024
	}

	// display
	if cfg.Display.Title == "" {
		cfg.Display.Title = "News"
	}
	if cfg.Display.DateLayout == "" {
		cfg.Display.DateLayout = DefaultDateLayout
	}
	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = "Local"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.MaxViews < 1 {
		return fmt.Errorf("server.max_views must be at least 1")
	}
	if cfg.Server.Throttle < 0 {
		return fmt.Errorf("server.throttle must be non-negative")
	}

	// validate feed config
	switch cfg.Feed.Format {
	case "auto", "articles", "rss":
	default:
		return fmt.Errorf("feed.format must be one of auto, articles, rss, got %q", cfg.Feed.Format)
	}
	if cfg.Feed.Retries < 1 {
		return fmt.Errorf("feed.retries must be at least 1")
	}
	if cfg.Feed.Timeout < 0 {
		return fmt.Errorf("feed.timeout must be non-negative")
	}
	if cfg.Feed.MaxSize < 1 {
		return fmt.Errorf("feed.max_size must be positive")
	}

	// validate display config
	if _, err := time.LoadLocation(cfg.Display.Timezone); err != nil {
		return fmt.Errorf("display.timezone %q: %w", cfg.Display.Timezone, err)
	}
	if strings.TrimSpace(cfg.Display.DateLayout) == "" {
		return fmt.Errorf("display.date_layout is required")
	}
	if cfg.Display.CompactThreshold < 0 {
		return fmt.Errorf("display.compact_threshold must be non-negative")
	}

	return nil
}

// IsRemoteSource reports whether feed source is an http(s) URL
func (c *Config) IsRemoteSource() bool {
	return strings.HasPrefix(c.Feed.Source, "http://") || strings.HasPrefix(c.Feed.Source, "https://")
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeedConfig returns feed source configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}

// GetDisplayConfig returns rendering configuration
func (c *Config) GetDisplayConfig() DisplayConfig {
	return c.Display
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
