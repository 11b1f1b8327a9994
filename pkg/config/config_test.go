package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  site_dir: /srv/site
  view_ttl: 5m

feed:
  source: https://example.com/data/articles.json
  format: articles
  timeout: 10s
  retries: 3

display:
  title: Inter News
  timezone: UTC
  collapse_errors: true
  compact_threshold: 50
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "/srv/site", cfg.Server.SiteDir)
		assert.Equal(t, 5*time.Minute, cfg.Server.ViewTTL)

		assert.Equal(t, "https://example.com/data/articles.json", cfg.Feed.Source)
		assert.Equal(t, "articles", cfg.Feed.Format)
		assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
		assert.Equal(t, 3, cfg.Feed.Retries)
		assert.True(t, cfg.IsRemoteSource())

		assert.Equal(t, "Inter News", cfg.Display.Title)
		assert.Equal(t, "UTC", cfg.Display.Timezone)
		assert.True(t, cfg.Display.CollapseErrors)
		assert.Equal(t, 50, cfg.Display.CompactThreshold)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "site", cfg.Server.SiteDir)
		assert.Equal(t, 30*time.Minute, cfg.Server.ViewTTL)
		assert.Equal(t, 1000, cfg.Server.MaxViews)

		assert.Equal(t, DefaultSource, cfg.Feed.Source)
		assert.Equal(t, "auto", cfg.Feed.Format)
		assert.Equal(t, 1, cfg.Feed.Retries, "single best-effort fetch by default")
		assert.Zero(t, cfg.Feed.Timeout)
		assert.False(t, cfg.IsRemoteSource())

		assert.Equal(t, DefaultDateLayout, cfg.Display.DateLayout)
		assert.Equal(t, "Local", cfg.Display.Timezone)
		assert.False(t, cfg.Display.CollapseErrors)
		assert.Equal(t, 24, cfg.Display.CompactThreshold)
	})

	t.Run("explicit zeros kept", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  throttle: 0\ndisplay:\n  compact_threshold: 0\n"))
		require.NoError(t, err)
		assert.Zero(t, cfg.Display.CompactThreshold)
		assert.Zero(t, cfg.Server.Throttle)
		assert.Equal(t, 1000, cfg.Server.MaxViews)
	})

	t.Run("zero max views rejected", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  max_views: 0\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "server.max_views")
	})

	t.Run("unset env falls back to default", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  site_dir: ${NEWSDECK_TEST_UNSET}\n"))
		require.NoError(t, err)
		assert.Equal(t, "site", cfg.Server.SiteDir)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("NEWSDECK_TEST_SOURCE", "https://cdn.example.com/articles.json")
		cfg, err := Load(writeConfig(t, "feed:\n  source: ${NEWSDECK_TEST_SOURCE}\n"))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/articles.json", cfg.Feed.Source)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "feed:\n  format: atom\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "feed.format")
	})

	t.Run("invalid timezone", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "display:\n  timezone: Mars/Olympus\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "display.timezone")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultListen, cfg.Server.Listen)
	assert.Equal(t, DefaultSource, cfg.Feed.Source)
	assert.Equal(t, 1000, cfg.Server.MaxViews)
	assert.Equal(t, 100, cfg.Server.Throttle)
	assert.Equal(t, 24, cfg.Display.CompactThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "short server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond }, errMsg: "server timeout"},
		{name: "zero retries", modify: func(c *Config) { c.Feed.Retries = 0 }, errMsg: "feed.retries"},
		{name: "negative feed timeout", modify: func(c *Config) { c.Feed.Timeout = -time.Second }, errMsg: "feed.timeout"},
		{name: "zero max size", modify: func(c *Config) { c.Feed.MaxSize = 0 }, errMsg: "feed.max_size"},
		{name: "blank date layout", modify: func(c *Config) { c.Display.DateLayout = "  " }, errMsg: "display.date_layout"},
		{name: "negative threshold", modify: func(c *Config) { c.Display.CompactThreshold = -1 }, errMsg: "compact_threshold"},
		{name: "zero views", modify: func(c *Config) { c.Server.MaxViews = 0 }, errMsg: "max_views"},
		{name: "negative throttle", modify: func(c *Config) { c.Server.Throttle = -1 }, errMsg: "server.throttle"},
		{name: "unlimited throttle", modify: func(c *Config) { c.Server.Throttle = 0 }},
		{name: "zero threshold", modify: func(c *Config) { c.Display.CompactThreshold = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = ":9090"
	cfg.Server.Timeout = 45 * time.Second

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
	assert.Equal(t, cfg.Feed, cfg.GetFeedConfig())
	assert.Equal(t, cfg.Display, cfg.GetDisplayConfig())
	assert.Same(t, cfg, cfg.GetFullConfig())
}
