// Package config handles application configuration loading from defaults, an
// optional noteshub.yaml file, and NOTESHUB_-prefixed environment variables.
// It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"noteshub/internal/models"
)

// Config holds all application configuration values. Precedence is
// defaults < config file < environment, so a NOTESHUB_PORT variable
// always wins over a port key in noteshub.yaml.
type Config struct {
	// Server settings
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"` // "development", "production", "testing"

	// Content roots scanned for markdown documents and code snippets.
	DocsRoot     string `mapstructure:"docs_root"`
	I18nRoot     string `mapstructure:"i18n_root"`
	SnippetsRoot string `mapstructure:"snippets_root"`

	// DefaultLocale is served at the site root. Must name a supported locale.
	DefaultLocale string `mapstructure:"default_locale"`

	// Valkey (Redis-compatible cache). An empty host disables page caching.
	ValkeyHost     string `mapstructure:"valkey_host"`
	ValkeyPort     string `mapstructure:"valkey_port"`
	ValkeyPassword string `mapstructure:"valkey_password"`

	// CacheTTL bounds how long a rendered page stays cached. The content
	// watcher usually invalidates pages long before this expires.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// Watch enables the filesystem watcher that drops cached pages when
	// content changes on disk.
	Watch bool `mapstructure:"watch"`
}

// Load builds the configuration. When configFile is empty it searches for
// noteshub.yaml in the working directory and $HOME/.config/noteshub; a
// missing file is fine and defaults plus environment apply. An explicitly
// named file must exist and parse.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("docs_root", "docs")
	v.SetDefault("i18n_root", "i18n")
	v.SetDefault("snippets_root", "snippets")
	v.SetDefault("default_locale", models.CanonicalLocale.String())
	v.SetDefault("valkey_host", "")
	v.SetDefault("valkey_port", "6379")
	v.SetDefault("valkey_password", "")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("watch", true)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("noteshub")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "noteshub"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("NOTESHUB")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		// No discoverable config file — defaults and environment carry on.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if _, ok := models.ParseLocale(cfg.DefaultLocale); !ok {
		return nil, fmt.Errorf("default_locale %q is not a supported locale", cfg.DefaultLocale)
	}

	// Production must point at real content; development may start against
	// roots that appear later.
	if cfg.Env == "production" {
		for _, root := range []string{cfg.DocsRoot, cfg.I18nRoot} {
			if _, err := os.Stat(root); err != nil {
				return nil, fmt.Errorf("content root %s must exist in production: %w", root, err)
			}
		}
	}

	return cfg, nil
}

// Addr returns the host:port address for the HTTP server to listen on.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// ValkeyAddr returns the host:port address for the Valkey connection.
func (c *Config) ValkeyAddr() string {
	return c.ValkeyHost + ":" + c.ValkeyPort
}

// CacheEnabled reports whether a Valkey host was configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true when running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Locale returns the validated default locale. Load guarantees the value
// parses, so the zero fallback is unreachable in practice.
func (c *Config) Locale() models.Locale {
	if l, ok := models.ParseLocale(c.DefaultLocale); ok {
		return l
	}
	return models.CanonicalLocale
}
