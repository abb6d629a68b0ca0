package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/branchsync/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	GitBinary       string
	DefaultBranch   string
	MaxWorkers      int
	FetchRetries    int
	FetchRetryDelay time.Duration
	LockFile        string
	LoggerConfig    logger.Config
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		GitBinary:       "git",
		DefaultBranch:   "master",
		MaxWorkers:      8,
		FetchRetries:    0,
		FetchRetryDelay: 2 * time.Second,
		LockFile:        filepath.Join(".git", "index.lock"),
		LoggerConfig: logger.Config{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// LoadConfig reads configuration from an optional branchsync.yaml and from
// BRANCHSYNC_* environment variables, using the global Viper instance so that
// CLI flags bound to it take precedence.
func LoadConfig() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	def := Default()

	v.SetConfigName("branchsync")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/branchsync")

	v.SetEnvPrefix("BRANCHSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("git_binary", def.GitBinary)
	v.SetDefault("default_branch", def.DefaultBranch)
	v.SetDefault("max_workers", def.MaxWorkers)
	v.SetDefault("fetch_retries", def.FetchRetries)
	v.SetDefault("fetch_retry_delay", def.FetchRetryDelay)
	v.SetDefault("lock_file", def.LockFile)
	v.SetDefault("log.level", def.LoggerConfig.Level)
	v.SetDefault("log.format", def.LoggerConfig.Format)
	v.SetDefault("log.output", def.LoggerConfig.Output)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		GitBinary:       v.GetString("git_binary"),
		DefaultBranch:   v.GetString("default_branch"),
		MaxWorkers:      v.GetInt("max_workers"),
		FetchRetries:    v.GetInt("fetch_retries"),
		FetchRetryDelay: v.GetDuration("fetch_retry_delay"),
		LockFile:        v.GetString("lock_file"),
		LoggerConfig: logger.Config{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot work with.
func (c *Config) Validate() error {
	if c.GitBinary == "" {
		return fmt.Errorf("git_binary must be set")
	}
	if c.DefaultBranch == "" {
		return fmt.Errorf("default_branch must be set")
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("fetch_retries must not be negative, got %d", c.FetchRetries)
	}
	if c.FetchRetryDelay < 0 {
		return fmt.Errorf("fetch_retry_delay must not be negative, got %s", c.FetchRetryDelay)
	}
	if !filepath.IsLocal(c.LockFile) {
		return fmt.Errorf("lock_file must be a relative path inside the working copy, got %q", c.LockFile)
	}

	switch c.LoggerConfig.Level {
	case "debug", "info", "warn", "error":
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", c.LoggerConfig.Level)
		c.LoggerConfig.Level = "info"
	}
	return nil
}
