// Package config provides the configuration loader for iconkit.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"regexp"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ICONKIT_"

	// EnvConfigPath names an explicit configuration file.
	EnvConfigPath = "ICONKIT_CONFIG"
)

// Log formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns the configuration used when no file and no overrides are present.
func Default() *Config {
	return &Config{
		Bridge: BridgeConfig{
			CallTimeout: domain.DefaultCallTimeout,
		},
		Preload: PreloadConfig{
			Concurrency: domain.DefaultPreloadConcurrency,
		},
		Badge: BadgeConfig{
			TitlePattern: domain.DefaultTitlePattern,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatPretty,
		},
	}
}

// Load reads the configuration from path, then applies environment overrides.
//
// An empty path falls back to $ICONKIT_CONFIG and then to iconkit.yaml in the
// working directory. Only that last, implicit file may be missing.
func Load(path string) (*Config, error) {
	optional := false
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = domain.ConfigFileName
		optional = true
	}

	cfg := Default()
	if err := readAndUnmarshalYAML(path, cfg); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	if err := cfg.validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func readAndUnmarshalYAML(path string, cfg *Config) error {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return zerr.With(err, "path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return zerr.With(err, "path", path)
	}
	return nil
}

func (c *Config) validate() error {
	if _, ok := logLevels[c.Log.Level]; !ok {
		return zerr.With(domain.ErrConfigInvalidLogLevel, "level", c.Log.Level)
	}

	if c.Log.Format != FormatPretty && c.Log.Format != FormatJSON {
		return zerr.With(domain.ErrConfigInvalidLogFormat, "format", c.Log.Format)
	}

	if c.Bridge.LegacyURL != "" {
		u, err := url.Parse(c.Bridge.LegacyURL)
		if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
			return zerr.With(domain.ErrConfigInvalidLegacyURL, "url", c.Bridge.LegacyURL)
		}
	}

	if c.Preload.Concurrency <= 0 {
		return zerr.With(domain.ErrConfigInvalidConcurrency, "concurrency", c.Preload.Concurrency)
	}

	re, err := regexp.Compile(c.Badge.TitlePattern)
	if err != nil || re.NumSubexp() < 1 {
		return zerr.With(domain.ErrConfigInvalidTitlePattern, "pattern", c.Badge.TitlePattern)
	}
	c.titleRegexp = re

	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	return logLevels[c.Log.Level]
}
