package config

import (
	"regexp"
	"time"
)

// Config represents the structure of the iconkit.yaml configuration file.
// Every field can be overridden by an ICONKIT_* environment variable.
type Config struct {
	Bridge  BridgeConfig  `yaml:"bridge" envPrefix:"BRIDGE_"`
	Preload PreloadConfig `yaml:"preload" envPrefix:"PRELOAD_"`
	Badge   BadgeConfig   `yaml:"badge" envPrefix:"BADGE_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`

	titleRegexp *regexp.Regexp
}

// BridgeConfig locates the host bridge.
type BridgeConfig struct {
	Socket      string        `yaml:"socket" env:"SOCKET"`
	LegacyURL   string        `yaml:"legacy_url" env:"URL"`
	CallTimeout time.Duration `yaml:"call_timeout" env:"TIMEOUT"`
}

// PreloadConfig tunes cache warming.
type PreloadConfig struct {
	Icons       []string `yaml:"icons" env:"ICONS" envSeparator:","`
	Concurrency int      `yaml:"concurrency" env:"CONCURRENCY"`
}

// BadgeConfig tunes the window title to badge mirror.
type BadgeConfig struct {
	TitlePattern string `yaml:"title_pattern" env:"TITLE_PATTERN"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// TitleRegexp returns the compiled badge title pattern.
func (c *Config) TitleRegexp() *regexp.Regexp {
	return c.titleRegexp
}
