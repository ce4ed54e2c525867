package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete carewatch configuration
type Config struct {
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Journal JournalConfig `yaml:"journal" mapstructure:"journal"`
	Session SessionConfig `yaml:"session" mapstructure:"session"`
}

// OutputConfig controls rendering behavior
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	Color         bool `yaml:"color" mapstructure:"color"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// CacheConfig controls the check-result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
}

// JournalConfig controls where saved care log entries live
type JournalConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// SessionConfig controls the interactive session
type SessionConfig struct {
	// PreviewRateHz caps how often the live red-flag preview rescans while typing
	PreviewRateHz float64 `yaml:"preview_rate_hz" mapstructure:"preview_rate_hz"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Output: OutputConfig{
			Verbose:       false,
			Color:         true,
			IncludeFooter: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
			Dir:     filepath.Join(home, ".carewatch", "cache"),
		},
		Journal: JournalConfig{
			Dir: filepath.Join(home, ".carewatch", "journal"),
		},
		Session: SessionConfig{
			PreviewRateHz: 4,
		},
	}
}
