// Package config provides configuration management for the tweetstats pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file picked up from the working directory
// when no explicit path is given.
const DefaultPath = "tweetstats.yaml"

// Date failure policies accepted by dates.on_error.
const (
	OnErrorQuarantine = "quarantine"
	OnErrorSkip       = "skip"
	OnErrorFail       = "fail"
)

// Configuration validation errors.
var (
	ErrMissingInputPath     = errors.New("input.path is required")
	ErrMissingOutputPath    = errors.New("output.path is required")
	ErrSameInputOutput      = errors.New("input.path and output.path must differ")
	ErrNoDateLayouts        = errors.New("dates.layouts must contain at least one layout")
	ErrEmptyDateLayout      = errors.New("dates.layouts entries must be non-empty")
	ErrInvalidDatePolicy    = errors.New("dates.on_error must be one of: quarantine, skip, fail")
	ErrInvalidTopN          = errors.New("stats.top_n must be at least 1")
	ErrInvalidMinWordLength = errors.New("stats.min_word_length must be at least 1")
	ErrInvalidTextWidth     = errors.New("report.text_width must be 0 (no limit) or at least 10")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Input     InputConfig     `yaml:"input" toml:"input"`
	Output    OutputConfig    `yaml:"output" toml:"output"`
	Dates     DatesConfig     `yaml:"dates" toml:"dates"`
	Normalize NormalizeConfig `yaml:"normalize" toml:"normalize"`
	Stats     StatsConfig     `yaml:"stats" toml:"stats"`
	Report    ReportConfig    `yaml:"report" toml:"report"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// InputConfig locates the JSON export.
type InputConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// OutputConfig defines where and how the XML document is written.
type OutputConfig struct {
	Path        string `yaml:"path" toml:"path"`
	PrettyPrint bool   `yaml:"pretty_print" toml:"pretty_print"`
}

// DatesConfig defines how CreatedAt values are parsed and what happens to
// records whose timestamp matches none of the layouts.
type DatesConfig struct {
	OnError string   `yaml:"on_error" toml:"on_error"`
	Layouts []string `yaml:"layouts" toml:"layouts"`
}

// NormalizeConfig defines ingestion checks.
type NormalizeConfig struct {
	// Strict drops records without text instead of keeping them with no tokens.
	Strict bool `yaml:"strict" toml:"strict"`
}

// StatsConfig defines the ranking parameters.
type StatsConfig struct {
	TopN          int `yaml:"top_n" toml:"top_n"`
	MinWordLength int `yaml:"min_word_length" toml:"min_word_length"`
}

// ReportConfig defines console presentation.
type ReportConfig struct {
	TextWidth int `yaml:"text_width" toml:"text_width"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// DefaultDateLayouts are tried in order after " at " has been replaced by a space.
// The first covers IFTTT exports such as "March 14, 2023 at 09:30AM".
func DefaultDateLayouts() []string {
	return []string{
		"January 2, 2006 3:04PM",
		"January 2, 2006 3:04 PM",
		"January 2, 2006 15:04",
		"January 2, 2006 15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
		"01/02/2006 15:04:05",
		"1/2/2006 3:04:05 PM",
	}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  InputConfig{Path: "data.json"},
		Output: OutputConfig{Path: "tweets.xml", PrettyPrint: true},
		Dates: DatesConfig{
			OnError: OnErrorQuarantine,
			Layouts: DefaultDateLayouts(),
		},
		Stats:   StatsConfig{TopN: 10, MinWordLength: 5},
		Report:  ReportConfig{TextWidth: 120},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a YAML or TOML file on top of the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Resolve loads the explicit path when given, otherwise DefaultPath when it
// exists, otherwise the defaults. It returns the path that was read, or "".
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			cfg := Default()
			return &cfg, "", nil
		}

		path = DefaultPath
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

func (c *Config) normalize() {
	c.Input.Path = strings.TrimSpace(c.Input.Path)
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	c.Dates.OnError = strings.ToLower(strings.TrimSpace(c.Dates.OnError))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if filepath.Clean(c.Input.Path) == filepath.Clean(c.Output.Path) {
		return ErrSameInputOutput
	}

	if len(c.Dates.Layouts) == 0 {
		return ErrNoDateLayouts
	}

	for i, layout := range c.Dates.Layouts {
		if strings.TrimSpace(layout) == "" {
			return fmt.Errorf("%w: layouts[%d]", ErrEmptyDateLayout, i)
		}
	}

	switch c.Dates.OnError {
	case OnErrorQuarantine, OnErrorSkip, OnErrorFail:
	default:
		return ErrInvalidDatePolicy
	}

	if c.Stats.TopN < 1 {
		return ErrInvalidTopN
	}

	if c.Stats.MinWordLength < 1 {
		return ErrInvalidMinWordLength
	}

	if c.Report.TextWidth != 0 && c.Report.TextWidth < 10 {
		return ErrInvalidTextWidth
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, OnError: %s, TopN: %d}",
		c.Input.Path,
		c.Output.Path,
		c.Dates.OnError,
		c.Stats.TopN,
	)
}
