package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle/export"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "TRI_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds syntax analysis settings
type ParserConfig struct {
	Extended  bool `toml:"extended" yaml:"extended"`
	MaxTokens int  `toml:"max_tokens" yaml:"max_tokens"`
	TabWidth  int  `toml:"tab_width" yaml:"tab_width"`
}

// OutputConfig holds output file settings
type OutputConfig struct {
	Path    string `toml:"path" yaml:"path"`
	Tokens  string `toml:"tokens" yaml:"tokens"`
	Format  string `toml:"format" yaml:"format"`
	Graph   string `toml:"graph" yaml:"graph"`
	Metrics string `toml:"metrics" yaml:"metrics"`
}

// WatchConfig holds settings for the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, configError(err, "config file not found: "+path)
		}
		return nil, configError(err, "failed to read config")
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, configError(err, "failed to parse config")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, configError(err, "failed to parse config")
		}
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the TRI_CONFIG environment variable
// or the first default location that exists. Without any config file the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// DefaultPaths returns the config locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./tri.toml",
		"./tri.yaml",
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config/tri/config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.TabWidth == 0 {
		c.Parser.TabWidth = 4
	}

	// Output
	if c.Output.Path == "" {
		c.Output.Path = "tree.out"
	}
	if c.Output.Tokens == "" {
		c.Output.Tokens = "tokens.out"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 100 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Output.Path = os.ExpandEnv(c.Output.Path)
	c.Output.Tokens = os.ExpandEnv(c.Output.Tokens)
	c.Output.Graph = os.ExpandEnv(c.Output.Graph)
	c.Output.Metrics = os.ExpandEnv(c.Output.Metrics)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	fail := func(key string, err error) error {
		return mdwerror.Wrap(err, "invalid "+key).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return fail("general.log_level", err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return fail("general.log_format", err)
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fail("output.format", err)
	}
	if c.Parser.MaxTokens < 0 {
		return fail("parser.max_tokens", fmt.Errorf("must not be negative, got %d", c.Parser.MaxTokens))
	}
	if c.Parser.TabWidth < 1 {
		return fail("parser.tab_width", fmt.Errorf("must be positive, got %d", c.Parser.TabWidth))
	}
	if c.Watch.Debounce.Duration < 0 {
		return fail("watch.debounce", fmt.Errorf("must not be negative, got %s", c.Watch.Debounce.Duration))
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() mdwlog.Level {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() mdwlog.Format {
	format, err := mdwlog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return mdwlog.FormatText
	}
	return format
}

// OutputFormat returns the parsed output format
func (c *Config) OutputFormat() export.Format {
	format, err := export.ParseFormat(c.Output.Format)
	if err != nil {
		return export.FormatText
	}
	return format
}

func configError(err error, message string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Load")
}
