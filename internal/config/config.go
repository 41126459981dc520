// Package config loads the rpg-content settings file
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// Config holds the settings shared by every command. Flags override the
// values read from the file.
type Config struct {
	// DataDir is the game data root holding items, creatures, properties
	// and spells
	DataDir string `yaml:"data_dir"`

	// Workers bounds the format worker pool, zero means one per CPU
	Workers int `yaml:"workers"`

	LogLevel string `yaml:"log_level"`

	// RegenerateTooltips is the default for format --regenerate-tooltips
	RegenerateTooltips bool `yaml:"regenerate_tooltips"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds the property index cache connection. An empty Addr
// means properties are read from disk.
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	DB          int           `yaml:"db"`
	Password    string        `yaml:"password"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	UseTLS      bool          `yaml:"use_tls"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		DataDir:  "data",
		LogLevel: "info",
		Redis: RedisConfig{
			DialTimeout: 2 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("data_dir", c.DataDir, vb)
	if c.Workers < 0 {
		vb.Field("workers", "cannot be negative")
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		vb.Fieldf("log_level", "must be one of debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.Redis.DB < 0 {
		vb.Field("redis.db", "cannot be negative")
	}
	if c.Redis.DialTimeout < 0 {
		vb.Field("redis.dial_timeout", "cannot be negative")
	}
	return vb.Build()
}

// Level returns the slog level for LogLevel, info when it is unknown
func (c *Config) Level() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}
