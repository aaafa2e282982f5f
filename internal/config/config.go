// Package config loads the gridpath configuration file.
//
// The file is TOML and every key is optional; missing keys keep their
// defaults. Unknown keys are rejected so typos do not pass silently.
//
//	[grid]
//	default_size = 20
//	min_size = 5
//	max_size = 50
//
//	[session]
//	clear_policy = "edit"
//
//	[render]
//	cell_pixels = 24
//	formats = ["txt"]
//	labels = false
//	adjacency = false
//
//	[cache]
//	enabled = true
//	ttl = "168h"
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/cache"
	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pipeline"
	"github.com/matzehuels/gridpath/pkg/render/raster"
	"github.com/matzehuels/gridpath/pkg/session"
)

// appName names the config directory.
const appName = "gridpath"

// MaxGridSize is the largest grid a config may allow.
const MaxGridSize = 200

// Config is the decoded configuration file.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Session SessionConfig `toml:"session"`
	Render  RenderConfig  `toml:"render"`
	Cache   CacheConfig   `toml:"cache"`
	Log     LogConfig     `toml:"log"`
}

// GridConfig holds the size slider settings.
type GridConfig struct {
	DefaultSize int `toml:"default_size"`
	MinSize     int `toml:"min_size"`
	MaxSize     int `toml:"max_size"`
}

// SessionConfig holds interactive session settings.
type SessionConfig struct {
	ClearPolicy string `toml:"clear_policy"`
}

// RenderConfig holds export settings for the solve command.
type RenderConfig struct {
	CellPixels int      `toml:"cell_pixels"`
	Formats    []string `toml:"formats"`
	Labels     bool     `toml:"labels"`
	Adjacency  bool     `toml:"adjacency"`
}

// CacheConfig holds the rendered-artifact cache settings.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"` // Go duration; "0s" never expires
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			DefaultSize: grid.DefaultSize,
			MinSize:     grid.MinSize,
			MaxSize:     grid.MaxSize,
		},
		Session: SessionConfig{ClearPolicy: session.ClearOnEdit.String()},
		Render: RenderConfig{
			CellPixels: raster.DefaultCellPixels,
			Formats:    []string{pipeline.DefaultFormat},
		},
		Cache: CacheConfig{Enabled: true, TTL: cache.DefaultTTL.String()},
		Log:   LogConfig{Level: log.InfoLevel.String()},
	}
}

// Path returns the default config file location using the XDG standard
// (~/.config/gridpath/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads and validates the config file at path. The file must exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault reads the config file at [Path]. A missing file yields
// [Default]. It also returns the path that was consulted.
func LoadDefault() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), path, nil
	}
	return cfg, path, err
}

// Parse decodes TOML from r on top of the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enum fields.
func (c Config) Validate() error {
	g := c.Grid
	if g.MinSize < 1 || g.MinSize > g.DefaultSize || g.DefaultSize > g.MaxSize || g.MaxSize > MaxGridSize {
		return errors.New(errors.ErrCodeInvalidConfig,
			"grid sizes must satisfy 1 <= min_size (%d) <= default_size (%d) <= max_size (%d) <= %d",
			g.MinSize, g.DefaultSize, g.MaxSize, MaxGridSize)
	}
	if _, err := session.ParseClearPolicy(c.Session.ClearPolicy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "session.clear_policy")
	}
	if px := c.Render.CellPixels; px < raster.MinCellPixels || px > raster.MaxCellPixels {
		return errors.New(errors.ErrCodeInvalidConfig,
			"render.cell_pixels %d out of range [%d, %d]", px, raster.MinCellPixels, raster.MaxCellPixels)
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}
	if ttl, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl")
	} else if ttl < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl %s must not be negative", ttl)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return nil
}

// LogLevel returns the configured log level, or info when unset.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CacheTTL returns the configured artifact lifetime.
func (c Config) CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return cache.DefaultTTL
	}
	return ttl
}

// SessionOptions converts the config to controller options.
func (c Config) SessionOptions(logger *log.Logger) session.Options {
	policy, _ := session.ParseClearPolicy(c.Session.ClearPolicy)
	return session.Options{
		DefaultSize: c.Grid.DefaultSize,
		MinSize:     c.Grid.MinSize,
		MaxSize:     c.Grid.MaxSize,
		Policy:      policy,
		Logger:      logger,
	}
}

// PipelineOptions converts the config to headless pipeline options.
func (c Config) PipelineOptions(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Formats:    append([]string(nil), c.Render.Formats...),
		CellPixels: c.Render.CellPixels,
		Labels:     c.Render.Labels,
		Adjacency:  c.Render.Adjacency,
		Logger:     logger,
		CacheTTL:   c.CacheTTL(),
	}
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
