// Package config loads xpoint settings from defaults, a YAML file, an
// optional .env file and XPOINT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath   string      `yaml:"db"`
	Timezone string      `yaml:"timezone"`
	Log      LogConfig   `yaml:"log"`
	Chart    ChartConfig `yaml:"chart"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	UseCases bool   `yaml:"use_cases"`
}

type ChartConfig struct {
	// Width is the bar length in cells for a full-scale value.
	Width int `yaml:"width"`
}

// DefaultConfig keeps data under the XDG data directory and logging off.
func DefaultConfig() Config {
	return Config{
		DBPath:   filepath.Join(xdg.DataHome, "xpoint", "xpoint.db"),
		Timezone: "Local",
		Log:      LogConfig{Level: "info"},
		Chart:    ChartConfig{Width: 40},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/xpoint/config.yaml unless XPOINT_CONFIG is set.
func DefaultPath() string {
	if v := os.Getenv("XPOINT_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, "xpoint", "config.yaml")
}

// Load reads .env from the working directory if present, then the config file
// at DefaultPath. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}
	return LoadFile(DefaultPath())
}

// LoadFile applies the YAML file at path over the defaults, then environment
// overrides. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("XPOINT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("XPOINT_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("XPOINT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("XPOINT_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("XPOINT_LOG_USE_CASES: %w", err)
		}
		cfg.Log.UseCases = b
	}
	if v := os.Getenv("XPOINT_CHART_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("XPOINT_CHART_WIDTH: %w", err)
		}
		cfg.Chart.Width = n
	}
	return nil
}

// Validate checks the values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: db path is empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Chart.Width <= 0 {
		return fmt.Errorf("config: chart width must be positive, got %d", c.Chart.Width)
	}
	return nil
}

// Location resolves Timezone. "" and "Local" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
