package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/sirupsen/logrus"
)

// Environment variable names
const (
	EnvPlayWidth  = "LABYRINTH_PLAY_WIDTH"
	EnvPlayHeight = "LABYRINTH_PLAY_HEIGHT"
	EnvSeed       = "LABYRINTH_SEED"
	EnvLogFile    = "LABYRINTH_LOG_FILE"
	EnvLogLevel   = "LABYRINTH_LOG_LEVEL"
	EnvKeymap     = "LABYRINTH_KEYMAP"
)

// Default play area matches the original 900x850 window
const (
	DefaultPlayWidth  = 900
	DefaultPlayHeight = 850
	DefaultLogFile    = "labyrinth.log"
	DefaultLogLevel   = "info"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds process-wide settings resolved once at startup
type Config struct {
	PlayWidth  int
	PlayHeight int
	Seed       int64 // 0 = wall clock

	LogFile  string // empty disables file logging
	LogLevel string

	KeymapPath string // optional TOML key overrides
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		PlayWidth:  DefaultPlayWidth,
		PlayHeight: DefaultPlayHeight,
		LogFile:    DefaultLogFile,
		LogLevel:   DefaultLogLevel,
	}
}

// Load applies environment overrides on top of the defaults.
// Malformed numeric values are ignored and the default kept.
func Load() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvPlayWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PlayWidth = n
		}
	}
	if v := os.Getenv(EnvPlayHeight); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PlayHeight = n
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvKeymap); v != "" {
		cfg.KeymapPath = v
	}

	return cfg
}

// Validate rejects settings the game cannot start with
func (c *Config) Validate() error {
	if err := difficulty.CheckPlayArea(c.PlayWidth, c.PlayHeight); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// Fields returns the settings for structured logging
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"play_width":  c.PlayWidth,
		"play_height": c.PlayHeight,
		"seed":        c.Seed,
		"log_file":    c.LogFile,
		"log_level":   c.LogLevel,
		"keymap":      c.KeymapPath,
	}
}
