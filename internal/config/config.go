// Package config reads blockfont settings from the environment and from
// optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvFont     = "BLOCKFONT_FONT"
	EnvWidth    = "BLOCKFONT_WIDTH"
	EnvInverted = "BLOCKFONT_INVERTED"
	EnvLogLevel = "BLOCKFONT_LOG_LEVEL"
)

// DefaultFont is the font file used when none is configured.
const DefaultFont = "./unifont_all-15.1.02.hex"

// Config holds the settings shared by the blockfont commands. Command line
// flags are applied on top of it.
type Config struct {
	FontPath string
	Width    int // 0 detects the terminal width
	Inverted bool
	LogLevel log.Level
}

// Load applies the given .env files, skipping any that do not exist, and
// then reads the BLOCKFONT_* variables. Variables already present in the
// environment take precedence over .env files.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	cfg := Config{
		FontPath: DefaultFont,
		LogLevel: log.WarnLevel,
	}
	if v := os.Getenv(EnvFont); v != "" {
		cfg.FontPath = v
	}
	if v := os.Getenv(EnvWidth); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w < 0 {
			return Config{}, fmt.Errorf("config: %s=%q is not a width", EnvWidth, v)
		}
		cfg.Width = w
	}
	if v := os.Getenv(EnvInverted); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s=%q: %w", EnvInverted, v, err)
		}
		cfg.Inverted = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}
