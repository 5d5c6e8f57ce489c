// Package config builds a core.Config from defaults, a TOML file and the
// environment, in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/core"
)

var log = logrus.WithField("component", "config")

// Environment variables read by FromEnv.
const (
	EnvFPS      = "PIXELGROVE_FPS"
	EnvScale    = "PIXELGROVE_SCALE"
	EnvWorkers  = "PIXELGROVE_WORKERS"
	EnvFont     = "PIXELGROVE_FONT"
	EnvLogLevel = "PIXELGROVE_LOG_LEVEL"
)

// Default returns the sandbox defaults: a 320x200 surface shown at 3x, 60 fps.
func Default() core.Config {
	return core.Config{
		Title:    "pixelgrove",
		Width:    320,
		Height:   200,
		Scale:    3,
		FPS:      60,
		Workers:  1,
		LogLevel: "info",
		Window: core.WindowSettings{
			ShowTitle: true,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file yields the defaults.
func Load(path string) (core.Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Debug("no config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv applies PIXELGROVE_* overrides. Process variables win over the dotenv
// file; a missing dotenv file is not an error.
func FromEnv(cfg core.Config, dotenv string) (core.Config, error) {
	file := map[string]string{}
	if dotenv != "" {
		vals, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			file = vals
		case errors.Is(err, os.ErrNotExist):
			log.WithField("path", dotenv).Debug("no .env file")
		default:
			return cfg, fmt.Errorf("failed to read %s: %w", dotenv, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
	return apply(cfg, lookup)
}

func apply(cfg core.Config, lookup func(string) (string, bool)) (core.Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvFPS, &cfg.FPS},
		{EnvScale, &cfg.Scale},
		{EnvWorkers, &cfg.Workers},
	}
	for _, o := range ints {
		v, ok := lookup(o.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = n
	}
	if v, ok := lookup(EnvFont); ok && v != "" {
		cfg.Font = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot start with.
func Validate(cfg core.Config) error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size %dx%d must be positive", cfg.Width, cfg.Height))
	}
	if cfg.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", cfg.Scale))
	}
	if cfg.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", cfg.FPS))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", cfg.Workers))
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ConfigureLogging sets the standard logger's level and formatter from cfg.
func ConfigureLogging(cfg core.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
