// Package config loads the command-line configuration.
package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixelacme/uniparse"
)

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given.
const DefaultConfigFile = ".uniparse.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings shared by all commands.
type Config struct {
	Grammar  string `koanf:"grammar"`
	Indent   int    `koanf:"indent"`
	MaxDepth int    `koanf:"max_depth"`
	Color    string `koanf:"color"`
	Verbose  bool   `koanf:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxDepth: 1000,
		Color:    ColorAuto,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.Grammar != "" {
		if _, err := uniparse.ParseGrammar(c.Grammar); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the configuration into library options.
func (c *Config) Options() ([]uniparse.Option, error) {
	opts := []uniparse.Option{uniparse.Indent(c.Indent), uniparse.MaxDepth(c.MaxDepth)}
	if c.Grammar != "" {
		g, err := uniparse.ParseGrammar(c.Grammar)
		if err != nil {
			return nil, err
		}
		opts = append(opts, uniparse.WithGrammar(g))
	}
	return opts, nil
}

type configKey struct{}

type loggerKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or the defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return Default()
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.New(slog.DiscardHandler)
}
