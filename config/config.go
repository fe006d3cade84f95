// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads brush settings from TOML.
//
// The embedded default.toml is decoded first; user files are decoded over
// it, so a file only needs the keys it changes.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/brush/text"
)

//go:embed default.toml
var defaultConfig string

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// LevelOff disables logging.
const LevelOff = "off"

// Config is the full brush configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Text   TextConfig   `toml:"text"`
	Log    LogConfig    `toml:"log"`
}

// CanvasConfig sizes new documents.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// TextConfig holds the defaults of new text layers.
type TextConfig struct {
	Content string      `toml:"content"`
	Family  string      `toml:"family"`
	Weight  text.Weight `toml:"weight"`
	Style   string      `toml:"style"`
	Size    float64     `toml:"size"`
	Color   string      `toml:"color"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	c := &Config{}
	if err := c.Load(defaultConfig); err != nil {
		panic(fmt.Sprintf("config: embedded default config is invalid: %v", err))
	}
	return c
}

// Load decodes data over c. Keys missing from data keep their current values.
func (c *Config) Load(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

// LoadFile returns the defaults overlaid with the TOML file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	c := Default()
	if err := c.Load(string(data)); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height))
	}
	if !isHexColor(c.Canvas.Background) {
		errs = append(errs, fmt.Errorf("%w: canvas background %q", ErrInvalid, c.Canvas.Background))
	}
	if c.Text.Family == "" {
		errs = append(errs, fmt.Errorf("%w: empty text family", ErrInvalid))
	}
	if c.Text.Weight < text.WeightThin || c.Text.Weight > text.WeightExtraBlack {
		errs = append(errs, fmt.Errorf("%w: text weight %d", ErrInvalid, c.Text.Weight))
	}
	if _, ok := text.ParseStyle(c.Text.Style); !ok {
		errs = append(errs, fmt.Errorf("%w: text style %q", ErrInvalid, c.Text.Style))
	}
	if c.Text.Size <= 0 {
		errs = append(errs, fmt.Errorf("%w: text size %v", ErrInvalid, c.Text.Size))
	}
	if !isHexColor(c.Text.Color) {
		errs = append(errs, fmt.Errorf("%w: text color %q", ErrInvalid, c.Text.Color))
	}
	if _, _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TextStyle returns the parsed text style.
func (c *Config) TextStyle() text.Style {
	s, _ := text.ParseStyle(c.Text.Style)
	return s
}

// LogLevel returns the slog level. enabled is false for "off".
func (c *Config) LogLevel() (level slog.Level, enabled bool, err error) {
	name := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if name == LevelOff || name == "" {
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, false, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return level, true, nil
}

// isHexColor reports whether s is #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}
