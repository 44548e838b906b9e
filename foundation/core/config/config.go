// File: config.go
// Title: Settings Loading
// Description: Implements the Settings type and loading it from TOML and YAML
//              files or strings on top of the defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Typed Settings, strict decoding, env overrides moved to env.go

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "NUMCORE"

// Settings holds everything the CLI and the calculator can be configured with
type Settings struct {
	Locale    string          `toml:"locale" yaml:"locale"`
	Precision string          `toml:"precision" yaml:"precision"`
	AngleUnit string          `toml:"angle_unit" yaml:"angle_unit"`
	Display   DisplaySettings `toml:"display" yaml:"display"`
	Log       LogSettings     `toml:"log" yaml:"log"`
}

// DisplaySettings controls result formatting
type DisplaySettings struct {
	MaxFractionDigits int `toml:"max_fraction_digits" yaml:"max_fraction_digits"`
}

// LogSettings controls the logger built by the CLI
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Locale:    "en-US",
		Precision: "float64",
		AngleUnit: "rad",
		Display:   DisplaySettings{MaxFractionDigits: 12},
		Log:       LogSettings{Level: "warn", Format: "console"},
	}
}

// Load reads settings from filePath (an empty path means defaults only), then
// applies NUMCORE_* environment overrides and validates the result.
func Load(filePath string) (Settings, error) {
	settings := DefaultSettings()

	if strings.TrimSpace(filePath) != "" {
		fromFile, err := LoadFile(filePath)
		if err != nil {
			return settings, err
		}
		settings = fromFile
	}

	if err := ApplyEnv(&settings, EnvPrefix, os.LookupEnv); err != nil {
		return settings, err
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// LoadFile reads a settings file on top of the defaults without applying the
// environment or validating.
func LoadFile(filePath string) (Settings, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return DefaultSettings(), mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadFile").
			WithDetail("filePath", filePath)
	}

	settings, err := Parse(content, detectFormat(filePath))
	if err != nil {
		return settings, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadFile").
			WithDetail("filePath", filePath)
	}
	return settings, nil
}

// Parse decodes settings content in the given format on top of the defaults.
// FormatAuto is treated as TOML.
func Parse(content []byte, format Format) (Settings, error) {
	settings := DefaultSettings()

	switch format {
	case FormatTOML, FormatAuto:
		meta, err := toml.Decode(string(content), &settings)
		if err != nil {
			return DefaultSettings(), mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return DefaultSettings(), mdwerror.New(fmt.Sprintf("unknown config keys: %s", strings.Join(keys, ", "))).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return DefaultSettings(), mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	default:
		return DefaultSettings(), mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	return settings, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
