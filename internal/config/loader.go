package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/switch/internal/defs"
)

// Load reads settings.yaml from dir, merges it over the compiled defaults,
// applies environment overrides and validates the result. A missing file is
// not an error.
func Load(dir string) (*Settings, error) {
	cfg := NewDefaultSettings()

	loaded, err := loadYAMLFile(filepath.Clean(dir), defs.SettingsYAML, cfg)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !loaded {
		slog.Debug("settings file not found, using defaults", "dir", dir)
	}

	// An explicit empty list in the file falls back to the defaults.
	if len(cfg.Editors) == 0 {
		cfg.Editors = append([]string(nil), DefaultEditors...)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads settings from the per-user configuration directory.
func LoadDefault() (*Settings, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

// applyEnvOverrides applies environment variable overrides to the settings.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Settings) {
	if editor := strings.TrimSpace(os.Getenv(defs.EnvEditor)); editor != "" {
		cfg.Editors = append([]string{editor}, cfg.Editors...)
	}
	if level := os.Getenv(defs.EnvLogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if noColor := os.Getenv(defs.EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.NoColor = true
	}
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
