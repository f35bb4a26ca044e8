package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/buildcheck/cmakecheck/internal/errors"
	"github.com/buildcheck/cmakecheck/internal/schema"
)

// Load reads and parses a .cmakecheck.json settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read settings file")
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse settings file")
	}

	return &cfg, nil
}

// LoadAndValidate reads a settings file, applies defaults, validates, and
// returns warnings for unknown fields.
func LoadAndValidate(path string) (*Settings, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot read settings file")
	}

	// Structural validation first: type and pattern errors produce much
	// better messages from the schema validator than from json.Unmarshal.
	if err := schema.ValidateSettings(data); err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}

	return cfg, warnings, nil
}

// Discover loads the settings file from sourceDir if present. A missing
// file is not an error: the defaults are returned instead.
func Discover(sourceDir string) (*Settings, []string, error) {
	path := filepath.Join(sourceDir, SettingsFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil, nil
	}
	return LoadAndValidate(path)
}
