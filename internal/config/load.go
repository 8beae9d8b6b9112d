package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads, decodes and validates a settings file. The format is
// chosen by extension: .json, .yaml/.yml or .toml.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes and validates settings data in the format named by ext.
// Absent keys keep their defaults.
func Parse(data []byte, ext string) (Settings, error) {
	var s Settings

	switch strings.ToLower(ext) {
	case ".json":
		if err := validateJSONDocument(data); err != nil {
			return Settings{}, err
		}
		s = decodeJSON(s, data)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	s = applyDefaults(s)
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// applyDefaults fills unset fields from Default. A document with no
// actions key gets the default actions; an explicit empty list stays
// empty only for JSON, whose decoder distinguishes the two.
func applyDefaults(s Settings) Settings {
	d := Default()
	if s.SelectionModifier == "" {
		s.SelectionModifier = d.SelectionModifier
	}
	if s.Actions == nil {
		s.Actions = d.Actions
	}
	if s.AI.Provider == "" {
		s.AI.Provider = d.AI.Provider
	}
	if s.AI.MaxTokens == 0 {
		s.AI.MaxTokens = d.AI.MaxTokens
	}
	if s.AI.TimeoutSeconds == 0 {
		s.AI.TimeoutSeconds = d.AI.TimeoutSeconds
	}
	if s.Logging.Level == "" {
		s.Logging.Level = d.Logging.Level
	}
	if s.Mutation.SettleDelayMS == 0 {
		s.Mutation.SettleDelayMS = d.Mutation.SettleDelayMS
	}
	if s.Cache.TTLSeconds == 0 {
		s.Cache.TTLSeconds = d.Cache.TTLSeconds
	}
	return s
}
