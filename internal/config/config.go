// Package config loads the optional fmtgate configuration file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/fmtgate/internal/discover"
	"github.com/andyballingall/fmtgate/internal/formatter"
)

// ConfigFile is the name looked up in the working directory when no explicit
// --config path is given.
const ConfigFile = ".fmtgate.yml"

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the run settings that can come from the config file.
// Command-line flags override these; these override the built-in defaults.
type Config struct {
	// Formatter is the formatter executable name or path.
	Formatter string `yaml:"formatter"`

	// Extensions is the file extension allow-list, each entry with or
	// without the leading dot.
	Extensions []string `yaml:"extensions"`

	// Workers bounds concurrent formatter invocations. 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Output selects the report format: text or json.
	Output string `yaml:"output"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Formatter:  formatter.DefaultExecutable,
		Extensions: discover.DefaultExtensions,
		Output:     OutputText,
	}
}

// Load reads and validates the config file at path. A missing file is a
// MissingConfigError; the caller decides whether that is fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingConfigError{Path: path}
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDir loads ConfigFile from dir if it exists, or the defaults if not.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		var missing *MissingConfigError
		if errors.As(err, &missing) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and normalizes the extension list so every
// entry carries its leading dot.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return &InvalidWorkerCountError{Value: c.Workers}
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return &InvalidOutputFormatError{Value: c.Output}
	}
	for i, ext := range c.Extensions {
		trimmed := strings.TrimSpace(ext)
		if strings.TrimPrefix(trimmed, ".") == "" {
			return &InvalidExtensionError{Value: ext}
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		c.Extensions[i] = trimmed
	}
	return nil
}
