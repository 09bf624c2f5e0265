package app

import (
	"github.com/spf13/pflag"

	"github.com/andyballingall/fmtgate/internal/config"
)

// settings carries the flag values that can override the config file.
type settings struct {
	Formatter  string
	Workers    int
	Extensions []string
	Output     string
}

// resolveConfig produces the effective run configuration. Precedence is
// flags over config file over defaults; a flag only overrides when the user
// actually set it, so an explicit `--workers 0` still wins.
func resolveConfig(flags *pflag.FlagSet, configPath string, s settings) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		// An explicit --config that cannot be loaded is fatal.
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDir(".")
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("clang-format") {
		cfg.Formatter = s.Formatter
	}
	if flags.Changed("workers") {
		cfg.Workers = s.Workers
	}
	if flags.Changed("ext") {
		cfg.Extensions = s.Extensions
	}
	if flags.Changed("output") {
		cfg.Output = s.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
