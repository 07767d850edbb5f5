// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/algs4/indexpq"
)

// ErrConfig indicates an unreadable or invalid configuration file.
var ErrConfig = errors.New("cli: invalid configuration")

// Config holds the defaults a TOML file may set. Command-line flags
// override every field.
//
//	queue     = "fibonacci"   # binary, multiway, binomial or fibonacci
//	arity     = 4             # branching factor of the multiway queue
//	log_level = "info"        # debug, info, warn or error
type Config struct {
	Queue    string `toml:"queue"`
	Arity    int    `toml:"arity"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Queue:    string(indexpq.KindFibonacci),
		Arity:    indexpq.DefaultArity,
		LogLevel: "info",
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
// Unknown keys are rejected so that typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := indexpq.ParseKind(c.Queue); err != nil {
		return fmt.Errorf("%w: queue: %w", ErrConfig, err)
	}
	if c.Arity < 2 {
		return fmt.Errorf("%w: arity must be at least 2, got %d", ErrConfig, c.Arity)
	}
	if _, err := c.level(); err != nil {
		return err
	}

	return nil
}

func (c Config) level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrConfig, err)
	}

	return level, nil
}
