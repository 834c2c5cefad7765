// Package config loads TOML-backed tunables for the carver and runner
// programs. None of it changes Universal Machine semantics: it only
// sizes internal buffers and picks interactive-I/O defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the tunables shared by cmd/carve and cmd/run.
type Config struct {
	Heap struct {
		// InitialCapacity pre-sizes the platter heap's slot table.
		InitialCapacity int `toml:"initial_capacity"`
	} `toml:"heap"`

	Assembler struct {
		// MaxErrors caps how many parse/encoding errors Assemble collects
		// before giving up, per scroll.ErrBatch's batching policy.
		MaxErrors int `toml:"max_errors"`
	} `toml:"assembler"`

	IO struct {
		// RawStdin enables raw tty mode for interactive Input, when stdin
		// is a terminal.
		RawStdin bool `toml:"raw_stdin"`
	} `toml:"io"`
}

// Default returns a Config with the toolchain's built-in defaults.
func Default() *Config {
	c := &Config{}
	c.Heap.InitialCapacity = 64
	c.Assembler.MaxErrors = 10
	c.IO.RawStdin = false
	return c
}

// Load reads a Config from a TOML file at path, starting from Default and
// overlaying whatever keys the file sets.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	return c, nil
}
