package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/agrzeslak/bohelper/hexstr"
)

// Config represents the bohelper configuration
type Config struct {
	Endianness string    `toml:"endianness"` // default byte order for console input, "big" or "little"
	History    string    `toml:"history"`    // sqlite history database path, empty disables history
	Patterns   []Pattern `toml:"pattern"`
}

// Pattern defines a named hex pattern for the scan command
type Pattern struct {
	Name       string `toml:"name"`
	Hex        string `toml:"hex"`
	Endianness string `toml:"endianness"` // byte order the hex text is declared in, defaults to the session's
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{Endianness: "little"}
}

// Load reads and parses a TOML configuration file
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if cfg.Endianness == "" {
		cfg.Endianness = "little"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := hexstr.ParseEndianness(c.Endianness); err != nil {
		return err
	}

	names := make(map[string]bool)
	for i, p := range c.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern[%d]: name is required", i)
		}
		if names[p.Name] {
			return fmt.Errorf("pattern[%d]: duplicate name %q", i, p.Name)
		}
		names[p.Name] = true

		if p.Hex == "" {
			return fmt.Errorf("pattern[%d]: hex is required", i)
		}
		if p.Endianness != "" {
			if _, err := hexstr.ParseEndianness(p.Endianness); err != nil {
				return fmt.Errorf("pattern[%d]: %w", i, err)
			}
		}
	}

	return nil
}
