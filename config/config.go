// Package config loads the calculator shell settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of the interactive shell.
type Config struct {
	Greeting  Greeting `yaml:"greeting"`
	Prompt    string   `yaml:"prompt"`

	// Precision is the mantissa size in bits of Float powers. Results are
	// rounded to float64 afterwards, so values above 53 only tighten the
	// intermediate computation.
	Precision uint `yaml:"precision"`
}

// Greeting is printed once when the interactive shell starts.
type Greeting struct {
	Message string `yaml:"message"`
	Color   string `yaml:"color"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Greeting: Greeting{
			Message: "Welcome to calc! Type help for the list of commands.",
			Color:   "blue",
		},
		Prompt:    "> ",
		Precision: 64,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/calc/config.yaml, or the same file
// under ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "calc", "config.yaml"), nil
}

// Load reads the file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }() // Best effort.

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r. Keys absent from the document keep their
// default value; unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func (cfg Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Validate checks the color name and the precision.
func (cfg Config) Validate() error {
	if _, ok := colors[strings.ToLower(cfg.Greeting.Color)]; !ok {
		return fmt.Errorf("unknown color %q", cfg.Greeting.Color)
	}
	if cfg.Precision == 0 {
		return fmt.Errorf("precision must be positive")
	}
	return nil
}
