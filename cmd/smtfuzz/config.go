package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/benbjohnson/smtfuzz"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the on-disk configuration shared by all subcommands.
type Config struct {
	LogLevel string `yaml:"log-level" validate:"omitempty,oneof=debug info warn error"`

	// Solver options applied in name order after the solver is created.
	// Canonical names and raw Z3 parameters are both accepted.
	Options map[string]string `yaml:"options" validate:"dive,keys,required,endkeys,required"`

	// Theories removed from the published profile before ops are listed.
	ExcludeTheories []smtfuzz.Theory `yaml:"exclude-theories" validate:"dive,startswith=THEORY_"`
}

// NewConfig returns a configuration with default settings.
func NewConfig() *Config {
	return &Config{LogLevel: "warn"}
}

// LoadConfig reads a YAML config from path. An empty path returns the default.
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()
	if path == "" {
		return config, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	} else if err := config.Parse(buf); err != nil {
		return nil, err
	}
	return config, nil
}

// Parse decodes buf over the receiver and validates the result.
func (c *Config) Parse(buf []byte) error {
	if err := yaml.Unmarshal(buf, c); err != nil {
		return fmt.Errorf("config: %w", err)
	} else if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Apply sets every configured option on s in name order.
func (c *Config) Apply(s smtfuzz.Solver) error {
	names := make([]string, 0, len(c.Options))
	for name := range c.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.SetOpt(name, c.Options[name]); err != nil {
			return err
		}
	}
	return nil
}
