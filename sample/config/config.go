// Package config loads the inputs of the sample program.
//
// Values are layered: Default, then an optional YAML file, then CODICULUM_*
// environment variables. Command-line flags are applied on top by cmd/sample.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvValue    = "CODICULUM_VALUE"
	EnvA        = "CODICULUM_A"
	EnvB        = "CODICULUM_B"
	EnvLogLevel = "CODICULUM_LOG_LEVEL"
)

// Config holds the inputs of the sample program and its log level.
type Config struct {
	// Value is passed to NewMyClass.
	Value int `yaml:"value"`

	// A and B are the operands of Add.
	A int `yaml:"a"`
	B int `yaml:"b"`

	// LogLevel is a zap level name (debug, info, warn, error, ...).
	LogLevel string `yaml:"log_level"`
}

// Default returns the inputs that produce "Value: 10" and "Sum: 8".
func Default() Config {
	return Config{
		Value:    10,
		A:        5,
		B:        3,
		LogLevel: "error",
	}
}

// Load is Read followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read builds a Config from defaults, the YAML file at path and the
// environment without validating it, so callers can layer more sources
// before calling Validate. An empty path skips the file; a path made only of
// whitespace is an error.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if strings.TrimSpace(path) == "" {
			return Config{}, errors.Errorf("config path %q is blank", path)
		}
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg can be used to run the program.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		// An empty document leaves the defaults untouched.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvValue, &c.Value},
		{EnvA, &c.A},
		{EnvB, &c.B},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s must be an integer", e.key)
		}
		*e.dst = n
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	return nil
}
