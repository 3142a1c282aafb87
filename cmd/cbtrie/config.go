package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the cbtrie settings. Command line flags take precedence over
// the values read from a file.
type Config struct {
	LogLevel  string   `yaml:"LogLevel"`
	PoolLimit int      `yaml:"PoolLimit"`
	SlabSize  int      `yaml:"SlabSize"`
	Keys      []string `yaml:"Keys"`
}

var errNegative = errors.New("must not be negative")

// loadConfig reads a YAML config file. An empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := Config{LogLevel: "info"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty file keeps the defaults
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.PoolLimit < 0 {
		return fmt.Errorf("PoolLimit %w", errNegative)
	}
	if c.SlabSize < 0 {
		return fmt.Errorf("SlabSize %w", errNegative)
	}
	return nil
}

// configFromContext loads the config file and applies the flag overrides.
func configFromContext(cctx *cli.Context) (Config, error) {
	cfg, err := loadConfig(cctx.String("config"))
	if err != nil {
		return Config{}, err
	}
	if cctx.IsSet("log-level") {
		cfg.LogLevel = cctx.String("log-level")
	}
	if cctx.IsSet("pool-limit") {
		cfg.PoolLimit = cctx.Int("pool-limit")
	}
	if cctx.IsSet("slab-size") {
		cfg.SlabSize = cctx.Int("slab-size")
	}
	if cctx.IsSet("keys") {
		cfg.Keys = cctx.StringSlice("keys")
	}
	return cfg, cfg.Validate()
}
