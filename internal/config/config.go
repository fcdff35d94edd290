// Package config loads the pokereval HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokereval/internal/game"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "pokereval.hcl"

// Config represents the complete configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	NoColor  bool            `hcl:"no_color,optional"`
	Simulate *SimulateConfig `hcl:"simulate,block"`
}

// SimulateConfig holds defaults for the simulate command
type SimulateConfig struct {
	Showdowns int   `hcl:"showdowns,optional"`
	Players   int   `hcl:"players,optional"`
	Workers   int   `hcl:"workers,optional"` // 0 = one per CPU
	Seed      int64 `hcl:"seed,optional"`    // 0 = time based
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Simulate == nil {
		c.Simulate = &SimulateConfig{}
	}
	if c.Simulate.Showdowns == 0 {
		c.Simulate.Showdowns = 100_000
	}
	if c.Simulate.Players == 0 {
		c.Simulate.Players = game.DefaultPlayers
	}
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Simulate == nil {
		return errors.New("missing simulate settings")
	}
	s := c.Simulate
	if s.Showdowns < 1 {
		return fmt.Errorf("invalid showdowns: %d", s.Showdowns)
	}
	if s.Players < 1 || s.Players > game.MaxPlayers {
		return fmt.Errorf("invalid players: %d (must be 1-%d)", s.Players, game.MaxPlayers)
	}
	if s.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", s.Workers)
	}
	return nil
}
