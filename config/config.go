// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration shared by the command line
// and the HTTP server. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mca/mca"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Config describes one analysis run.
type Config struct {
	// Input
	Input     string   `yaml:"input"`
	IndexCol  bool     `yaml:"index_col"`
	SkipRows  int      `yaml:"skip_rows"`
	Drop      []string `yaml:"drop"`
	Cols      []string `yaml:"cols"`
	NCols     int      `yaml:"ncols"` // 0: not given
	Delimiter string   `yaml:"delimiter"`

	// Engine
	Benzecri bool    `yaml:"benzecri"`
	Tol      float64 `yaml:"tol"`
	Sparse   bool    `yaml:"sparse"`

	// Report
	N         int     `yaml:"n"` // 0: percent rule
	Percent   float64 `yaml:"percent"`
	Greenacre bool    `yaml:"greenacre"`
	Format    string  `yaml:"format"`

	// Server
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Delimiter: ",",
		Benzecri:  mca.DefaultBenzecri,
		Tol:       mca.DefaultTolerance,
		Percent:   mca.DefaultPercent,
		Greenacre: true,
		Format:    FormatJSON,
		Addr:      ":8080",
	}
}

// Load reads path over Default. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var problems []string
	if c.NCols < 0 {
		problems = append(problems, fmt.Sprintf("ncols %d must be ≥ 0", c.NCols))
	}
	if c.N < 0 {
		problems = append(problems, fmt.Sprintf("n %d must be ≥ 0", c.N))
	}
	if math.IsNaN(c.Tol) || c.Tol < 0 {
		problems = append(problems, fmt.Sprintf("tol %v must be ≥ 0", c.Tol))
	}
	if math.IsNaN(c.Percent) || c.Percent < 0 || c.Percent > 1 {
		problems = append(problems, fmt.Sprintf("percent %v outside [0,1]", c.Percent))
	}
	if c.SkipRows < 0 {
		problems = append(problems, fmt.Sprintf("skip_rows %d must be ≥ 0", c.SkipRows))
	}
	if len([]rune(c.Delimiter)) != 1 {
		problems = append(problems, fmt.Sprintf("delimiter %q must be a single character", c.Delimiter))
	}
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		problems = append(problems, fmt.Sprintf("format %q must be %s or %s", c.Format, FormatJSON, FormatYAML))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Options translates the engine settings into mca options.
func (c Config) Options() []mca.Option {
	opts := []mca.Option{
		mca.WithBenzecri(c.Benzecri),
		mca.WithTolerance(c.Tol),
	}
	if c.NCols > 0 {
		opts = append(opts, mca.WithNCols(c.NCols))
	}
	if c.Sparse {
		opts = append(opts, mca.WithSparse())
	}
	return opts
}

// Comma returns the delimiter as a rune.
func (c Config) Comma() rune {
	r := []rune(c.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
