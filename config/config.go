// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the princess analysis tool.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/princessdata/princess/base/errors"
	"github.com/princessdata/princess/plot"
)

// Files are the names of the configuration files looked for by [Find],
// in order of preference.
var Files = []string{"princess.toml", "princess.yaml", "princess.yml"}

// Config is the main config struct that contains all of the
// configuration options for loading the dataset and rendering charts.
// Zero-valued fields are given the value of their default tag by [New].
type Config struct {

	// Input is the delimited text file with one row per character.
	Input string `toml:"input" yaml:"input" default:"disney_princess_popularity_dataset_300_rows.csv"`

	// Delimiter is the field separator of Input:
	// detect, comma, tab or semicolon.
	Delimiter string `toml:"delimiter" yaml:"delimiter" default:"detect"`

	// OutputDir is the directory that charts are written to.
	// It is created if it does not exist.
	OutputDir string `toml:"output_dir" yaml:"output_dir" default:"graphs"`

	// Format is the image format of the charts: png or svg.
	Format string `toml:"format" yaml:"format" default:"png"`

	// Width is the chart width in pixels.
	Width int `toml:"width" yaml:"width" default:"1000"`

	// Height is the chart height in pixels.
	Height int `toml:"height" yaml:"height" default:"600"`

	// DPI converts font sizes in points to pixels.
	DPI float64 `toml:"dpi" yaml:"dpi" default:"96"`

	// TopN is the number of most popular characters in the bar chart.
	TopN int `toml:"top_n" yaml:"top_n" default:"5"`

	// Bins is the number of histogram bins.
	Bins int `toml:"bins" yaml:"bins" default:"20"`

	// BarColor is the fill color of the popularity bars,
	// as a color name or #rrggbb.
	BarColor string `toml:"bar_color" yaml:"bar_color" default:"skyblue"`

	// HistColor is the fill color of the histogram bars.
	HistColor string `toml:"hist_color" yaml:"hist_color" default:"lightcoral"`

	// EdgeColor is the outline color of bars and boxes.
	EdgeColor string `toml:"edge_color" yaml:"edge_color" default:"black"`

	// BoxColor is the fill color of the box plot boxes.
	BoxColor string `toml:"box_color" yaml:"box_color" default:"steelblue"`

	// Describe prints descriptive statistics of the numeric columns.
	Describe bool `toml:"describe" yaml:"describe"`

	// VeryVerbose shows debug messages, including every coerced value.
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// Verbose shows informational messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Quiet only shows errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// New returns a new [Config] with all default values set.
func New() *Config {
	cfg := &Config{}
	errors.Log(defaults.Set(cfg))
	return cfg
}

// Find returns the path of the first of [Files] that exists in dir,
// or "" if there are none.
func Find(dir string) string {
	for _, f := range Files {
		fn := filepath.Join(dir, f)
		if _, err := os.Stat(fn); err == nil {
			return fn
		}
	}
	return ""
}

// Open reads the given TOML or YAML file (chosen by extension) into cfg,
// overwriting only the settings present in the file. Unknown keys are
// an error.
func Open(cfg *Config, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = ReadTOML(cfg, f)
	case ".yaml", ".yml":
		err = ReadYAML(cfg, f)
	default:
		err = fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", filename, err)
	}
	return nil
}

// ReadTOML reads TOML settings from r into cfg.
func ReadTOML(cfg *Config, r io.Reader) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
}

// ReadYAML reads YAML settings from r into cfg.
// An empty document leaves cfg unchanged.
func ReadYAML(cfg *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ExpandPaths expands a leading ~ in the Input and OutputDir paths
// to the home directory of the user.
func (cfg *Config) ExpandPaths() error {
	in, err := homedir.Expand(cfg.Input)
	if err != nil {
		return err
	}
	out, err := homedir.Expand(cfg.OutputDir)
	if err != nil {
		return err
	}
	cfg.Input, cfg.OutputDir = in, out
	return nil
}

// Validate returns an error describing every invalid setting, or nil.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Input == "" {
		errs = append(errs, errors.New("input must be set"))
	}
	switch cfg.Delimiter {
	case "detect", "comma", "tab", "semicolon":
	default:
		errs = append(errs, fmt.Errorf("delimiter %q must be one of detect, comma, tab, semicolon", cfg.Delimiter))
	}
	switch cfg.Format {
	case "png", "svg":
	default:
		errs = append(errs, fmt.Errorf("format %q must be png or svg", cfg.Format))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size %dx%d must be positive", cfg.Width, cfg.Height))
	}
	if cfg.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi %g must be positive", cfg.DPI))
	}
	if cfg.TopN <= 0 {
		errs = append(errs, fmt.Errorf("top_n %d must be positive", cfg.TopN))
	}
	if cfg.Bins <= 0 {
		errs = append(errs, fmt.Errorf("bins %d must be positive", cfg.Bins))
	}
	for _, c := range []string{cfg.BarColor, cfg.HistColor, cfg.EdgeColor, cfg.BoxColor} {
		if _, err := plot.ParseColor(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
