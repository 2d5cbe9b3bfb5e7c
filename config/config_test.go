// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creasty/defaults"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "disney_princess_popularity_dataset_300_rows.csv", cfg.Input)
	assert.Equal(t, "graphs", cfg.OutputDir)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, "detect", cfg.Delimiter)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 96.0, cfg.DPI)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 20, cfg.Bins)
	assert.Equal(t, "skyblue", cfg.BarColor)
	assert.False(t, cfg.Describe)
	assert.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	assert.Error(t, defaults.Set(Config{}), "a pointer is required")

	cfg := &Config{Format: "svg", Bins: 7}
	require.NoError(t, defaults.Set(cfg))
	assert.Equal(t, "svg", cfg.Format, "set fields are kept")
	assert.Equal(t, 7, cfg.Bins)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 96.0, cfg.DPI)
	assert.False(t, cfg.Describe)
}

func TestOpenTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "princess.toml")
	require.NoError(t, os.WriteFile(fn, []byte("output_dir = \"out\"\nformat = \"svg\"\nbins = 10\n"), 0o644))

	cfg := New()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, 10, cfg.Bins)
	assert.Equal(t, 5, cfg.TopN, "unset keys keep their defaults")
}

func TestOpenYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "princess.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("top_n: 3\nbar_color: \"#336699\"\nverbose: true\n"), 0o644))

	cfg := New()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "#336699", cfg.BarColor)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestReadYAMLEmpty(t *testing.T) {
	cfg := New()
	assert.NoError(t, ReadYAML(cfg, strings.NewReader("")))
	assert.Equal(t, New(), cfg)
}

func TestOpenUnknownKey(t *testing.T) {
	cfg := New()
	assert.Error(t, ReadTOML(cfg, strings.NewReader("colour = \"red\"\n")))
	assert.Error(t, ReadYAML(cfg, strings.NewReader("colour: red\n")))

	fn := filepath.Join(t.TempDir(), "princess.json")
	require.NoError(t, os.WriteFile(fn, []byte("{}"), 0o644))
	assert.Error(t, Open(cfg, fn))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", Find(dir))

	yml := filepath.Join(dir, "princess.yml")
	require.NoError(t, os.WriteFile(yml, nil, 0o644))
	assert.Equal(t, yml, Find(dir))

	tml := filepath.Join(dir, "princess.toml")
	require.NoError(t, os.WriteFile(tml, nil, 0o644))
	assert.Equal(t, tml, Find(dir))
}

func TestExpandPaths(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	cfg := New()
	cfg.OutputDir = "~/graphs"
	require.NoError(t, cfg.ExpandPaths())
	assert.Equal(t, filepath.Join(home, "graphs"), cfg.OutputDir)
	assert.Equal(t, "disney_princess_popularity_dataset_300_rows.csv", cfg.Input)
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Format = "gif"
	cfg.Delimiter = "pipe"
	cfg.Bins = 0
	cfg.BoxColor = "not-a-color"
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "gif")
	assert.Contains(t, msg, "pipe")
	assert.Contains(t, msg, "bins")
	assert.Contains(t, msg, "not-a-color")
}
