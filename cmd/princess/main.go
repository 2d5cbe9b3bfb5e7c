// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command princess loads the princess popularity dataset, prints the
// average popularity by hair color and writes the charts to the graphs
// directory. Settings are read from princess.toml or princess.yaml in
// the working directory if present.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/princessdata/princess/analysis"
	"github.com/princessdata/princess/base/errors"
	"github.com/princessdata/princess/config"
	"github.com/princessdata/princess/logx"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.New()
	if fn := config.Find("."); fn != "" {
		if err := config.Open(cfg, fn); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	logx.UserLevel = logx.Verbosity{VeryVerbose: cfg.VeryVerbose, Verbose: cfg.Verbose, Quiet: cfg.Quiet}.Level()
	logx.SetDefaultLogger()

	if err := errors.Join(cfg.ExpandPaths(), cfg.Validate()); err != nil {
		slog.Error("invalid configuration", "err", err)
		return 1
	}
	an := errors.Log1(analysis.NewFromConfig(cfg))
	if an == nil {
		return 1
	}
	an.GroupByHairColor()
	if cfg.Describe {
		an.Describe()
	}
	if err := an.GenerateAllPlots(); err != nil {
		return 1
	}
	return 0
}
