// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis provides the [Analyzer], which answers the
// descriptive questions about a princess popularity dataset and
// renders its charts.
package analysis

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/princessdata/princess/config"
	"github.com/princessdata/princess/dataset"
	"github.com/princessdata/princess/stats"
)

// Analyzer owns a cleaned, read-only [dataset.Table] and provides
// query operations on it and chart rendering operations, each of
// which writes one image file.
type Analyzer struct {

	// Table is the cleaned dataset. It is not modified after construction.
	Table *dataset.Table

	// Config has the input, output and chart settings.
	Config *config.Config

	// Out is where the printed tables are written.
	// It defaults to standard output.
	Out io.Writer
}

// New returns a new Analyzer for the dataset at the given path,
// using the default configuration. The error is a [*dataset.LoadError]
// or [*dataset.SchemaError] if the file cannot be used.
func New(path string) (*Analyzer, error) {
	cfg := config.New()
	cfg.Input = path
	return NewFromConfig(cfg)
}

// NewFromConfig returns a new Analyzer for the dataset at cfg.Input.
func NewFromConfig(cfg *config.Config) (*Analyzer, error) {
	delim, err := dataset.ParseDelims(cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	dt, err := dataset.Open(cfg.Input, delim)
	if err != nil {
		return nil, err
	}
	return NewFromTable(dt, cfg), nil
}

// NewFromTable returns a new Analyzer for an already loaded table.
// A nil cfg uses the default configuration.
func NewFromTable(dt *dataset.Table, cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.New()
	}
	return &Analyzer{Table: dt, Config: cfg, Out: os.Stdout}
}

// FilterIconic returns the rows whose IsIconic value is exactly "Yes",
// in source order.
func (an *Analyzer) FilterIconic() []dataset.Row {
	return an.Table.View().Filter(dataset.Row.IsIconic).Rows()
}

// TopPopular returns the n rows with the highest popularity, highest
// first. Rows with equal popularity keep their source order.
func (an *Analyzer) TopPopular(n int) []dataset.Row {
	return an.Table.View().SortStableFunc(func(a, b dataset.Row) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	}).Head(n).Rows()
}

// GroupByHairColor returns the mean popularity of each hair color,
// highest mean first, with ties in order of first appearance.
// Rows without a hair color are not grouped. The result is also
// printed as a table to [Analyzer.Out].
func (an *Analyzer) GroupByHairColor() []stats.Group {
	rows := an.Table.Rows()
	keys := make([]string, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		keys[i] = r.HairColor
		vals[i] = r.Popularity
	}
	gps := stats.GroupMeans(keys, vals)
	stats.SortDescending(gps)
	slog.Debug("grouped by hair color", "groups", len(gps), "rows", len(rows))
	an.printGroups(gps)
	return gps
}

func (an *Analyzer) printGroups(gps []stats.Group) {
	w := an.out()
	fmt.Fprintln(w, "Average popularity by hair color:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\t%s\n", dataset.HairColorColumn, dataset.PopularityColumn)
	for i, g := range gps {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\n", i, g.Name, g.Mean)
	}
	tw.Flush()
}

// numericColumns are the columns summarized by [Analyzer.Describe].
var numericColumns = []struct {
	name  string
	field func(r dataset.Row) dataset.Float
}{
	{dataset.PopularityColumn, func(r dataset.Row) dataset.Float { return dataset.Some(r.Popularity) }},
	{dataset.TikTokViewsColumn, func(r dataset.Row) dataset.Float { return r.TikTokViews }},
	{dataset.BoxOfficeColumn, func(r dataset.Row) dataset.Float { return r.BoxOffice }},
}

// Describe returns the [stats.DescriptiveStats] of the numeric columns
// over their present values, and prints them as a table with one
// row per statistic to [Analyzer.Out].
func (an *Analyzer) Describe() []stats.Description {
	v := an.Table.View()
	ds := make([]stats.Description, len(numericColumns))
	for i, nc := range numericColumns {
		ds[i] = stats.Describe(nc.name, v.Floats(nc.field))
	}

	tw := tabwriter.NewWriter(an.out(), 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, d := range ds {
		fmt.Fprintf(tw, "\t%s", d.Name)
	}
	fmt.Fprintln(tw, "\t")
	for si, st := range stats.DescriptiveStats {
		fmt.Fprintf(tw, "%s", st)
		for _, d := range ds {
			fmt.Fprintf(tw, "\t%.6f", d.Values[si])
		}
		fmt.Fprintln(tw, "\t")
	}
	tw.Flush()
	return ds
}

func (an *Analyzer) out() io.Writer {
	if an.Out == nil {
		return os.Stdout
	}
	return an.Out
}
