// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/princessdata/princess/base/errors"
	"github.com/princessdata/princess/dataset"
	"github.com/princessdata/princess/plot"
	"github.com/princessdata/princess/plot/plots"
)

// Chart names, which are also the output file names
// without extension.
const (
	Top5Chart      = "top5_popularity"
	TikTokChart    = "tiktok_views_distribution"
	BoxOfficeChart = "boxoffice_by_eye_color"
)

// ChartPath returns the output file of the named chart.
func (an *Analyzer) ChartPath(chart string) string {
	return filepath.Join(an.Config.OutputDir, chart+"."+an.Config.Format)
}

// PlotTop5Popular renders a horizontal bar chart of the most popular
// characters (Config.TopN, 5 by default), the most popular on top.
// Fewer rows than that are all drawn.
func (an *Analyzer) PlotTop5Popular() error {
	return an.render(Top5Chart, an.top5Plot)
}

// PlotTikTokViewsDistribution renders a histogram of the TikTok
// hashtag views, skipping missing values. With no values an empty
// chart is written.
func (an *Analyzer) PlotTikTokViewsDistribution() error {
	return an.render(TikTokChart, an.tiktokPlot)
}

// PlotBoxOfficeByEyeColor renders a box plot of the box office
// revenue for each eye color, in alphabetical order.
func (an *Analyzer) PlotBoxOfficeByEyeColor() error {
	return an.render(BoxOfficeChart, an.boxOfficePlot)
}

// GenerateAllPlots renders all charts in turn. A failed chart is logged
// and does not stop the others; the errors of all failed charts are
// returned joined.
func (an *Analyzer) GenerateAllPlots() error {
	var errs []error
	for _, fun := range []func() error{an.PlotTop5Popular, an.PlotTikTokViewsDistribution, an.PlotBoxOfficeByEyeColor} {
		if err := fun(); err != nil {
			errs = append(errs, errors.Log(err))
		}
	}
	return errors.Join(errs...)
}

// render builds the named chart with a new plot and saves it,
// returning any failure, including a panic, as a [*RenderError].
func (an *Analyzer) render(chart string, build func(pt *plot.Plot) error) (err error) {
	fn := an.ChartPath(chart)
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Chart: chart, Path: fn, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := os.MkdirAll(an.Config.OutputDir, 0o755); err != nil {
		return &RenderError{Chart: chart, Path: fn, Err: err}
	}
	pt := an.newPlot()
	if err := build(pt); err != nil {
		return &RenderError{Chart: chart, Path: fn, Err: err}
	}
	if err := pt.Save(fn); err != nil {
		return &RenderError{Chart: chart, Path: fn, Err: err}
	}
	slog.Info("wrote chart", "chart", chart, "path", fn)
	return nil
}

func (an *Analyzer) newPlot() *plot.Plot {
	pt := plot.New()
	pt.Resize(image.Point{an.Config.Width, an.Config.Height})
	pt.DPI = an.Config.DPI
	return pt
}

// colors returns the parsed fill and edge colors.
func (an *Analyzer) colors(fill string) (fc, ec plot.LineStyle, err error) {
	f, err := plot.ParseColor(fill)
	if err != nil {
		return
	}
	e, err := plot.ParseColor(an.Config.EdgeColor)
	if err != nil {
		return
	}
	fc.Defaults()
	fc.Fill = f
	fc.Color = e
	ec.Defaults()
	ec.Color = e
	return
}

func (an *Analyzer) top5Plot(pt *plot.Plot) error {
	rows := an.TopPopular(an.Config.TopN)
	vals := make(plot.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		vals[i] = r.Popularity
		names[i] = r.Name
	}
	bc, err := plots.NewBarChart(vals)
	if err != nil {
		return err
	}
	ls, _, err := an.colors(an.Config.BarColor)
	if err != nil {
		return err
	}
	bc.Horizontal = true
	bc.Style.Line = ls
	bc.Style.Line.Width = 0
	pt.Add(bc)

	pt.Title.Text = "Top 5 Princesses by Popularity"
	pt.X.Label.Text = "Popularity"
	pt.Y.Label.Text = "Princess"
	pt.Y.Ticker = plot.CategoryTicks(names...)
	pt.Y.Margin = 0
	pt.Y.Invert = true
	return nil
}

func (an *Analyzer) tiktokPlot(pt *plot.Plot) error {
	vals := an.Table.View().Floats(func(r dataset.Row) dataset.Float { return r.TikTokViews })
	h := plots.NewHistogram(plot.Values(vals), an.Config.Bins)
	if h.Total() == 0 {
		slog.Warn("no TikTok views to plot, writing an empty chart", "chart", TikTokChart)
	}
	ls, _, err := an.colors(an.Config.HistColor)
	if err != nil {
		return err
	}
	h.Style.Line = ls
	pt.Add(h)

	pt.Title.Text = "Distribution of TikTok Hashtag Views (in millions)"
	pt.X.Label.Text = "Millions of views"
	pt.Y.Label.Text = "Number of princesses"
	return nil
}

// EyeColors returns the distinct non-empty eye colors, sorted.
func (an *Analyzer) EyeColors() []string {
	var ecs []string
	for _, r := range an.Table.Rows() {
		if r.EyeColor != "" && !slices.Contains(ecs, r.EyeColor) {
			ecs = append(ecs, r.EyeColor)
		}
	}
	slices.Sort(ecs)
	return ecs
}

func (an *Analyzer) boxOfficePlot(pt *plot.Plot) error {
	ls, edge, err := an.colors(an.Config.BoxColor)
	if err != nil {
		return err
	}
	ecs := an.EyeColors()
	all := an.Table.View()
	for i, ec := range ecs {
		vals := all.Clone().Filter(func(r dataset.Row) bool {
			return r.EyeColor == ec
		}).Floats(func(r dataset.Row) dataset.Float { return r.BoxOffice })
		bp := plots.NewBoxPlot(float64(i+1), plot.Values(vals))
		bp.Style.Line = ls
		bp.Whisker = edge
		bp.Median.Color = edge.Color
		bp.Style.Point.Color = edge.Color
		pt.Add(bp)
	}

	pt.Title.Text = "Box Office Revenue by Eye Color"
	pt.X.Label.Text = "Eye Color"
	pt.Y.Label.Text = "Revenue (in millions)"
	pt.X.Ticker = plot.CategoryTicksAt(1, 1, ecs...)
	pt.X.TickText.Style.Rotation = -45
	pt.X.Min = 0.5
	pt.X.Max = float64(len(ecs)) + 0.5
	pt.X.Margin = 0
	return nil
}
