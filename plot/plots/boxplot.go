// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"github.com/princessdata/princess/plot"
	"github.com/princessdata/princess/stats"
)

// BoxPlot implements the Plotter interface, drawing
// a vertical boxplot of a set of values at one X location.
// The box spans the first to third quartile with a line at
// the median, whiskers extend to the furthest values within
// [stats.WhiskerIQR] interquartile ranges, and values beyond
// are drawn as outlier circles.
type BoxPlot struct {
	// Box is the summary of the values.
	Box stats.Box

	// Location is the X location of the box.
	Location float64

	// Style has the box outline and fill in Line, the outlier
	// circles in Point, and the box width in data units in Width.Width.
	Style plot.Style

	// Median is the style of the median line.
	Median plot.LineStyle

	// Whisker is the style of the whiskers and their caps.
	Whisker plot.LineStyle
}

// NewBoxPlot returns a new BoxPlot of the non-NaN values at the
// given location. A box with no values draws nothing.
func NewBoxPlot(location float64, vs plot.Valuer) *BoxPlot {
	vals := make([]float64, vs.Len())
	for i := range vals {
		vals[i] = vs.Float1D(i)
	}
	bp := &BoxPlot{Box: stats.BoxOf(vals), Location: location}
	bp.Defaults()
	return bp
}

func (bp *BoxPlot) Defaults() {
	bp.Style.Defaults()
	bp.Style.Width.Width = 0.5
	bp.Style.Line.Fill = plot.MustParseColor("steelblue")
	bp.Style.Point.Size = 4
	bp.Median.Defaults()
	bp.Median.Width = 2
	bp.Whisker.Defaults()
}

// Plot draws the BoxPlot on the plot.
func (bp *BoxPlot) Plot(plt *plot.Plot) {
	if bp.Box.N == 0 {
		return
	}
	bx := &bp.Box
	hw := 0.5 * bp.Style.Width.Width
	x := plt.PX(bp.Location)
	x0 := plt.PX(bp.Location - hw)
	x1 := plt.PX(bp.Location + hw)
	cap0 := plt.PX(bp.Location - hw/2)
	cap1 := plt.PX(bp.Location + hw/2)

	bp.Whisker.Draw(plt, x, plt.PY(bx.Q1), x, plt.PY(bx.Low))
	bp.Whisker.Draw(plt, x, plt.PY(bx.Q3), x, plt.PY(bx.High))
	bp.Whisker.Draw(plt, cap0, plt.PY(bx.Low), cap1, plt.PY(bx.Low))
	bp.Whisker.Draw(plt, cap0, plt.PY(bx.High), cap1, plt.PY(bx.High))

	bp.Style.Line.DrawRect(plt, x0, plt.PY(bx.Q1), x1, plt.PY(bx.Q3))
	bp.Median.Draw(plt, x0, plt.PY(bx.Median), x1, plt.PY(bx.Median))

	for _, v := range bx.Outliers {
		bp.Style.Point.Draw(plt, x, plt.PY(v))
	}
}

// DataRange returns the minimum and maximum x
// and y values, implementing the plot.DataRanger
// interface.
func (bp *BoxPlot) DataRange(plt *plot.Plot) (xmin, xmax, ymin, ymax float64) {
	hw := 0.5 * bp.Style.Width.Width
	xmin = bp.Location - hw
	xmax = bp.Location + hw
	if bp.Box.N == 0 {
		return xmin, xmax, math.Inf(1), math.Inf(-1)
	}
	ymin, ymax = bp.Box.Range()
	return
}
