// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides a small plotting framework in the style of
// gonum/plot, drawing through the go-chart [chart.Renderer] interface
// so that the same plot can be saved as PNG or SVG.
package plot

import (
	"image"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Plot is the basic type representing a plot.
// It renders into a [chart.Renderer] that is only set during [Plot.Draw],
// so each Draw can use a fresh renderer.
type Plot struct {
	// Title of the plot.
	Title Text

	// Background is the background of the plot.
	// The default is white.
	Background drawing.Color

	// X and Y are the horizontal and vertical axes
	// of the plot respectively.
	X, Y Axis

	// Plotters are drawn by calling their Plot method
	// after the axes are drawn.
	Plotters []Plotter

	// Size is the size of the plot image in pixels.
	Size image.Point

	// DPI is the resolution used to convert font sizes in points
	// into pixels.
	DPI float64

	// Padding is the space in pixels between plot elements
	// and around the edge of the image.
	Padding float64

	// Paint is the renderer being drawn into. It is only valid
	// during [Plot.Draw].
	Paint chart.Renderer

	// PlotBox is the pixel region the data is drawn into,
	// computed during [Plot.Draw].
	PlotBox image.Rectangle

	// Font is the font used for all text. The go-chart default
	// font is used if nil.
	Font *truetype.Font
}

// Plotter is an interface that wraps the Plot method.
// Some standard implementations of Plotter can be found in plots.
type Plotter interface {
	// Plot draws the data to the Plot Paint, using
	// the Plot's PX and PY transforms.
	Plot(pt *Plot)
}

// DataRanger wraps the DataRange method.
type DataRanger interface {
	// DataRange returns the range of X and Y values.
	DataRange(pt *Plot) (xmin, xmax, ymin, ymax float64)
}

// New returns a new plot with some reasonable default settings.
func New() *Plot {
	pt := &Plot{}
	pt.Defaults()
	return pt
}

// Defaults sets defaults.
func (pt *Plot) Defaults() {
	pt.Title.Defaults()
	pt.Title.Style.Size = 14
	pt.Background = drawing.ColorWhite
	pt.X.Defaults(false)
	pt.Y.Defaults(true)
	pt.Size = image.Point{1000, 600}
	pt.DPI = 96
	pt.Padding = 10
}

// Add adds Plotters to the plot.
//
// If the plotters implements DataRanger then the
// minimum and maximum values of the X and Y
// axes are changed if necessary to fit the range of
// the data.
//
// When drawing the plot, Plotters are drawn in the
// order in which they were added to the plot.
func (pt *Plot) Add(ps ...Plotter) {
	for _, d := range ps {
		if x, ok := d.(DataRanger); ok {
			xmin, xmax, ymin, ymax := x.DataRange(pt)
			pt.X.Min = math.Min(pt.X.Min, xmin)
			pt.X.Max = math.Max(pt.X.Max, xmax)
			pt.Y.Min = math.Min(pt.Y.Min, ymin)
			pt.Y.Max = math.Max(pt.Y.Max, ymax)
		}
	}
	pt.Plotters = append(pt.Plotters, ps...)
}

// Resize sets the size of the output image.
func (pt *Plot) Resize(sz image.Point) {
	pt.Size = sz
}

// PX returns the X-axis plotting coordinate for given raw data value
// using the current plot bounding region.
func (pt *Plot) PX(v float64) float64 {
	return float64(pt.PlotBox.Min.X) + pt.X.Norm(v)*float64(pt.PlotBox.Dx())
}

// PY returns the Y-axis plotting coordinate for given raw data value.
// Pixel Y grows downward, so larger values are higher on the image.
func (pt *Plot) PY(v float64) float64 {
	return float64(pt.PlotBox.Max.Y) - pt.Y.Norm(v)*float64(pt.PlotBox.Dy())
}
