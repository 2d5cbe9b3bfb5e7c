// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is copied and modified directly from gonum to support
// horizontal bars drawn through a go-chart renderer.

// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots has the plotters used by the princess charts:
// bar charts, histograms and box plots.
package plots

import (
	"math"

	"github.com/princessdata/princess/plot"
)

// A BarChart presents ordinally-organized data with rectangular bars
// with lengths proportional to the data values.
//
// Bars are plotted centered at integer multiples of Stride plus Offset.
// Full data range also includes Pad value to extend range beyond edge bar centers.
// Bar Width is in data units, e.g., should be <= Stride.
// Defaults provide a unit-spaced plot starting at 0.
type BarChart struct {
	// Values are the plotted values
	Values plot.Values

	// Style has the properties used to render the bars.
	Style plot.Style

	// Horizontal dictates whether the bars should be in the vertical
	// (default) or horizontal direction. If Horizontal is true, all
	// X locations and distances referred to here will actually be Y
	// locations and distances.
	Horizontal bool
}

// NewBarChart returns a new bar chart with a single bar for each value.
// The bars heights correspond to the values and their x locations correspond
// to the index of their value in the Valuer.
func NewBarChart(vs plot.Valuer) (*BarChart, error) {
	values, err := plot.CopyValues(vs)
	if err != nil {
		return nil, err
	}
	bc := &BarChart{Values: values}
	bc.Defaults()
	return bc, nil
}

func (bc *BarChart) Defaults() {
	bc.Style.Defaults()
	bc.Style.Line.Color = plot.MustParseColor("black")
	bc.Style.Line.Width = 0
	bc.Style.Line.Fill = plot.MustParseColor("steelblue")
}

// Plot implements the plot.Plotter interface.
func (bc *BarChart) Plot(plt *plot.Plot) {
	bw := bc.Style.Width
	hw := 0.5 * bw.Width
	for i, ht := range bc.Values {
		cat := bw.Offset + float64(i)*bw.Stride
		if bc.Horizontal {
			bc.Style.Line.DrawRect(plt, plt.PX(0), plt.PY(cat-hw), plt.PX(ht), plt.PY(cat+hw))
		} else {
			bc.Style.Line.DrawRect(plt, plt.PX(cat-hw), plt.PY(0), plt.PX(cat+hw), plt.PY(ht))
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (bc *BarChart) DataRange(plt *plot.Plot) (xmin, xmax, ymin, ymax float64) {
	bw := bc.Style.Width
	catMin := bw.Offset - bw.Pad
	catMax := bw.Offset + float64(len(bc.Values)-1)*bw.Stride + bw.Pad

	valMin := 0.0
	valMax := 0.0
	for _, val := range bc.Values {
		valMin = math.Min(valMin, val)
		valMax = math.Max(valMax, val)
	}
	if !bc.Horizontal {
		return catMin, catMax, valMin, valMax
	}
	return valMin, valMax, catMin, catMax
}
