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

// Histogram implements the Plotter interface,
// drawing a histogram of the data as adjacent bars.
type Histogram struct {
	// Bins are the bins of the histogram.
	Bins []stats.Bin

	// Style has the properties used to render the bars.
	Style plot.Style
}

// NewHistogram returns a new histogram that bins the non-NaN values
// into n equal-width bins. An empty histogram is returned for no values.
func NewHistogram(vs plot.Valuer, n int) *Histogram {
	vals := make([]float64, vs.Len())
	for i := range vals {
		vals[i] = vs.Float1D(i)
		if math.IsInf(vals[i], 0) {
			vals[i] = math.NaN()
		}
	}
	return NewHistogramBins(stats.Histogram(vals, n))
}

// NewHistogramBins returns a new histogram drawing the given bins.
func NewHistogramBins(bins []stats.Bin) *Histogram {
	h := &Histogram{Bins: bins}
	h.Defaults()
	return h
}

func (h *Histogram) Defaults() {
	h.Style.Defaults()
	h.Style.Line.Fill = plot.MustParseColor("lightcoral")
}

// Plot implements the Plotter interface, drawing a bar for each bin.
func (h *Histogram) Plot(plt *plot.Plot) {
	for _, b := range h.Bins {
		if b.Count == 0 {
			continue
		}
		h.Style.Line.DrawRect(plt, plt.PX(b.Min), plt.PY(0), plt.PX(b.Max), plt.PY(float64(b.Count)))
	}
}

// DataRange returns the minimum and maximum X and Y values.
func (h *Histogram) DataRange(plt *plot.Plot) (xmin, xmax, ymin, ymax float64) {
	if len(h.Bins) == 0 {
		return math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	}
	xmin = h.Bins[0].Min
	xmax = h.Bins[len(h.Bins)-1].Max
	for _, b := range h.Bins {
		ymax = math.Max(ymax, float64(b.Count))
	}
	return xmin, xmax, 0, ymax
}

// Total returns the total count of all bins.
func (h *Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}
