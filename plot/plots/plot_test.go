// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princessdata/princess/plot"
	"github.com/princessdata/princess/stats"
)

func TestBarChart(t *testing.T) {
	bc, err := NewBarChart(plot.Values{90, 70, 85})
	require.NoError(t, err)
	xmin, xmax, ymin, ymax := bc.DataRange(nil)
	assert.Equal(t, -0.6, xmin)
	assert.InDelta(t, 2.6, xmax, 1e-12)
	assert.Equal(t, 0.0, ymin)
	assert.Equal(t, 90.0, ymax)

	bc.Horizontal = true
	xmin, xmax, ymin, ymax = bc.DataRange(nil)
	assert.Equal(t, 0.0, xmin)
	assert.Equal(t, 90.0, xmax)
	assert.Equal(t, -0.6, ymin)
	assert.InDelta(t, 2.6, ymax, 1e-12)

	_, err = NewBarChart(plot.Values{1, math.Inf(1)})
	assert.ErrorIs(t, err, plot.ErrInfinity)
	_, err = NewBarChart(nil)
	assert.ErrorIs(t, err, plot.ErrNoData)
}

func TestBarChartHorizontalPlot(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Top Princesses"
	plt.X.Label.Text = "Popularity"
	plt.Y.Label.Text = "Princess"
	bc, err := NewBarChart(plot.Values{95, 90, 80})
	require.NoError(t, err)
	bc.Horizontal = true
	plt.Add(bc)
	plt.Y.Ticker = plot.CategoryTicks("Aria", "Bea", "Cora")
	plt.Y.Invert = true

	var b bytes.Buffer
	require.NoError(t, plt.Render(&b, "svg"))
	svg := b.String()
	for _, s := range []string{"Top Princesses", "Popularity", "Princess", "Aria", "Bea", "Cora"} {
		assert.Contains(t, svg, ">"+s+"<")
	}

	// the first bar is on top with an inverted axis
	assert.Less(t, plt.PY(0), plt.PY(2))
	assert.Equal(t, 0.0, plt.X.Min, "bars start at zero")
}

func TestHistogram(t *testing.T) {
	h := NewHistogram(plot.Values{1, 2, 2, 3, math.NaN(), 4}, 3)
	require.Len(t, h.Bins, 3)
	assert.Equal(t, 5, h.Total())
	xmin, xmax, ymin, ymax := h.DataRange(nil)
	assert.Equal(t, 1.0, xmin)
	assert.Equal(t, 4.0, xmax)
	assert.Equal(t, 0.0, ymin)
	assert.Equal(t, 2.0, ymax)

	empty := NewHistogram(plot.Values{math.NaN()}, 20)
	assert.Empty(t, empty.Bins)
	plt := plot.New()
	plt.Add(empty)
	var b bytes.Buffer
	require.NoError(t, plt.Render(&b, "png"), "an empty histogram draws an empty frame")
	cfg, err := png.DecodeConfig(&b)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestBoxPlot(t *testing.T) {
	bp := NewBoxPlot(1, plot.Values{1, 2, 3, 4, 5, 6, 7, 8, 100})
	assert.Equal(t, 9, bp.Box.N)
	assert.Equal(t, []float64{100}, bp.Box.Outliers)
	xmin, xmax, ymin, ymax := bp.DataRange(nil)
	assert.Equal(t, 0.75, xmin)
	assert.Equal(t, 1.25, xmax)
	assert.Equal(t, 1.0, ymin)
	assert.Equal(t, 100.0, ymax)

	none := NewBoxPlot(2, plot.Values{})
	_, _, ymin, ymax = none.DataRange(nil)
	assert.True(t, math.IsInf(ymin, 1))
	assert.True(t, math.IsInf(ymax, -1))

	plt := plot.New()
	plt.Add(bp, none)
	assert.Equal(t, 1.0, plt.Y.Min)
	assert.Equal(t, 100.0, plt.Y.Max)
	plt.X.Ticker = plot.CategoryTicksAt(1, 1, "Blue", "Brown")
	plt.X.TickText.Style.Rotation = -45

	var b bytes.Buffer
	require.NoError(t, plt.Render(&b, "svg"))
	svg := b.String()
	assert.Contains(t, svg, "<circle", "outlier is drawn")
	assert.Contains(t, svg, "rotate(-45.00")
	assert.Contains(t, svg, ">Brown<")
}

func TestSavePNG(t *testing.T) {
	plt := plot.New()
	plt.Resize(image.Point{400, 300})
	plt.Add(NewHistogramBins(stats.Histogram([]float64{1, 2, 3, 3, 4}, 4)))
	fn := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, plt.Save(fn))

	err := plt.Save(strings.TrimSuffix(fn, ".png") + ".gif")
	assert.ErrorContains(t, err, "unsupported image format")
}
