// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/princessdata/princess/base/errors"
)

// Draw draws the plot into the given renderer, which should
// have been created with the plot Size.
// Plotters are drawn in the order in which they were
// added to the plot, and then the axes are drawn on top.
func (pt *Plot) Draw(pc chart.Renderer) error {
	if pt.Font == nil {
		fnt, err := chart.GetDefaultFont()
		if err != nil {
			return fmt.Errorf("plot: loading font: %w", err)
		}
		pt.Font = fnt
	}
	pt.Paint = pc
	defer func() { pt.Paint = nil }()
	pc.SetDPI(pt.DPI)

	ptw := float64(pt.Size.X)
	pth := float64(pt.Size.Y)
	pad := pt.Padding

	bg := LineStyle{Fill: pt.Background}
	bg.DrawRect(pt, 0, 0, ptw, pth)

	top := pad
	if pt.Title.Text != "" {
		_, th := pt.Title.Extent(pt)
		pt.Title.Draw(pt, ptw/2, top+th/2)
		top += th + pad
	}

	pt.X.SanitizeRange()
	pt.Y.SanitizeRange()
	pt.X.ApplyMargin()
	pt.Y.ApplyMargin()
	pt.X.ticks = nil
	pt.Y.ticks = nil

	ywidth := pt.Y.size(pt)
	xheight := pt.X.size(pt)
	right := pad + pt.X.overhang(pt)

	x0, y0 := pix(pad+ywidth), pix(top)
	x1, y1 := pix(ptw-right), pix(pth-pad-xheight)
	if x1 <= x0 || y1 <= y0 {
		return errors.New("plot: image size too small for the axes")
	}
	pt.PlotBox = image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}

	for _, plt := range pt.Plotters {
		plt.Plot(pt)
	}

	pt.X.drawX(pt)
	pt.Y.drawY(pt)

	frame := pt.X.Line
	frame.Fill = drawing.ColorTransparent
	b := pt.PlotBox
	frame.DrawRect(pt, float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y))
	return nil
}

// tickExtent returns the largest width and height of the tick labels.
func (ax *Axis) tickExtent(pt *Plot) (w, h float64) {
	for _, tk := range ax.Ticks() {
		if tk.IsMinor() {
			continue
		}
		ax.TickText.Text = tk.Label
		tw, th := ax.TickText.Extent(pt)
		w = max(w, tw)
		h = max(h, th)
	}
	ax.TickText.Text = ""
	return
}

// size returns the Height of X axis or Width of Y axis
// below or left of the plot box.
func (ax *Axis) size(pt *Plot) float64 {
	pad := pt.Padding / 2
	lw, lh := ax.Label.Extent(pt)
	tw, th := ax.tickExtent(pt)
	if ax.Vertical {
		return lw + pad + tw + pad + ax.TickLength
	}
	return lh + pad + th + pad + ax.TickLength
}

// overhang returns how far the tick labels of a horizontal axis
// can extend past the right end of the plot box.
func (ax *Axis) overhang(pt *Plot) float64 {
	tw, _ := ax.tickExtent(pt)
	return tw / 2
}

// drawX draws the horizontal axis below the plot box.
func (ax *Axis) drawX(pt *Plot) {
	b := pt.PlotBox
	pad := pt.Padding / 2
	y := float64(b.Max.Y)
	for _, tk := range ax.Ticks() {
		x := pt.PX(tk.Value)
		ax.Line.Draw(pt, x, y, x, y+ax.TickLength)
		if tk.IsMinor() {
			continue
		}
		ax.TickText.Text = tk.Label
		_, th := ax.TickText.Extent(pt)
		ax.TickText.Draw(pt, x, y+ax.TickLength+pad+th/2)
	}
	ax.TickText.Text = ""
	if ax.Label.Text != "" {
		_, lh := ax.Label.Extent(pt)
		ax.Label.Draw(pt, float64(b.Min.X+b.Max.X)/2, float64(pt.Size.Y)-pt.Padding-lh/2)
	}
}

// drawY draws the vertical axis left of the plot box.
func (ax *Axis) drawY(pt *Plot) {
	b := pt.PlotBox
	pad := pt.Padding / 2
	x := float64(b.Min.X)
	for _, tk := range ax.Ticks() {
		y := pt.PY(tk.Value)
		ax.Line.Draw(pt, x-ax.TickLength, y, x, y)
		if tk.IsMinor() {
			continue
		}
		ax.TickText.Text = tk.Label
		tw, _ := ax.TickText.Extent(pt)
		ax.TickText.Draw(pt, x-ax.TickLength-pad-tw/2, y)
	}
	ax.TickText.Text = ""
	if ax.Label.Text != "" {
		lw, _ := ax.Label.Extent(pt)
		ax.Label.Draw(pt, pt.Padding+lw/2, float64(b.Min.Y+b.Max.Y)/2)
	}
}
