// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style contains the plot styling properties relevant across
// most plot types. These properties apply to individual plot elements
// while the Plot properties applies to the overall plot itself.
type Style struct {
	// Line has style properties for drawing lines and outlines.
	Line LineStyle

	// Point has style properties for drawing points.
	Point PointStyle

	// Width has various plot width properties.
	Width WidthStyle
}

// NewStyle returns a new Style object with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Line.Defaults()
	st.Point.Defaults()
	st.Width.Defaults()
}

// LineStyle has style properties for line drawing
type LineStyle struct {
	// Color is the stroke color. Nothing is stroked if it is transparent.
	Color drawing.Color

	// Width is the line width in pixels.
	Width float64

	// Dashes are the dashes of the stroke. Each pair of values specifies
	// the amount to paint and then the amount to skip.
	Dashes []float64

	// Fill is the color to fill shapes bounded by the line.
	// Nothing is filled if it is transparent.
	Fill drawing.Color
}

func (ls *LineStyle) Defaults() {
	ls.Color = drawing.ColorBlack
	ls.Width = 1
	ls.Fill = drawing.ColorTransparent
}

// SetStroke sets the stroke and fill style on the plot renderer,
// clearing any text style. It returns false if the line is not drawn.
func (ls *LineStyle) SetStroke(pt *Plot) bool {
	pc := pt.Paint
	pc.ResetStyle()
	if ls.Color.IsTransparent() || ls.Width <= 0 {
		pc.SetStrokeWidth(0)
		pc.SetFillColor(ls.Fill)
		return false
	}
	pc.SetStrokeColor(ls.Color)
	pc.SetStrokeWidth(ls.Width)
	if len(ls.Dashes) > 0 {
		pc.SetStrokeDashArray(ls.Dashes)
	}
	pc.SetFillColor(ls.Fill)
	return true
}

// Draw draws a line between given coordinates using the stroke style.
func (ls *LineStyle) Draw(pt *Plot, x0, y0, x1, y1 float64) {
	if !ls.SetStroke(pt) {
		return
	}
	pc := pt.Paint
	pc.MoveTo(pix(x0), pix(y0))
	pc.LineTo(pix(x1), pix(y1))
	pc.Stroke()
}

// DrawRect fills and strokes the rectangle between given corners.
func (ls *LineStyle) DrawRect(pt *Plot, x0, y0, x1, y1 float64) {
	stroke := ls.SetStroke(pt)
	fill := !ls.Fill.IsTransparent()
	if !stroke && !fill {
		return
	}
	pc := pt.Paint
	pc.MoveTo(pix(x0), pix(y0))
	pc.LineTo(pix(x1), pix(y0))
	pc.LineTo(pix(x1), pix(y1))
	pc.LineTo(pix(x0), pix(y1))
	pc.Close()
	switch {
	case stroke && fill:
		pc.FillStroke()
	case fill:
		pc.Fill()
	default:
		pc.Stroke()
	}
}

// PointStyle has style properties for drawing points as circles.
type PointStyle struct {
	// On specifies whether to plot points.
	On bool

	// Color is the stroke color of the point outline.
	Color drawing.Color

	// Fill is the color to fill the point.
	Fill drawing.Color

	// Width is the line width of the outline in pixels.
	Width float64

	// Size is the radius of the point in pixels.
	Size float64
}

func (ps *PointStyle) Defaults() {
	ps.On = true
	ps.Color = drawing.ColorBlack
	ps.Fill = drawing.ColorTransparent
	ps.Width = 1
	ps.Size = 3
}

// Draw draws a point circle at the given pixel position.
func (ps *PointStyle) Draw(pt *Plot, x, y float64) {
	if !ps.On || ps.Size <= 0 {
		return
	}
	ls := LineStyle{Color: ps.Color, Width: ps.Width, Fill: ps.Fill}
	stroke := ls.SetStroke(pt)
	pc := pt.Paint
	pc.Circle(ps.Size, pix(x), pix(y))
	if stroke {
		pc.FillStroke()
	} else {
		pc.Fill()
	}
}

// WidthStyle contains various plot width properties relevant across
// different plot types.
type WidthStyle struct {
	// Offset for Bar plot is the offset added to each category axis value
	// relative to the Stride computed value (X = offset + index * Stride)
	// Defaults to 0.
	Offset float64

	// Stride for Bar plot is distance between bars. Defaults to 1.
	Stride float64

	// Width for Bar plot is the width of the bars, which should be less than
	// the Stride (1 typically) to prevent bar overlap. Defaults to .8.
	Width float64

	// Pad for Bar plot is additional space at start / end of data range,
	// to keep bars from overflowing ends. This amount is subtracted from Offset
	// and added to (len(Values)-1)*Stride. Defaults to .6.
	Pad float64
}

func (ws *WidthStyle) Defaults() {
	ws.Offset = 0
	ws.Stride = 1
	ws.Width = .8
	ws.Pad = .6
}
