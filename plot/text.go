// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// TextStyle specifies styling parameters for Text elements
type TextStyle struct {
	// Size is the font size in points.
	Size float64

	// Color of the text.
	Color drawing.Color

	// Rotation of the text in degrees, clockwise.
	// Negative values rotate counter-clockwise.
	Rotation float64
}

func (ts *TextStyle) Defaults() {
	ts.Size = 12
	ts.Color = drawing.ColorBlack
	ts.Rotation = 0
}

// Text specifies a single text element in a plot
type Text struct {

	// text string
	Text string

	// styling for this text element
	Style TextStyle
}

func (tx *Text) Defaults() {
	tx.Style.Defaults()
}

// setFont sets the font style on the plot renderer, clearing any
// other style.
func (tx *Text) setFont(pt *Plot) {
	pc := pt.Paint
	pc.ResetStyle()
	pc.SetFont(pt.Font)
	pc.SetFontSize(tx.Style.Size)
	pc.SetFontColor(tx.Style.Color)
}

// textSize returns the unrotated width and height of the text in pixels.
func (tx *Text) textSize(pt *Plot) (w, h float64) {
	if tx.Text == "" {
		return 0, 0
	}
	tx.setFont(pt)
	b := pt.Paint.MeasureText(tx.Text)
	return float64(b.Width()), float64(b.Height())
}

// Extent returns the width and height in pixels of the box
// bounding the rotated text.
func (tx *Text) Extent(pt *Plot) (w, h float64) {
	tw, th := tx.textSize(pt)
	if tx.Style.Rotation == 0 {
		return tw, th
	}
	sin, cos := math.Sincos(tx.Style.Rotation * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	return tw*cos + th*sin, tw*sin + th*cos
}

// Draw renders the text so that the center of its rotated
// bounding box is at the given pixel position.
func (tx *Text) Draw(pt *Plot, cx, cy float64) {
	if tx.Text == "" {
		return
	}
	pc := pt.Paint
	w, h := tx.textSize(pt)
	// Text is drawn from the left end of its baseline, about which it
	// rotates, so offset the origin by the rotated half extent.
	theta := tx.Style.Rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)
	ox := cx - (w/2*cos + h/2*sin)
	oy := cy - (w/2*sin - h/2*cos)
	if theta != 0 {
		pc.SetTextRotation(theta)
	}
	pc.Text(tx.Text, pix(ox), pix(oy))
	pc.ClearTextRotation()
}

// pix rounds a pixel coordinate.
func pix(v float64) int {
	return int(math.Round(v))
}
