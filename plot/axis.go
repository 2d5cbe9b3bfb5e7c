// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"
)

// Axis represents either a horizontal or vertical
// axis of a plot.
type Axis struct {
	// Min and Max are the minimum and maximum data
	// values represented by the axis.
	Min, Max float64

	// Label for the axis.
	Label Text

	// Line styling properties for the axis line and tick marks.
	Line LineStyle

	// TickText has the text style for rendering tick labels,
	// and is shared for actual rendering.
	TickText Text

	// TickLength is the length of tick lines, in pixels.
	TickLength float64

	// Ticker generates the tick marks. Any tick marks
	// returned by the Marker function that are not in
	// range of the axis are not drawn.
	Ticker Ticker

	// Margin is the fraction of the data range added beyond
	// each end of the range before drawing. An end at exactly
	// zero stays at zero, so bars start at the axis.
	Margin float64

	// Invert reverses the axis direction, so that Min is at the
	// top of a vertical axis or the right of a horizontal one.
	Invert bool

	// Vertical is true for the Y axis.
	Vertical bool

	// ticks are the computed ticks for the current range.
	ticks []Tick
}

// Defaults sets the defaults for the axis.
func (ax *Axis) Defaults(vertical bool) {
	ax.Min = math.Inf(+1)
	ax.Max = math.Inf(-1)
	ax.Vertical = vertical
	ax.Line.Defaults()
	ax.Label.Defaults()
	ax.TickText.Defaults()
	ax.TickText.Style.Size = 10
	ax.TickLength = 5
	ax.Margin = 0.05
	ax.Ticker = DefaultTicks{}
	if vertical {
		ax.Label.Style.Rotation = -90
	}
}

// SanitizeRange ensures that the range of the axis makes sense:
// infinite bounds (no data) become 0..1 and an empty range is widened.
func (ax *Axis) SanitizeRange() {
	if math.IsInf(ax.Min, 0) || math.IsNaN(ax.Min) {
		ax.Min = 0
	}
	if math.IsInf(ax.Max, 0) || math.IsNaN(ax.Max) {
		ax.Max = 0
	}
	if ax.Min > ax.Max {
		ax.Min, ax.Max = ax.Max, ax.Min
	}
	if ax.Min == ax.Max {
		if ax.Min == 0 {
			ax.Max = 1
		} else {
			d := math.Abs(ax.Min) * 0.05
			ax.Min = clampFinite(ax.Min - d)
			ax.Max = clampFinite(ax.Max + d)
		}
	}
}

// ApplyMargin extends the range by Margin on each side,
// leaving an end at zero in place.
func (ax *Axis) ApplyMargin() {
	if ax.Margin <= 0 {
		return
	}
	d := ax.Max*ax.Margin - ax.Min*ax.Margin
	if ax.Min != 0 {
		ax.Min = clampFinite(ax.Min - d)
	}
	if ax.Max != 0 {
		ax.Max = clampFinite(ax.Max + d)
	}
}

// clampFinite limits v to the finite float64 range.
func clampFinite(v float64) float64 {
	return math.Max(-math.MaxFloat64, math.Min(v, math.MaxFloat64))
}

// Norm returns the value, x, normalized so that ax.Min corresponds to 0
// and ax.Max to 1, reversed when the axis is inverted.
// Values are halved first so that ranges spanning most of the
// float64 range do not overflow.
func (ax *Axis) Norm(x float64) float64 {
	n := (x/2 - ax.Min/2) / (ax.Max/2 - ax.Min/2)
	if ax.Invert {
		return 1 - n
	}
	return n
}

// Ticks returns the ticks within the axis range, computing them
// from the Ticker if not yet done for this draw.
func (ax *Axis) Ticks() []Tick {
	if ax.ticks == nil && ax.Ticker != nil {
		for _, tk := range ax.Ticker.Ticks(ax.Min, ax.Max) {
			if tk.Value < ax.Min || tk.Value > ax.Max {
				continue
			}
			ax.ticks = append(ax.ticks, tk)
		}
	}
	return ax.ticks
}

// A Tick is a single tick mark on an axis.
type Tick struct {
	// Value is the data value marked by this Tick.
	Value float64

	// Label is the text to display at the tick mark.
	// If Label is an empty string then this is a minor
	// tick mark.
	Label string
}

// IsMinor returns true if this is a minor tick mark.
func (tk *Tick) IsMinor() bool {
	return tk.Label == ""
}

// Ticker creates Ticks in a specified range
type Ticker interface {
	// Ticks returns Ticks in a specified range
	Ticks(lo, hi float64) []Tick
}

// DefaultTicks is suitable for the Ticker field of an Axis,
// it returns a reasonable default set of tick marks.
type DefaultTicks struct{}

var _ Ticker = DefaultTicks{}

// suggestedTicks is the number of labelled ticks asked of the
// labelling algorithm.
const suggestedTicks = 6

// Ticks returns Ticks in the specified range.
func (DefaultTicks) Ticks(lo, hi float64) []Tick {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	scale := tickScale(lo, hi)
	lb := labelsWithin(float32(lo/scale), float32(hi/scale), suggestedTicks)
	if len(lb.values) == 0 {
		return nil
	}
	delta := float64(lb.step) * math.Pow10(lb.mag)
	if lb.nice == 0 {
		// range too small to search: step is already the label spacing
		delta = float64(lb.step)
	}

	// Use the fewest decimals that represent the label step exactly,
	// switching to exponent form for extreme magnitudes.
	prec := 0
	for prec < 6 {
		d := delta * math.Pow10(prec)
		if math.Abs(d-math.Round(d)) < 1e-6*math.Max(1, math.Abs(d)) {
			break
		}
		prec++
	}
	extreme := lb.mag < -4 || 6 < lb.mag
	ticks := make([]Tick, len(lb.values))
	for i, v := range lb.values {
		vf := float64(v)
		if !extreme {
			vf = roundTo(vf, prec)
		}
		vf *= scale
		if extreme || scale != 1 {
			ticks[i] = Tick{Value: vf, Label: strconv.FormatFloat(vf, 'g', 6, 64)}
			continue
		}
		ticks[i] = Tick{Value: vf, Label: strconv.FormatFloat(vf, 'f', prec, 64)}
	}
	return ticks
}

// tickScale returns the power of ten that lo and hi are divided by
// before labelling, so that the labels are computed within the
// float32 range. It is 1 for ordinary magnitudes.
func tickScale(lo, hi float64) float64 {
	m := math.Max(math.Abs(lo), math.Abs(hi))
	if m == 0 || (1e-30 < m && m < 1e30) {
		return 1
	}
	return math.Pow10(max(int(math.Floor(math.Log10(m))), -307))
}

// roundTo rounds v to prec decimals, removing the float32
// error of the labelling computation.
func roundTo(v float64, prec int) float64 {
	p := math.Pow10(prec)
	return math.Round(v*p) / p
}

// ConstantTicks is suitable for the Ticker field of an Axis.
// This function returns the given set of ticks.
type ConstantTicks []Tick

var _ Ticker = ConstantTicks{}

// Ticks returns Ticks in a specified range
func (ts ConstantTicks) Ticks(float64, float64) []Tick {
	return ts
}

// CategoryTicks returns ticks labelled with the given names
// at 0, 1, 2, ... as used by bar charts.
func CategoryTicks(names ...string) ConstantTicks {
	return CategoryTicksAt(0, 1, names...)
}

// CategoryTicksAt returns ticks labelled with the given names
// at offset + i*stride.
func CategoryTicksAt(offset, stride float64, names ...string) ConstantTicks {
	ts := make(ConstantTicks, len(names))
	for i, nm := range names {
		ts[i] = Tick{Value: offset + float64(i)*stride, Label: nm}
	}
	return ts
}
