// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// WhiskerIQR is the multiple of the interquartile range beyond
// which a value is an outlier in a [Box].
const WhiskerIQR = 1.5

// Box is the five number summary drawn by a box plot.
type Box struct {
	// N is the number of non-NaN values summarized.
	N int

	// Q1, Median, Q3 are the quartiles.
	Q1, Median, Q3 float64

	// Low and High are the whisker ends: the most extreme values
	// within WhiskerIQR interquartile ranges of the box.
	Low, High float64

	// Outliers are the values beyond the whiskers, in ascending order.
	Outliers []float64
}

// BoxOf returns the box summary of the non-NaN values.
// All fields are NaN when there are no values.
func BoxOf(vals []float64) Box {
	sv := Sorted(vals)
	bx := Box{N: len(sv)}
	if bx.N == 0 {
		nan := math.NaN()
		bx.Q1, bx.Median, bx.Q3, bx.Low, bx.High = nan, nan, nan, nan, nan
		return bx
	}
	bx.Q1 = QuantileSorted(sv, .25)
	bx.Median = QuantileSorted(sv, .5)
	bx.Q3 = QuantileSorted(sv, .75)
	iqr := bx.Q3 - bx.Q1
	lo := bx.Q1 - WhiskerIQR*iqr
	hi := bx.Q3 + WhiskerIQR*iqr
	bx.Low = bx.Q1
	bx.High = bx.Q3
	for _, v := range sv {
		if v < lo || v > hi {
			bx.Outliers = append(bx.Outliers, v)
			continue
		}
		bx.Low = min(bx.Low, v)
		bx.High = max(bx.High, v)
	}
	return bx
}

// Range returns the smallest and largest values drawn for the box,
// including outliers.
func (bx *Box) Range() (lo, hi float64) {
	lo, hi = bx.Low, bx.High
	if len(bx.Outliers) > 0 {
		lo = min(lo, bx.Outliers[0])
		hi = max(hi, bx.Outliers[len(bx.Outliers)-1])
	}
	return
}
