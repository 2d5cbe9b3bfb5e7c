// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Bin is one histogram bin, covering [Min, Max).
// The last bin of a histogram also includes its Max.
type Bin struct {
	Min, Max float64
	Count    int
}

// Histogram counts the non-NaN values into nbins equal-width bins
// spanning the range of the values. A range with zero width is widened
// by 0.5 on each side. It returns nil if nbins < 1 or there are no values.
func Histogram(vals []float64, nbins int) []Bin {
	if nbins < 1 {
		return nil
	}
	lo, hi := MinOf(vals), MaxOf(vals)
	if math.IsNaN(lo) {
		return nil
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
		if lo == hi {
			lo, hi = math.Nextafter(lo, math.Inf(-1)), math.Nextafter(hi, math.Inf(1))
		}
	}
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Min = binEdge(lo, hi, i, nbins)
		bins[i].Max = binEdge(lo, hi, i+1, nbins)
	}
	// halved so that hi-lo cannot overflow
	span := hi/2 - lo/2
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		bi := int((v/2 - lo/2) / span * float64(nbins))
		bi = min(max(bi, 0), nbins-1)
		// correct floating point error at the edges
		if v < bins[bi].Min && bi > 0 {
			bi--
		} else if v >= bins[bi].Max && bi < nbins-1 {
			bi++
		}
		bins[bi].Count++
	}
	return bins
}

// binEdge returns edge i of n equal-width bins over [lo, hi].
func binEdge(lo, hi float64, i, n int) float64 {
	if i == n {
		return hi
	}
	t := float64(i) / float64(n)
	return lo*(1-t) + hi*t
}
