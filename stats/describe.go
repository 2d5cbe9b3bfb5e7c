// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// DescriptiveStats are the standard descriptive stats used in the
// [Describe] function: [Count], [Mean], [Std], [Min], [Q1], [Median],
// [Q3], [Max].
var DescriptiveStats = []Stats{Count, Mean, Std, Min, Q1, Median, Q3, Max}

// Description holds the [DescriptiveStats] of one named set of values.
type Description struct {
	// Name of the described values.
	Name string

	// Values has one entry per [DescriptiveStats] element.
	Values []float64
}

// Describe computes the [DescriptiveStats] of the non-NaN values.
func Describe(name string, vals []float64) Description {
	ds := Description{Name: name, Values: make([]float64, len(DescriptiveStats))}
	sv := Sorted(vals)
	for i, st := range DescriptiveStats {
		ds.Values[i] = st.Func()(sv)
	}
	return ds
}

// Get returns the value of the given stat, or 0 if it was not computed.
func (ds *Description) Get(st Stats) float64 {
	for i, s := range DescriptiveStats {
		if s == st && i < len(ds.Values) {
			return ds.Values[i]
		}
	}
	return 0
}
