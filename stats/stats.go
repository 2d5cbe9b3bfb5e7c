// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the descriptive statistics used by the
// princess analyzer: means, standard deviations, quantiles, group
// means, histogram binning and box plot summaries.
// All functions operate on float64 slices and skip NaN values.
package stats

import (
	"math"
	"slices"
	"strconv"
)

// Stats is a list of the supported descriptive statistics.
type Stats int32

const (
	// Count is the number of non-NaN values.
	Count Stats = iota

	// Mean is the arithmetic mean.
	Mean

	// Std is the sample standard deviation (n-1 denominator).
	Std

	// Min is the minimum value.
	Min

	// Q1 is the first quartile.
	Q1

	// Median is the middle value.
	Median

	// Q3 is the third quartile.
	Q3

	// Max is the maximum value.
	Max
)

var statsNames = [...]string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func (s Stats) String() string {
	if s < 0 || int(s) >= len(statsNames) {
		return "Stats(" + strconv.Itoa(int(s)) + ")"
	}
	return statsNames[s]
}

// Func returns the function computing this statistic.
func (s Stats) Func() func(vals []float64) float64 {
	switch s {
	case Count:
		return func(vals []float64) float64 { return float64(CountOf(vals)) }
	case Mean:
		return MeanOf
	case Std:
		return StdOf
	case Min:
		return MinOf
	case Q1:
		return func(vals []float64) float64 { return Quantile(vals, .25) }
	case Median:
		return func(vals []float64) float64 { return Quantile(vals, .5) }
	case Q3:
		return func(vals []float64) float64 { return Quantile(vals, .75) }
	case Max:
		return MaxOf
	}
	return nil
}

// CountOf returns the number of non-NaN values.
func CountOf(vals []float64) int {
	n := 0
	for _, v := range vals {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// SumOf returns the sum of non-NaN values.
func SumOf(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			s += v
		}
	}
	return s
}

// MeanOf returns the mean of non-NaN values, NaN if there are none.
func MeanOf(vals []float64) float64 {
	n := CountOf(vals)
	if n == 0 {
		return math.NaN()
	}
	return SumOf(vals) / float64(n)
}

// VarOf returns the sample variance of non-NaN values,
// NaN if there are fewer than two.
func VarOf(vals []float64) float64 {
	n := CountOf(vals)
	if n < 2 {
		return math.NaN()
	}
	mean := MeanOf(vals)
	ss := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			d := v - mean
			ss += d * d
		}
	}
	return ss / float64(n-1)
}

// StdOf returns the sample standard deviation of non-NaN values.
func StdOf(vals []float64) float64 {
	return math.Sqrt(VarOf(vals))
}

// MinOf returns the minimum non-NaN value, NaN if there are none.
func MinOf(vals []float64) float64 {
	m := math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(m) || v < m {
			m = v
		}
	}
	return m
}

// MaxOf returns the maximum non-NaN value, NaN if there are none.
func MaxOf(vals []float64) float64 {
	m := math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(m) || v > m {
			m = v
		}
	}
	return m
}

// Sorted returns a sorted copy of the non-NaN values.
func Sorted(vals []float64) []float64 {
	sv := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			sv = append(sv, v)
		}
	}
	slices.Sort(sv)
	return sv
}

// Quantile returns the q quantile (0..1) of the non-NaN values,
// linearly interpolating between the two nearest ranks.
// It returns NaN if there are no values.
func Quantile(vals []float64, q float64) float64 {
	return QuantileSorted(Sorted(vals), q)
}

// QuantileSorted is [Quantile] for already sorted values without NaN.
func QuantileSorted(sv []float64, q float64) float64 {
	n := len(sv)
	if n == 0 {
		return math.NaN()
	}
	q = min(max(q, 0), 1)
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi || sv[lo] == sv[hi] {
		return sv[lo]
	}
	// weighted form stays finite for values of opposite sign near the float64 limits
	f := pos - float64(lo)
	return sv[lo]*(1-f) + sv[hi]*f
}
