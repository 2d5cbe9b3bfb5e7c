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

	"github.com/princessdata/princess/base/errors"
)

var (
	ErrInfinity = errors.New("plotter: infinite data point")
	ErrNoData   = errors.New("plotter: no data points")
)

// Valuer is the data interface for plotting, supporting either
// float64 or string representations.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D(i int) returns float64 value at given index.
	Float1D(i int) float64

	// String1D(i int) returns string value at given index.
	String1D(i int) string
}

// CheckFloats returns an error if any of the arguments are Infinity.
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// Range returns the minimum and maximum of the non-NaN values,
// +Inf and -Inf if there are none.
func Range(data Valuer) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return
}

// Values provides a minimal implementation of the Valuer interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// CopyValues returns a Values that is a copy of the values
// from data, or an error if there is no data, or if one of
// the values is NaN or Infinity.
func CopyValues(data Valuer) (Values, error) {
	if data == nil {
		return nil, ErrNoData
	}
	cpy := make(Values, data.Len())
	for i := range cpy {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			return nil, errors.New("plotter: NaN data point")
		}
		if err := CheckFloats(v); err != nil {
			return nil, err
		}
		cpy[i] = v
	}
	return cpy, nil
}

// Labels provides a minimal implementation of the Valuer interface
// using a slice of string. It always returns 0 for Float1D.
type Labels []string

func (lb Labels) Len() int {
	return len(lb)
}

func (lb Labels) Float1D(i int) float64 {
	return 0
}

func (lb Labels) String1D(i int) string {
	return lb[i]
}
