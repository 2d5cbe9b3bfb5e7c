// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Float is a float64 value that may be missing. The zero value is missing.
type Float struct {
	Value float64
	Valid bool
}

// Missing is the missing [Float] value.
var Missing = Float{}

// Some returns a valid [Float] with the given value.
func Some(v float64) Float {
	return Float{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (f Float) Get() (float64, bool) {
	return f.Value, f.Valid
}

func (f Float) String() string {
	if !f.Valid {
		return "NA"
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// NullTokens are the cell contents, after trimming space, that denote an
// absent value in the source data. They match the usual spreadsheet and
// dataframe conventions.
var NullTokens = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// IsNull returns whether the given cell denotes an absent value.
func IsNull(s string) bool {
	return NullTokens[strings.TrimSpace(s)]
}

// ParseFloat converts the given cell to a [Float]. Absent cells
// (see [IsNull]) are [Missing] with ok = true. Cells that are not a finite
// number are [Missing] with ok = false, which callers report as a
// [CoercionWarning].
func ParseFloat(s string) (f Float, ok bool) {
	s = strings.TrimSpace(s)
	if IsNull(s) {
		return Missing, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Missing, false
	}
	return Some(v), true
}
