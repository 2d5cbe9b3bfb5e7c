// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"strings"
)

// LoadError is returned when the source data does not exist,
// cannot be read, or cannot be parsed into a table.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "dataset: load: " + e.Err.Error()
	}
	return fmt.Sprintf("dataset: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError is returned when required columns are absent
// from the header of the source data.
type SchemaError struct {
	Path    string
	Missing []string

	// Similar maps a missing column to the header name
	// that most closely resembles it, if any does.
	Similar map[string]string
}

func (e *SchemaError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	msg := fmt.Sprintf("dataset: %s is missing required columns: %s", src, strings.Join(e.Missing, ", "))
	var hints []string
	for _, m := range e.Missing {
		if h, ok := e.Similar[m]; ok {
			hints = append(hints, fmt.Sprintf("%q for %s", h, m))
		}
	}
	if len(hints) > 0 {
		msg += " (similar headers: " + strings.Join(hints, ", ") + ")"
	}
	return msg
}

// CoercionWarning records a numeric cell that could not be parsed.
// The value becomes [Missing]; it is never returned as an error.
type CoercionWarning struct {
	Line   int
	Column string
	Value  string
}

func (w CoercionWarning) Error() string {
	return fmt.Sprintf("line %d: %s value %q is not a number", w.Line, w.Column, w.Value)
}
