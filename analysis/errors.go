// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import "fmt"

// RenderError is returned when a chart could not be rendered
// or written to its output file.
type RenderError struct {
	// Chart is the name of the chart.
	Chart string

	// Path is the output file of the chart.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("analysis: render %s chart to %s: %v", e.Chart, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
