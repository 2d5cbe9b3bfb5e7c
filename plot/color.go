// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/colornames"
)

// ParseColor returns the color for a CSS color name such as "skyblue"
// (case insensitive) or a hex color in the form "#rgb" or "#rrggbb".
func ParseColor(s string) (drawing.Color, error) {
	cs := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(cs, "#"); ok {
		if (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, "0123456789abcdef") != "" {
			return drawing.Color{}, fmt.Errorf("plot: invalid hex color %q", s)
		}
		return drawing.ColorFromHex(hex), nil
	}
	c, ok := colornames.Map[cs]
	if !ok {
		return drawing.Color{}, fmt.Errorf("plot: unknown color name %q", s)
	}
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// MustParseColor is [ParseColor] for known good colors;
// it panics on an invalid color.
func MustParseColor(s string) drawing.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
