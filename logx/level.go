// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging for the princess tools.
package logx

import "log/slog"

// UserLevel is the lowest level of message that is shown. The default
// logger reads it for every message, so it may be changed at any time.
var UserLevel = defaultUserLevel

// Verbosity holds the verbosity switches of the configuration.
type Verbosity struct {
	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

// Level returns the level selected by the most verbose switch that is
// set: debug, info or error. With no switch set it is the build default,
// which is info unless built with the debug or release tag.
func (vb Verbosity) Level() slog.Level {
	switch {
	case vb.VeryVerbose:
		return slog.LevelDebug
	case vb.Verbose:
		return slog.LevelInfo
	case vb.Quiet:
		return slog.LevelError
	}
	return defaultUserLevel
}
