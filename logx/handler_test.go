// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewHandler(&buf, level, termenv.WithProfile(termenv.Ascii))), &buf
}

func TestHandler(t *testing.T) {
	lg, buf := newTestLogger(slog.LevelInfo)
	lg.Debug("hidden")
	lg.Info("wrote chart", "path", "graphs/top5.png", "rows", 5)
	lg.Warn("coercion", "value", "not a number")
	assert.Equal(t, "INFO  wrote chart path=graphs/top5.png rows=5\n"+
		"WARN  coercion value=\"not a number\"\n", buf.String())
}

func TestHandlerGroups(t *testing.T) {
	lg, buf := newTestLogger(slog.LevelDebug)
	lg.With("chart", "histogram").WithGroup("bins").Debug("binned", "n", 20, slog.Group("range", "min", 1, "max", 2))
	assert.Equal(t, "DEBUG binned chart=histogram bins.n=20 bins.range.min=1 bins.range.max=2\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	prev, prevLevel := slog.Default(), UserLevel
	defer func() {
		slog.SetDefault(prev)
		UserLevel = prevLevel
	}()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
