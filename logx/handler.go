// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored according to the terminal capabilities
// of the destination. Colors are dropped when the destination is
// not a terminal.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	out   *termenv.Output
	level slog.Leveler

	// attrs are the preformatted attributes from WithAttrs.
	attrs string

	// group is the dotted key prefix from WithGroup.
	group string
}

// NewHandler returns a new [Handler] writing to w, showing records at or
// above the given level. Options are passed to [termenv.NewOutput],
// for example to force a color profile.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		out:   termenv.NewOutput(w, opts...),
		level: level,
	}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to standard error at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &UserLevel)))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	nh.attrs = b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

// levelString returns the padded, colored name of the given level.
func (h *Handler) levelString(l slog.Level) string {
	var c string
	switch {
	case l >= slog.LevelError:
		c = "1"
	case l >= slog.LevelWarn:
		c = "3"
	case l >= slog.LevelInfo:
		c = "4"
	default:
		c = "8"
	}
	st := h.out.String(fmt.Sprintf("%-5s", l.String())).Foreground(h.out.Color(c))
	if l >= slog.LevelError {
		st = st.Bold()
	}
	return st.String()
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, gp, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}
	b.WriteString(s)
}
