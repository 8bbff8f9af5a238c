// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// handler is a minimal slog.Handler that prints one line per record,
// with the level tag colored when the terminal supports it.
type handler struct {
	mu    sync.Mutex
	w     io.Writer
	out   *termenv.Output
	attrs []slog.Attr
}

func newHandler(w io.Writer) *handler {
	return &handler{w: w, out: termenv.NewOutput(w)}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelTag(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *handler) levelTag(level slog.Level) string {
	var tag, color string
	switch {
	case level >= slog.LevelError:
		tag, color = "ERR", "1" // red
	case level >= slog.LevelWarn:
		tag, color = "WRN", "3" // yellow
	case level >= slog.LevelInfo:
		tag, color = "INF", "4" // blue
	default:
		tag, color = "DBG", "8" // gray
	}
	return h.out.String(tag).Foreground(h.out.Color(color)).Bold().String()
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := newHandler(h.w)
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	// groups are flattened; the presenter's logging needs no nesting
	return h
}
