// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx installs a leveled, terminal-colored slog handler. The
// rest of the module logs through log/slog directly; logx only controls
// how and at what level those records are printed.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the level gate for user-visible logging output.
// Levels below it are dropped.
var UserLevel = slog.LevelInfo

// SetLevel sets [UserLevel] and reinstalls the default handler.
func SetLevel(level slog.Level) {
	UserLevel = level
	Init()
}

// Init installs the colored handler writing to standard error as the
// slog default.
func Init() {
	slog.SetDefault(slog.New(newHandler(os.Stderr)))
}
