// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"log/slog"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/scene"
)

// DefaultAutoplayHold is the time autoplay rests on each viewpoint
// before advancing.
const DefaultAutoplayHold = 5 * time.Second

// StartAutoplay cycles the bookmarks in index order, resting the given
// hold time on each, and inserts the overview between the last bookmark
// and the wraparound to the first. A non-positive hold uses
// [DefaultAutoplayHold]. Any manual input cancels autoplay.
func (m *Machine) StartAutoplay(hold time.Duration) {
	if len(m.points) == 0 {
		slog.Warn("camera: autoplay without navigation points")
		return
	}
	if hold <= 0 {
		hold = DefaultAutoplayHold
	}
	m.auto = true
	m.autoHold = hold
	// advance on the next idle tick
	m.autoRemaining = 0
}

// StopAutoplay cancels autoplay. It is a no-op if autoplay is not running.
func (m *Machine) StopAutoplay() {
	m.auto = false
}

// autoplayTick counts down the hold while the camera is idle and starts
// the next navigation when it expires. It is driven by [Machine.Tick].
func (m *Machine) autoplayTick(dt time.Duration) {
	if !m.auto {
		return
	}
	m.autoRemaining -= dt
	if m.autoRemaining > 0 {
		return
	}
	m.autoRemaining = m.autoHold
	next := m.nextAutoplayIndex()
	if next == scene.OverviewIndex {
		m.resetToDefault(nil)
		return
	}
	m.navigate(m.points[next], nil)
}

// nextAutoplayIndex returns the index after the last settled bookmark:
// ascending through the points, then the overview, then around to the
// first again.
func (m *Machine) nextAutoplayIndex() int {
	switch {
	case m.bookmark == len(m.points)-1:
		return scene.OverviewIndex
	case m.bookmark == scene.OverviewIndex:
		return 0
	}
	return m.bookmark + 1
}
