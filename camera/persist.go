// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"log/slog"

	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/VIIgit/isometric-3d-presenter/scene"
)

// Record is the structured persistence form of the camera: the settled
// bookmark plus the manual delta on top of it. A bookmark and a free
// adjustment are stored as separate, addable deltas rather than one
// absolute pose, which is what makes the two-step replay in
// [Machine.LoadPersisted] necessary. The external persistence layer owns
// the literal string grammar; the core only produces and consumes this
// record.
type Record struct {
	BookmarkIndex int
	Rotation      [3]float32
	Zoom          float32
	Pan           math32.Vector2

	// ManualPan distinguishes a user-nudged pan from an auto-centered
	// one; auto-centered pans are not worth persisting, since they are
	// recomputed on replay.
	ManualPan bool
}

// Encode returns the persistence record for the current camera state:
// the last settled bookmark and the manual delta relative to its pose.
func (m *Machine) Encode() Record {
	d := m.pose.Sub(m.bookmarkPose)
	r := Record{
		BookmarkIndex: m.bookmark,
		Rotation:      d.Rotation,
		Zoom:          d.Zoom,
		ManualPan:     m.panDirty,
	}
	if m.panDirty {
		r.Pan = d.Pan
	}
	return r
}

// LoadPersisted replays a persisted record: first a navigation to the
// encoded bookmark, reestablishing highlight and connector context, then
// a second interpolation from the bookmark pose to the exact persisted
// pose if the record carries a manual delta. An unresolvable bookmark
// index degrades to a no-op with a logged warning.
func (m *Machine) LoadPersisted(rec Record) {
	m.StopAutoplay()
	if rec.BookmarkIndex == scene.OverviewIndex {
		m.resetToDefault(nil)
	} else {
		if rec.BookmarkIndex < 0 || rec.BookmarkIndex >= len(m.points) {
			slog.Warn("camera: persisted bookmark not found", "index", rec.BookmarkIndex)
			return
		}
		m.navigate(m.points[rec.BookmarkIndex], nil)
	}

	delta := Delta{Rotation: rec.Rotation, Zoom: rec.Zoom, Pan: rec.Pan}
	if delta.IsZero() {
		return
	}
	m.anim.chained = &interpolation{
		to:        m.anim.to.Add(delta).Clamp(m.limits),
		dur:       NudgeDuration,
		manual:    true,
		manualPan: rec.ManualPan,
	}
}
