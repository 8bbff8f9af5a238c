// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"log/slog"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/VIIgit/isometric-3d-presenter/scene"
)

// Interpolation durations.
const (
	// DefaultDuration is the time a full viewpoint transition takes.
	DefaultDuration = 1200 * time.Millisecond

	// NudgeDuration is used for small discrete rotation nudges.
	NudgeDuration = 500 * time.Millisecond

	// SmallNudgeDuration is used for zoom and pan nudges.
	SmallNudgeDuration = 300 * time.Millisecond
)

// State is the navigation state of the machine.
type State int32

const (
	// StateDefault is the overview: the camera is at the default pose
	// with no bookmark active.
	StateDefault State = iota

	// StateAtBookmark means the camera has settled on a bookmark.
	StateAtBookmark

	// StateManual is the free camera after drag, keyboard, or wheel input.
	StateManual
)

func (s State) String() string {
	switch s {
	case StateAtBookmark:
		return "at-bookmark"
	case StateManual:
		return "manual"
	}
	return "default"
}

// interpolation is one in-flight eased transition. Exactly one runs at a
// time; starting a new one supersedes, never queues behind, the current
// one, and a superseded interpolation's onComplete is dropped unfired.
type interpolation struct {
	from    Pose
	to      Pose
	dur     time.Duration
	elapsed time.Duration

	index int
	point *scene.NavigationPoint

	// manual transitions (nudges, the persisted-state second leg) end in
	// [StateManual] and do not count as arriving at a bookmark.
	manual    bool
	manualPan bool

	onComplete func()
	chained    *interpolation
}

// Machine is the camera navigation state machine of one presenter
// instance. It owns the single [Pose]; all stepping happens on the
// host's frame callback via [Machine.Tick], so the machine needs no
// locking.
type Machine struct {
	defaultPose Pose
	limits      Limits
	points      []*scene.NavigationPoint

	pose         Pose
	state        State
	bookmark     int
	bookmarkPose Pose
	panDirty     bool

	anim *interpolation

	auto          bool
	autoHold      time.Duration
	autoRemaining time.Duration

	// OnPose publishes each intermediate pose to the renderer. It is
	// called once per tick while interpolating and once per immediate
	// adjustment.
	OnPose func(Pose)

	// OnArrive is called exactly once per completed navigation, with the
	// settled navigation point (nil for the overview) and its index.
	// Superseded interpolations never arrive.
	OnArrive func(pt *scene.NavigationPoint, index int)

	// AutoPan resolves the auto-center pan for a bookmarked element at
	// the clamped target pose. It reports false when the element cannot
	// be measured, in which case the current pan is kept.
	AutoPan func(target Pose, elementID string) (math32.Vector2, bool)
}

// NewMachine returns a [Machine] at the given default pose. A zero
// default zoom is taken as 1. The limits and the ordered navigation
// points are fixed for the machine's lifetime.
func NewMachine(defaultPose Pose, limits Limits, points []*scene.NavigationPoint) *Machine {
	if defaultPose.Zoom == 0 {
		defaultPose.Zoom = 1
	}
	defaultPose = defaultPose.Clamp(limits)
	return &Machine{
		defaultPose:  defaultPose,
		limits:       limits,
		points:       points,
		pose:         defaultPose,
		bookmark:     scene.OverviewIndex,
		bookmarkPose: defaultPose,
	}
}

// Pose returns the current camera pose.
func (m *Machine) Pose() Pose { return m.pose }

// State returns the current navigation state.
func (m *Machine) State() State { return m.state }

// Bookmark returns the index of the last settled bookmark, or
// [scene.OverviewIndex].
func (m *Machine) Bookmark() int { return m.bookmark }

// PanDirty reports whether the pan has been manually nudged since the
// last completed navigation, which distinguishes a user pan from an
// auto-centered one in persisted state.
func (m *Machine) PanDirty() bool { return m.panDirty }

// Animating reports whether an interpolation is in flight.
func (m *Machine) Animating() bool { return m.anim != nil }

// AutoplayActive reports whether autoplay is running.
func (m *Machine) AutoplayActive() bool { return m.auto }

// Points returns the machine's navigation points in authored order.
func (m *Machine) Points() []*scene.NavigationPoint { return m.points }

// NavigateToIndex starts a navigation to the bookmark with the given
// index; [scene.OverviewIndex] resets to the default pose. An unknown
// index degrades to a no-op with a logged warning. Explicit navigation
// cancels autoplay.
func (m *Machine) NavigateToIndex(index int, onComplete func()) {
	m.StopAutoplay()
	if index == scene.OverviewIndex {
		m.resetToDefault(onComplete)
		return
	}
	if index < 0 || index >= len(m.points) {
		slog.Warn("camera: no such navigation point", "index", index)
		return
	}
	m.navigate(m.points[index], onComplete)
}

// NavigateTo starts a navigation to the given point. The optional
// onComplete fires exactly once when the transition settles, and never
// if the transition is superseded first.
func (m *Machine) NavigateTo(pt *scene.NavigationPoint, onComplete func()) {
	m.StopAutoplay()
	m.navigate(pt, onComplete)
}

// ResetToDefault navigates to the instance's default pose, bookmark
// index [scene.OverviewIndex]. Arriving there always clears highlights
// (the overview point carries no groups).
func (m *Machine) ResetToDefault(onComplete func()) {
	m.StopAutoplay()
	m.resetToDefault(onComplete)
}

func (m *Machine) resetToDefault(onComplete func()) {
	m.anim = &interpolation{
		from:       m.pose,
		to:         m.defaultPose,
		dur:        DefaultDuration,
		index:      scene.OverviewIndex,
		onComplete: onComplete,
	}
}

func (m *Machine) navigate(pt *scene.NavigationPoint, onComplete func()) {
	dur := DefaultDuration
	if pt.Duration > 0 {
		dur = pt.Duration
	}
	m.anim = &interpolation{
		from:       m.pose,
		to:         m.target(pt),
		dur:        dur,
		index:      pt.Index,
		point:      pt,
		onComplete: onComplete,
	}
}

// target resolves the point's pose fields against the current pose and
// the instance defaults, clamps, and then resolves pan, so that
// auto-centering measures at the final clamped target pose.
func (m *Machine) target(pt *scene.NavigationPoint) Pose {
	t := m.pose
	switch pt.Rotation.Mode {
	case scene.FieldLiteral:
		t.RotationX = pt.Rotation.Value[0]
		t.RotationY = pt.Rotation.Value[1]
		t.RotationZ = pt.Rotation.Value[2]
	case scene.FieldDefault:
		t.RotationX = m.defaultPose.RotationX
		t.RotationY = m.defaultPose.RotationY
		t.RotationZ = m.defaultPose.RotationZ
	}
	switch pt.Zoom.Mode {
	case scene.FieldLiteral:
		t.Zoom = pt.Zoom.Value
	case scene.FieldDefault:
		t.Zoom = m.defaultPose.Zoom
	}
	t = t.Clamp(m.limits)

	switch pt.Pan.Mode {
	case scene.FieldLiteral:
		t.Pan = pt.Pan.Value
	case scene.FieldDefault:
		t.Pan = m.defaultPose.Pan
	case scene.FieldKeep:
		// current pan
	case scene.FieldUnset:
		if m.AutoPan != nil && pt.ElementID != "" {
			if pan, ok := m.AutoPan(t, pt.ElementID); ok {
				t.Pan = pan
			} else {
				slog.Warn("camera: cannot auto-center, keeping pan", "element", pt.ElementID)
			}
		}
	}
	return t
}

// Adjust applies a free-form camera delta immediately, without easing.
// It cancels any running interpolation and autoplay, transitions to
// [StateManual], and marks the pan dirty if the delta pans.
func (m *Machine) Adjust(d Delta) {
	m.StopAutoplay()
	m.anim = nil
	m.pose = m.pose.Add(d).Clamp(m.limits)
	m.state = StateManual
	if d.Pan != (math32.Vector2{}) {
		m.panDirty = true
	}
	m.publish()
}

// NudgeRotation starts a short eased rotation nudge.
func (m *Machine) NudgeRotation(d [3]float32) {
	m.nudge(Delta{Rotation: d}, NudgeDuration)
}

// NudgeZoom starts a short eased zoom nudge.
func (m *Machine) NudgeZoom(dz float32) {
	m.nudge(Delta{Zoom: dz}, SmallNudgeDuration)
}

// NudgePan starts a short eased pan nudge.
func (m *Machine) NudgePan(dp math32.Vector2) {
	m.nudge(Delta{Pan: dp}, SmallNudgeDuration)
}

func (m *Machine) nudge(d Delta, dur time.Duration) {
	m.StopAutoplay()
	m.anim = &interpolation{
		from:      m.pose,
		to:        m.pose.Add(d).Clamp(m.limits),
		dur:       dur,
		manual:    true,
		manualPan: d.Pan != (math32.Vector2{}),
	}
}

// Tick advances the machine by the given frame delta and reports whether
// an interpolation is (still) running. The host calls it once per frame;
// synthetic deltas work just as well in tests.
func (m *Machine) Tick(dt time.Duration) bool {
	if m.anim == nil {
		m.autoplayTick(dt)
		return m.anim != nil
	}
	a := m.anim
	a.elapsed += dt
	t := float32(1)
	if a.elapsed < a.dur {
		t = float32(a.elapsed) / float32(a.dur)
	}
	m.pose = a.from.Lerp(a.to, EaseInOutQuad(t))
	m.publish()
	if a.elapsed >= a.dur {
		m.anim = nil
		m.finish(a)
	}
	return true
}

// finish runs the settle transition for a completed interpolation:
// state change, completion callback, arrival notification, and the
// chained second leg of a persisted-state replay, in that order.
func (m *Machine) finish(a *interpolation) {
	m.pose = a.to
	switch {
	case a.manual:
		m.state = StateManual
		if a.manualPan {
			m.panDirty = true
		}
	case a.index == scene.OverviewIndex:
		m.state = StateDefault
		m.bookmark = scene.OverviewIndex
		m.bookmarkPose = m.pose
		m.panDirty = false
	default:
		m.state = StateAtBookmark
		m.bookmark = a.index
		m.bookmarkPose = m.pose
		m.panDirty = false
	}
	if a.onComplete != nil {
		a.onComplete()
	}
	if !a.manual && m.OnArrive != nil {
		m.OnArrive(a.point, a.index)
	}
	if a.chained != nil {
		a.chained.from = m.pose
		m.anim = a.chained
	}
	if m.auto {
		m.autoRemaining = m.autoHold
	}
}

func (m *Machine) publish() {
	if m.OnPose != nil {
		m.OnPose(m.pose)
	}
}
