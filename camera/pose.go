// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera holds the virtual camera of one presenter instance: its
// pose, the navigation state machine with eased interpolation between
// bookmarked viewpoints, autoplay, and the structured persistence record.
package camera

import (
	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// Zoom bounds, applied to every pose the machine produces.
const (
	ZoomMin = 0.2
	ZoomMax = 3.0
)

// Pose is the full camera pose: per-axis rotation in degrees, zoom
// factor, and pan in pixels. It is mutated only by the state machine;
// the renderer and router treat it as read-only.
type Pose struct {
	RotationX float32
	RotationY float32
	RotationZ float32
	Zoom      float32
	Pan       math32.Vector2
}

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float32
	Max float32
}

// Clamp clamps v into the range. A zero range (Min == Max == 0) is
// treated as unconstrained.
func (r Range) Clamp(v float32) float32 {
	if r.Min == 0 && r.Max == 0 {
		return v
	}
	return math32.Clamp(v, r.Min, r.Max)
}

// Limits are the per-axis rotation ranges of one presenter instance,
// configured at construction and immutable thereafter.
type Limits struct {
	X Range
	Y Range
	Z Range
}

// DefaultLimits allow a full turn around Z and keep the tilt axes within
// a range that preserves the isometric reading of the scene.
var DefaultLimits = Limits{
	X: Range{-90, 90},
	Y: Range{-90, 90},
	Z: Range{-180, 180},
}

// Clamp returns the pose with rotations clamped to the given limits and
// zoom clamped to [ZoomMin, ZoomMax].
func (p Pose) Clamp(l Limits) Pose {
	p.RotationX = l.X.Clamp(p.RotationX)
	p.RotationY = l.Y.Clamp(p.RotationY)
	p.RotationZ = l.Z.Clamp(p.RotationZ)
	p.Zoom = math32.Clamp(p.Zoom, ZoomMin, ZoomMax)
	return p
}

// Lerp returns the linear interpolation between this pose and the given
// one, in proportion t.
func (p Pose) Lerp(to Pose, t float32) Pose {
	return Pose{
		RotationX: math32.Lerp(p.RotationX, to.RotationX, t),
		RotationY: math32.Lerp(p.RotationY, to.RotationY, t),
		RotationZ: math32.Lerp(p.RotationZ, to.RotationZ, t),
		Zoom:      math32.Lerp(p.Zoom, to.Zoom, t),
		Pan:       p.Pan.Lerp(to.Pan, t),
	}
}

// Delta is a free-form camera adjustment from drag, keyboard, or wheel
// input, added on top of the current pose.
type Delta struct {
	Rotation [3]float32
	Zoom     float32
	Pan      math32.Vector2
}

// IsZero returns whether the delta changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Add returns the pose with the delta applied, unclamped.
func (p Pose) Add(d Delta) Pose {
	return Pose{
		RotationX: p.RotationX + d.Rotation[0],
		RotationY: p.RotationY + d.Rotation[1],
		RotationZ: p.RotationZ + d.Rotation[2],
		Zoom:      p.Zoom + d.Zoom,
		Pan:       p.Pan.Add(d.Pan),
	}
}

// Sub returns the delta that takes the other pose to this one.
func (p Pose) Sub(other Pose) Delta {
	return Delta{
		Rotation: [3]float32{
			p.RotationX - other.RotationX,
			p.RotationY - other.RotationY,
			p.RotationZ - other.RotationZ,
		},
		Zoom: p.Zoom - other.Zoom,
		Pan:  p.Pan.Sub(other.Pan),
	}
}

// EaseInOutQuad is the quadratic in/out easing used for viewpoint
// interpolation, mapping linear time t in [0,1] to eased progress.
func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
