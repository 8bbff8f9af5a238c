// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the anchor-point geometry used by the connector
// router: anchor rectangles in projected 2D space, anchor side resolution,
// routing orientation, and safe corner radii.
package geom

import (
	"log/slog"

	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// Axis is a routing axis in projected 2D space.
// Horizontal routing runs along X, vertical along Y.
type Axis int32

const (
	Horizontal Axis = iota
	Vertical
)

// Other returns the other axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Side is a named anchor position on an anchor rectangle.
type Side int32

const (
	Center Side = iota
	Top
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var sideNames = map[Side]string{
	Center:      "center",
	Top:         "top",
	Bottom:      "bottom",
	Left:        "left",
	Right:       "right",
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

func (s Side) String() string {
	if n, ok := sideNames[s]; ok {
		return n
	}
	return "center"
}

// ParseSide returns the [Side] for the given scene-description name.
// Unknown names resolve to [Center] with a logged warning, so that a
// typo in one anchor never aborts a redraw.
func ParseSide(name string) Side {
	if name == "" {
		return Center
	}
	for s, n := range sideNames {
		if n == name {
			return s
		}
	}
	slog.Warn("geom: unknown anchor side, using center", "side", name)
	return Center
}

// IsHorizontal returns whether the side naturally departs along the X axis.
func (s Side) IsHorizontal() bool {
	switch s {
	case Left, Right, TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	}
	return false
}

// IsVertical returns whether the side naturally departs along the Y axis.
func (s Side) IsVertical() bool {
	switch s {
	case Top, Bottom:
		return true
	}
	return false
}

// AxisSign returns the natural departure axis of the side and the sign of
// travel along it, in screen coordinates (x grows right, y grows down):
// left and top are negative, right and bottom positive. Corner sides take
// their horizontal component. Center has no inherent direction; the sign
// is 0 and the caller must resolve it from the endpoint delta.
func (s Side) AxisSign() (Axis, float32) {
	switch s {
	case Left, TopLeft, BottomLeft:
		return Horizontal, -1
	case Right, TopRight, BottomRight:
		return Horizontal, 1
	case Top:
		return Vertical, -1
	case Bottom:
		return Vertical, 1
	}
	return Horizontal, 0
}

// Orientation returns the routing axis for a connector endpoint, given its
// own anchor side, the opposite endpoint's anchor side, and the two resolved
// anchor points. Left/right sides route horizontally and top/bottom sides
// vertically. A center side defers to the opposite side; if both are center,
// the axis with the larger absolute coordinate delta wins, with ties going
// to horizontal.
func Orientation(this, other Side, thisPoint, otherPoint math32.Vector2) Axis {
	if this.IsHorizontal() {
		return Horizontal
	}
	if this.IsVertical() {
		return Vertical
	}
	if other.IsHorizontal() {
		return Horizontal
	}
	if other.IsVertical() {
		return Vertical
	}
	d := otherPoint.Sub(thisPoint).Abs()
	if d.Y > d.X {
		return Vertical
	}
	return Horizontal
}

// DefaultRadius is the base corner radius for rounded connector corners.
const DefaultRadius = 10

// SafeRadius returns a corner radius that never overruns either adjoining
// straight segment: min(base, |seg1|/2, |seg2|/2).
func SafeRadius(seg1Len, seg2Len, base float32) float32 {
	return math32.Min(base, math32.Min(math32.Abs(seg1Len)/2, math32.Abs(seg2Len)/2))
}
