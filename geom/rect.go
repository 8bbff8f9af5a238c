// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/VIIgit/isometric-3d-presenter/math32"

// Rect is an anchor rectangle: the four projected 2D corners of a scene
// element, captured by the layout measurer at a specific camera pose.
// The coordinates are only valid for the pose at which they were captured.
type Rect struct {
	TopLeft     math32.Vector2
	TopRight    math32.Vector2
	BottomRight math32.Vector2
	BottomLeft  math32.Vector2
}

// RectFromBox2 returns an axis-aligned [Rect] from the given bounding box.
func RectFromBox2(b math32.Box2) Rect {
	return Rect{
		TopLeft:     b.Min,
		TopRight:    math32.Vec2(b.Max.X, b.Min.Y),
		BottomRight: b.Max,
		BottomLeft:  math32.Vec2(b.Min.X, b.Max.Y),
	}
}

// Bounds returns the axis-aligned bounding box of the rectangle.
func (r Rect) Bounds() math32.Box2 {
	b := math32.B2Empty()
	b = b.ExpandByPoint(r.TopLeft)
	b = b.ExpandByPoint(r.TopRight)
	b = b.ExpandByPoint(r.BottomRight)
	b = b.ExpandByPoint(r.BottomLeft)
	return b
}

// Centroid returns the average of the four corners.
func (r Rect) Centroid() math32.Vector2 {
	return r.TopLeft.Add(r.TopRight).Add(r.BottomRight).Add(r.BottomLeft).MulScalar(0.25)
}

// CenterNudge is the fixed offset applied by [Rect.AnchorPointFrom] so
// that a line anchored at the center visibly departs from the shape
// instead of starting inside it.
const CenterNudge = 20

// AnchorPoint returns the anchor point for the given side: the exact
// corner for corner sides, the midpoint of the edge for edge sides, and
// the centroid for [Center].
func (r Rect) AnchorPoint(side Side) math32.Vector2 {
	switch side {
	case Top:
		return r.TopLeft.Add(r.TopRight).MulScalar(0.5)
	case Bottom:
		return r.BottomLeft.Add(r.BottomRight).MulScalar(0.5)
	case Left:
		return r.TopLeft.Add(r.BottomLeft).MulScalar(0.5)
	case Right:
		return r.TopRight.Add(r.BottomRight).MulScalar(0.5)
	case TopLeft:
		return r.TopLeft
	case TopRight:
		return r.TopRight
	case BottomLeft:
		return r.BottomLeft
	case BottomRight:
		return r.BottomRight
	}
	return r.Centroid()
}

// AnchorPointFrom returns the centroid nudged [CenterNudge] units toward
// the given point, used for center anchors flagged as departing from the
// shape. If the target coincides with the centroid, the centroid is
// returned unchanged.
func (r Rect) AnchorPointFrom(towards math32.Vector2) math32.Vector2 {
	c := r.Centroid()
	dir := towards.Sub(c).Normal()
	return c.Add(dir.MulScalar(CenterNudge))
}
