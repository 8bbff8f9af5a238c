// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/stretchr/testify/assert"
)

func TestParseSide(t *testing.T) {
	assert.Equal(t, Top, ParseSide("top"))
	assert.Equal(t, BottomRight, ParseSide("bottom-right"))
	assert.Equal(t, Center, ParseSide(""))
	assert.Equal(t, Center, ParseSide("middle"))
	assert.Equal(t, "top-left", TopLeft.String())
}

func TestAxisSign(t *testing.T) {
	tests := []struct {
		side Side
		axis Axis
		sign float32
	}{
		{Left, Horizontal, -1},
		{Right, Horizontal, 1},
		{Top, Vertical, -1},
		{Bottom, Vertical, 1},
		{TopLeft, Horizontal, -1},
		{BottomRight, Horizontal, 1},
		{Center, Horizontal, 0},
	}
	for _, tt := range tests {
		axis, sign := tt.side.AxisSign()
		assert.Equal(t, tt.axis, axis, tt.side.String())
		assert.Equal(t, tt.sign, sign, tt.side.String())
	}
}

func TestOrientation(t *testing.T) {
	a := math32.Vec2(0, 0)
	b := math32.Vec2(100, 40)
	assert.Equal(t, Horizontal, Orientation(Left, Top, a, b))
	assert.Equal(t, Vertical, Orientation(Top, Left, a, b))
	// center defers to the opposite side
	assert.Equal(t, Vertical, Orientation(Center, Bottom, a, b))
	assert.Equal(t, Horizontal, Orientation(Center, Right, a, b))
	// both center: larger absolute delta wins
	assert.Equal(t, Horizontal, Orientation(Center, Center, a, b))
	assert.Equal(t, Vertical, Orientation(Center, Center, a, math32.Vec2(40, 100)))
	// exact tie prefers horizontal
	assert.Equal(t, Horizontal, Orientation(Center, Center, a, math32.Vec2(50, 50)))
}

func TestAnchorPoint(t *testing.T) {
	r := RectFromBox2(math32.B2(0, 0, 50, 50))
	assert.Equal(t, math32.Vec2(25, 0), r.AnchorPoint(Top))
	assert.Equal(t, math32.Vec2(25, 50), r.AnchorPoint(Bottom))
	assert.Equal(t, math32.Vec2(0, 25), r.AnchorPoint(Left))
	assert.Equal(t, math32.Vec2(50, 25), r.AnchorPoint(Right))
	assert.Equal(t, math32.Vec2(50, 0), r.AnchorPoint(TopRight))
	assert.Equal(t, math32.Vec2(25, 25), r.AnchorPoint(Center))
}

func TestAnchorPointOnBoundary(t *testing.T) {
	// every non-center anchor point lies within the bounding box
	r := RectFromBox2(math32.B2(-30, 10, 120, 80))
	bounds := r.Bounds()
	for s := Center; s <= BottomRight; s++ {
		p := r.AnchorPoint(s)
		assert.True(t, bounds.ContainsPoint(p), s.String())
	}
}

func TestAnchorPointFrom(t *testing.T) {
	r := RectFromBox2(math32.B2(0, 0, 50, 50))
	p := r.AnchorPointFrom(math32.Vec2(200, 25))
	assert.Equal(t, math32.Vec2(45, 25), p)
	// coincident target keeps the centroid
	assert.Equal(t, math32.Vec2(25, 25), r.AnchorPointFrom(math32.Vec2(25, 25)))
}

func TestSafeRadius(t *testing.T) {
	assert.Equal(t, float32(10), SafeRadius(100, 100, 10))
	assert.Equal(t, float32(5), SafeRadius(10, 100, 10))
	assert.Equal(t, float32(3), SafeRadius(100, -6, 10))
	assert.Equal(t, float32(0), SafeRadius(0, 100, 10))
	// never exceeds half of either adjoining segment
	for _, s1 := range []float32{1, 7, 19, 300} {
		for _, s2 := range []float32{2, 12, 44} {
			r := SafeRadius(s1, s2, 10)
			assert.LessOrEqual(t, r, math32.Min(s1, s2)/2)
		}
	}
}
