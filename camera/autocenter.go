// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// ProjectedCentroid returns the screen position of the center of an
// element's flat-pose rectangle under the given pose, before pan. The
// projection matches the renderer's isometric transform: rotation about
// Z in the plane, foreshortening of each axis by the tilt rotations,
// then zoom. It operates purely on already-captured flat geometry, so
// auto-centering never needs a hidden secondary render pass.
func ProjectedCentroid(pose Pose, flat math32.Box2) math32.Vector2 {
	c := flat.Center()
	rz := math32.DegToRad(pose.RotationZ)
	sin, cos := math32.Sin(rz), math32.Cos(rz)
	p := math32.Vec2(c.X*cos-c.Y*sin, c.X*sin+c.Y*cos)
	p.X *= math32.Cos(math32.DegToRad(pose.RotationY))
	p.Y *= math32.Cos(math32.DegToRad(pose.RotationX))
	return p.MulScalar(pose.Zoom)
}

// AutoCenterPan returns the pan that places the element measured by the
// given flat-pose rectangle at the center of the viewport when the
// camera reaches the given pose.
func AutoCenterPan(pose Pose, flat, viewport math32.Box2) math32.Vector2 {
	return viewport.Center().Sub(ProjectedCentroid(pose, flat))
}
