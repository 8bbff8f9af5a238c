// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package connector

import (
	"github.com/VIIgit/isometric-3d-presenter/geom"
	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// straightThreshold is the axis delta below which a connector collapses
// to a single straight segment, with no corners and no radius logic.
const straightThreshold = 1

// Route computes the renderable form of the connector between the two
// given anchor rectangles. The rectangles must have been measured at the
// same pose; resolving them is the caller's concern. The result is routed
// in the active (non-dimmed) state; see [Rendered.Dim].
func Route(sp *Spec, from, to geom.Rect) *Rendered {
	start := from.AnchorPoint(sp.From)
	end := to.AnchorPoint(sp.To)
	if sp.FromCenter {
		start = from.AnchorPointFrom(to.Centroid())
	}
	if sp.ToCenter {
		end = to.AnchorPointFrom(from.Centroid())
	}

	pts := waypoints(sp, start, end)

	r := &Rendered{
		Spec:  sp,
		Path:  buildPath(pts),
		Color: sp.Color,
		Dash:  sp.Line.DashPattern(),
	}
	r.Decorations = placements(sp, pts)
	if sp.Animated {
		r.Marker = &Marker{Period: MarkerPeriod, PathLength: r.Path.Length()}
	}
	return r
}

// Dim marks the rendered connector as outside the active highlight set:
// the stroke takes the given dimmed color and the traveling marker is
// removed outright rather than hidden, so no animation cycles are spent
// on an invisible marker.
func (r *Rendered) Dim(color string) {
	r.Dimmed = true
	r.Color = color
	r.Marker = nil
}

// Shape returns the routing shape the waypoint offsets imply:
// "Z" for both offsets, "L" for one, "S" for none. Degenerate straight
// connectors are decided per routing call, not here.
func (sp *Spec) Shape() string {
	switch {
	case sp.StartOffset != nil && sp.EndOffset != nil:
		return "Z"
	case sp.StartOffset != nil || sp.EndOffset != nil:
		return "L"
	}
	return "S"
}

// waypoints returns the ordered corner points of the connector, start and
// end included, before corner rounding.
func waypoints(sp *Spec, start, end math32.Vector2) []math32.Vector2 {
	delta := end.Sub(start)
	if math32.Abs(delta.X) < straightThreshold || math32.Abs(delta.Y) < straightThreshold {
		return []math32.Vector2{start, end}
	}

	switch {
	case sp.StartOffset != nil && sp.EndOffset != nil:
		return zShape(sp, start, end)
	case sp.StartOffset != nil:
		axis, sign := travel(sp.From, sp.To, start, end)
		return []math32.Vector2{start, along(start, axis, sign**sp.StartOffset), end}
	case sp.EndOffset != nil:
		axis, sign := travel(sp.To, sp.From, end, start)
		return []math32.Vector2{start, along(end, axis, sign**sp.EndOffset), end}
	}
	return sShape(sp, start, end)
}

// sShape is the default 3-segment path: corners at 25% and 75% of the
// dominant-axis distance, joined by a diagonal bridge segment.
func sShape(sp *Spec, start, end math32.Vector2) []math32.Vector2 {
	delta := end.Sub(start)
	if geom.Orientation(sp.From, sp.To, start, end) == geom.Horizontal {
		return []math32.Vector2{
			start,
			math32.Vec2(start.X+delta.X*0.25, start.Y),
			math32.Vec2(start.X+delta.X*0.75, end.Y),
			end,
		}
	}
	return []math32.Vector2{
		start,
		math32.Vec2(start.X, start.Y+delta.Y*0.25),
		math32.Vec2(end.X, start.Y+delta.Y*0.75),
		end,
	}
}

// zShape is the 4-segment path used when both waypoint offsets are given:
// corner-1 at the start offset along the start axis, corner-3 at the end
// offset along the end axis, bridged by corner-2 for perpendicular axis
// combinations or by a direct diagonal segment when both ends share an axis.
func zShape(sp *Spec, start, end math32.Vector2) []math32.Vector2 {
	a1, s1 := travel(sp.From, sp.To, start, end)
	a2, s2 := travel(sp.To, sp.From, end, start)
	c1 := along(start, a1, s1**sp.StartOffset)
	c3 := along(end, a2, s2**sp.EndOffset)

	switch {
	case a1 == geom.Horizontal && a2 == geom.Vertical:
		// horizontal departure turns vertical at corner-2: H, V, H, V
		return []math32.Vector2{start, c1, math32.Vec2(c1.X, c3.Y), c3, end}
	case a1 == geom.Vertical && a2 == geom.Horizontal:
		return []math32.Vector2{start, c1, math32.Vec2(c3.X, c1.Y), c3, end}
	}
	return []math32.Vector2{start, c1, c3, end}
}

// travel resolves the departure axis and sign for an endpoint. Sides with
// an inherent direction use it as is; a center anchor takes its axis from
// the orientation rule and its sign from the endpoint delta.
func travel(this, other geom.Side, thisPt, otherPt math32.Vector2) (geom.Axis, float32) {
	axis, sign := this.AxisSign()
	if sign != 0 {
		return axis, sign
	}
	axis = geom.Orientation(this, other, thisPt, otherPt)
	d := otherPt.Sub(thisPt)
	if axis == geom.Horizontal {
		return axis, math32.Sign(d.X)
	}
	return axis, math32.Sign(d.Y)
}

func along(p math32.Vector2, axis geom.Axis, dist float32) math32.Vector2 {
	if axis == geom.Horizontal {
		return math32.Vec2(p.X+dist, p.Y)
	}
	return math32.Vec2(p.X, p.Y+dist)
}

// buildPath emits the rounded-corner path for the given ordered points.
// Each corner's radius is computed from the Euclidean lengths of its
// actual adjoining segments, so a corner never overruns either one even
// when two corners share a segment.
func buildPath(pts []math32.Vector2) Path {
	pts = dedupe(pts)
	var p Path
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 1; i < len(pts)-1; i++ {
		prev, cur, next := pts[i-1], pts[i], pts[i+1]
		din := cur.Sub(prev)
		dout := next.Sub(cur)
		r := geom.SafeRadius(din.Length(), dout.Length(), geom.DefaultRadius)
		if r < 0.5 {
			p.LineTo(cur.X, cur.Y)
			continue
		}
		in := cur.Sub(din.Normal().MulScalar(r))
		out := cur.Add(dout.Normal().MulScalar(r))
		p.LineTo(in.X, in.Y)
		// in screen coordinates (y down), a positive cross product is a
		// clockwise turn, which is SVG sweep flag 1
		p.ArcTo(r, din.Cross(dout) > 0, out.X, out.Y)
	}
	last := pts[len(pts)-1]
	p.LineTo(last.X, last.Y)
	return p
}

func dedupe(pts []math32.Vector2) []math32.Vector2 {
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.DistanceTo(out[len(out)-1]) >= 0.5 {
			out = append(out, p)
		}
	}
	return out
}

// placements resolves the start and end decorations. Arrow angles follow
// the adjacent segment direction; circles sit at the literal anchor point
// regardless of the path shape.
func placements(sp *Spec, pts []math32.Vector2) []Placement {
	var out []Placement
	if sp.Start != None {
		d := pts[1].Sub(pts[0])
		out = append(out, Placement{
			Kind:  sp.Start,
			At:    pts[0],
			Angle: math32.Atan2(d.Y, d.X),
		})
	}
	if sp.End != None {
		n := len(pts)
		d := pts[n-1].Sub(pts[n-2])
		out = append(out, Placement{
			Kind:  sp.End,
			At:    pts[n-1],
			Angle: math32.Atan2(d.Y, d.X),
		})
	}
	return out
}
