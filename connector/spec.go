// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package connector routes annotated connector lines between two anchor
// rectangles in projected 2D space, producing orthogonal rounded-corner
// paths plus start/end decorations and an optional traveling marker.
package connector

import (
	"time"

	"github.com/VIIgit/isometric-3d-presenter/geom"
	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// LineStyle is the stroke style of a connector line.
type LineStyle int32

const (
	Solid LineStyle = iota
	Dashed
	Dotted
)

func (l LineStyle) String() string {
	switch l {
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	}
	return "solid"
}

// ParseLineStyle returns the [LineStyle] for the given scene-description
// name, defaulting to [Solid].
func ParseLineStyle(name string) LineStyle {
	switch name {
	case "dashed":
		return Dashed
	case "dotted":
		return Dotted
	}
	return Solid
}

// DashPattern returns the stroke dash array for the style,
// or nil for a solid line.
func (l LineStyle) DashPattern() []float32 {
	switch l {
	case Dashed:
		return []float32{8, 4}
	case Dotted:
		return []float32{2, 3}
	}
	return nil
}

// Decoration is a start or end ornament on a connector line.
type Decoration int32

const (
	None Decoration = iota

	// Arrow is a small open arrow head.
	Arrow

	// FullArrow is a filled arrow head.
	FullArrow

	// Circle is a circular marker drawn at the literal anchor point,
	// regardless of the path shape.
	Circle

	// ArrowCircle combines a filled arrow head with a circular marker.
	ArrowCircle
)

func (d Decoration) String() string {
	switch d {
	case Arrow:
		return "arrow"
	case FullArrow:
		return "full-arrow"
	case Circle:
		return "circle"
	case ArrowCircle:
		return "arrow-circle"
	}
	return "none"
}

// ParseDecoration returns the [Decoration] for the given scene-description
// name, defaulting to [None].
func ParseDecoration(name string) Decoration {
	switch name {
	case "arrow":
		return Arrow
	case "full-arrow":
		return FullArrow
	case "circle":
		return Circle
	case "arrow-circle":
		return ArrowCircle
	}
	return None
}

// Spec describes one connector between two scene elements.
// Specs are built once from the scene description and are read-only
// afterward; routing never mutates them.
type Spec struct {

	// FromID and ToID are the scene element ids of the two endpoints.
	FromID string
	ToID   string

	// From and To are the anchor sides on the respective elements.
	From geom.Side
	To   geom.Side

	// FromCenter and ToCenter use the centroid plus the fixed departure
	// nudge instead of the edge midpoint, for center anchors that should
	// visibly leave the shape.
	FromCenter bool
	ToCenter   bool

	// Color is the stroke color of the line at full strength.
	Color string

	// StartOffset and EndOffset are optional waypoint magnitudes measured
	// from the respective endpoint along its natural axis. They are always
	// non-negative; the travel sign is derived from the anchor side.
	StartOffset *float32
	EndOffset   *float32

	Line  LineStyle
	Start Decoration
	End   Decoration

	// Animated attaches a traveling marker that loops over the path while
	// the connector is in the active highlight state.
	Animated bool

	// Groups gate the connector's highlight state: the connector is active
	// when any of these intersects the active group set (or when no
	// explicit highlight is active).
	Groups []string
}

// Placement is a resolved decoration: its kind, position, and the
// direction of the path at that point, in radians.
type Placement struct {
	Kind  Decoration
	At    math32.Vector2
	Angle float32
}

// MarkerPeriod is the time a traveling marker takes to traverse a
// connector path end to end.
const MarkerPeriod = 3 * time.Second

// Marker is the animation directive for a traveling marker: it traverses
// the path end to end once per period, looping indefinitely.
type Marker struct {
	Period     time.Duration
	PathLength float32
}

// Rendered is the routed, renderable form of one connector.
type Rendered struct {
	Spec *Spec
	Path Path

	// Color is the effective stroke color, already dimmed if the
	// connector was routed in the dimmed highlight state.
	Color string

	// Dash is the stroke dash array, or nil for a solid line.
	Dash []float32

	Decorations []Placement

	// Marker is the traveling marker directive; it is nil, not paused,
	// when the connector is dimmed.
	Marker *Marker

	// Dimmed reports whether the connector is outside the active
	// highlight group set.
	Dimmed bool
}
