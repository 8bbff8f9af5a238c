// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// OverviewIndex is the reserved navigation index meaning "overview":
// the default pose with no bookmark active.
const OverviewIndex = -1

// FieldMode says how a navigation point treats one pose field.
type FieldMode int32

const (
	// FieldUnset means the field was not given. Rotation and zoom keep
	// their current values; pan falls back to auto-centering on the
	// bookmarked element.
	FieldUnset FieldMode = iota

	// FieldLiteral uses the literal value carried by the field.
	FieldLiteral

	// FieldKeep keeps the camera's current value.
	FieldKeep

	// FieldDefault returns to the instance's default value.
	FieldDefault
)

// ScalarField is an optional scalar pose field (zoom).
type ScalarField struct {
	Mode  FieldMode
	Value float32
}

// RotationField is an optional rotation pose field, in degrees per axis.
type RotationField struct {
	Mode  FieldMode
	Value [3]float32
}

// PanField is an optional pan pose field, in pixels.
type PanField struct {
	Mode  FieldMode
	Value math32.Vector2
}

// NavigationPoint is a bookmarked viewpoint: a pre-authored camera pose
// plus optional highlight groups. Points are created once from the scene
// description and are read-only afterward.
type NavigationPoint struct {

	// Index is the position of the point in the authored order.
	Index int

	// SectionID links the point to an external document section for
	// scroll synchronization.
	SectionID string

	// ElementID is the bookmarked scene element, used for auto-centering
	// and reported on navigation events.
	ElementID string

	Rotation RotationField
	Zoom     ScalarField
	Pan      PanField

	// ActivateGroups are applied to the highlight propagator when the
	// camera settles on this point.
	ActivateGroups []string

	// Duration overrides the default interpolation duration when nonzero.
	Duration time.Duration
}

// Keyword sentinels accepted by the pose field parsers.
const (
	keepKeyword    = "keep"
	defaultKeyword = "default"
)

// ParseRotation parses a rotation literal in the dotted x.y.z degree form
// used by scene descriptions, e.g. "30.0.-40", or one of the keyword
// sentinels "keep" and "default".
func ParseRotation(s string) (RotationField, error) {
	switch s {
	case "":
		return RotationField{}, nil
	case keepKeyword:
		return RotationField{Mode: FieldKeep}, nil
	case defaultKeyword:
		return RotationField{Mode: FieldDefault}, nil
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return RotationField{}, fmt.Errorf("rotation %q: need x.y.z degrees", s)
	}
	f := RotationField{Mode: FieldLiteral}
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return RotationField{}, fmt.Errorf("rotation %q: %w", s, err)
		}
		f.Value[i] = float32(v)
	}
	return f, nil
}

// ParseZoom parses a zoom literal or keyword sentinel.
func ParseZoom(s string) (ScalarField, error) {
	switch s {
	case "":
		return ScalarField{}, nil
	case keepKeyword:
		return ScalarField{Mode: FieldKeep}, nil
	case defaultKeyword:
		return ScalarField{Mode: FieldDefault}, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return ScalarField{}, fmt.Errorf("zoom %q: %w", s, err)
	}
	return ScalarField{Mode: FieldLiteral, Value: float32(v)}, nil
}

// ParsePan parses a pan literal in the "x,y" pixel form, or a keyword
// sentinel. An empty value leaves the field unset, which means
// auto-centering on the bookmarked element.
func ParsePan(s string) (PanField, error) {
	switch s {
	case "":
		return PanField{}, nil
	case keepKeyword:
		return PanField{Mode: FieldKeep}, nil
	case defaultKeyword:
		return PanField{Mode: FieldDefault}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return PanField{}, fmt.Errorf("pan %q: need x,y pixels", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return PanField{}, fmt.Errorf("pan %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return PanField{}, fmt.Errorf("pan %q: %w", s, err)
	}
	return PanField{Mode: FieldLiteral, Value: math32.Vec2(float32(x), float32(y))}, nil
}
