// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/connector"
	"github.com/VIIgit/isometric-3d-presenter/geom"
	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
nodes:
  - id: app
    groups: [frontend]
    colors:
      background: "#ffffff"
    children:
      - id: spa
        groups: [frontend, js]
  - id: db
    groups: [db]
connectors:
  - from: app
    to: db
    fromAnchor: left
    toAnchor: bottom
    color: "#e91e63"
    waypoints: [40, 30]
    line: dashed
    end: full-arrow
    animated: true
    groups: [db]
  - to: db
navigation:
  - section: intro
    element: app
    rotation: "30.0.-40"
    zoom: "1.5"
    groups: [db]
  - section: broken
    rotation: "30.-40"
  - section: deep
    element: db
    pan: "50,-20"
    duration: 500ms
`

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(testScene))
	require.NoError(t, err)

	require.NotNil(t, d.Root.FindID("spa"))
	assert.Equal(t, "app", d.Root.FindID("spa").Parent.ID)

	// the connector without a from id is skipped, not fatal
	require.Len(t, d.Connectors, 1)
	sp := d.Connectors[0]
	assert.Equal(t, geom.Left, sp.From)
	assert.Equal(t, geom.Bottom, sp.To)
	assert.Equal(t, connector.Dashed, sp.Line)
	assert.Equal(t, connector.FullArrow, sp.End)
	require.NotNil(t, sp.StartOffset)
	require.NotNil(t, sp.EndOffset)
	assert.Equal(t, float32(40), *sp.StartOffset)
	assert.Equal(t, float32(30), *sp.EndOffset)
	assert.True(t, sp.Animated)

	// the malformed rotation is skipped and later points keep their order
	require.Len(t, d.Points, 2)
	p0 := d.Points[0]
	assert.Equal(t, 0, p0.Index)
	assert.Equal(t, FieldLiteral, p0.Rotation.Mode)
	assert.Equal(t, [3]float32{30, 0, -40}, p0.Rotation.Value)
	assert.Equal(t, float32(1.5), p0.Zoom.Value)
	assert.Equal(t, FieldUnset, p0.Pan.Mode)
	assert.Equal(t, []string{"db"}, p0.ActivateGroups)

	p1 := d.Points[1]
	assert.Equal(t, 1, p1.Index)
	assert.Equal(t, math32.Vec2(50, -20), p1.Pan.Value)
	assert.Equal(t, 500*time.Millisecond, p1.Duration)
}

func TestParseRotation(t *testing.T) {
	f, err := ParseRotation("30.0.-40")
	require.NoError(t, err)
	assert.Equal(t, FieldLiteral, f.Mode)
	assert.Equal(t, [3]float32{30, 0, -40}, f.Value)

	f, err = ParseRotation("keep")
	require.NoError(t, err)
	assert.Equal(t, FieldKeep, f.Mode)

	f, err = ParseRotation("default")
	require.NoError(t, err)
	assert.Equal(t, FieldDefault, f.Mode)

	f, err = ParseRotation("")
	require.NoError(t, err)
	assert.Equal(t, FieldUnset, f.Mode)

	_, err = ParseRotation("30.0")
	assert.Error(t, err)
	_, err = ParseRotation("a.b.c")
	assert.Error(t, err)
}

func TestParseZoomAndPan(t *testing.T) {
	z, err := ParseZoom("1.5")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), z.Value)

	_, err = ParseZoom("huge")
	assert.Error(t, err)

	p, err := ParsePan("50, -20")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(50, -20), p.Value)

	p, err = ParsePan("default")
	require.NoError(t, err)
	assert.Equal(t, FieldDefault, p.Mode)

	_, err = ParsePan("50")
	assert.Error(t, err)
}

func TestLoadNegativeWaypointNormalized(t *testing.T) {
	d, err := Load(strings.NewReader(`
connectors:
  - from: a
    to: b
    waypoints: [-25]
`))
	require.NoError(t, err)
	require.Len(t, d.Connectors, 1)
	require.NotNil(t, d.Connectors[0].StartOffset)
	assert.Equal(t, float32(25), *d.Connectors[0].StartOffset)
}
