// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presenter

import (
	"testing"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/camera"
	"github.com/VIIgit/isometric-3d-presenter/connector"
	"github.com/VIIgit/isometric-3d-presenter/geom"
	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/VIIgit/isometric-3d-presenter/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMeasurer struct {
	rects  map[string]math32.Box2
	passes int
}

func (f *fakeMeasurer) Measure(id string, flat bool) (math32.Box2, bool) {
	f.passes++
	b, ok := f.rects[id]
	return b, ok
}

func testDescription() *scene.Description {
	root := &scene.Node{Children: []*scene.Node{
		{ID: "app", Groups: []string{"frontend"},
			ActivateGroups: []string{"frontend"},
			Colors:         scene.Colors{Background: "#ffffff"}},
		{ID: "db", Groups: []string{"db"},
			Colors: scene.Colors{Background: "#336699"}},
	}}
	root.Init()
	return &scene.Description{
		Root: root,
		Connectors: []*connector.Spec{
			{FromID: "app", ToID: "db", From: geom.Right, To: geom.Left,
				Color: "#e91e63", Animated: true, Groups: []string{"db"}},
			{FromID: "app", ToID: "db", From: geom.Bottom, To: geom.Top,
				Color: "#00bcd4", Groups: []string{"frontend"}},
			{FromID: "app", ToID: "ghost", From: geom.Right, To: geom.Left},
		},
		Points: []*scene.NavigationPoint{
			{Index: 0, SectionID: "intro", ElementID: "app",
				Rotation:       scene.RotationField{Mode: scene.FieldLiteral, Value: [3]float32{30, 0, -40}},
				Zoom:           scene.ScalarField{Mode: scene.FieldLiteral, Value: 1.5},
				Pan:            scene.PanField{Mode: scene.FieldKeep},
				ActivateGroups: []string{"db"},
				Duration:       50 * time.Millisecond},
			{Index: 1, ElementID: "db",
				Rotation: scene.RotationField{Mode: scene.FieldKeep},
				Duration: 50 * time.Millisecond},
		},
	}
}

func testPresenter() (*Presenter, *fakeMeasurer) {
	m := &fakeMeasurer{rects: map[string]math32.Box2{
		"app": math32.B2(0, 0, 50, 50),
		"db":  math32.B2(200, 100, 250, 150),
	}}
	p := New(testDescription(), m, Config{Viewport: math32.B2(0, 0, 800, 600)})
	return p, m
}

func settle(p *Presenter) {
	for i := 0; i < 1000; i++ {
		if !p.Frame(10 * time.Millisecond) {
			return
		}
	}
}

func TestSettleSequence(t *testing.T) {
	p, _ := testPresenter()

	var redraws [][]*connector.Rendered
	p.OnConnectors = func(rs []*connector.Rendered) { redraws = append(redraws, rs) }
	var events []NavigationChange
	p.OnNavigation = func(ev NavigationChange) { events = append(events, ev) }
	var matched []string
	p.OnHighlight = func(ids []string) { matched = ids }

	p.Machine.NavigateToIndex(0, nil)
	assert.Empty(t, redraws, "no connector recomputation while interpolating")
	settle(p)

	pose := p.Machine.Pose()
	assert.Equal(t, float32(30), pose.RotationX)
	assert.Equal(t, float32(-40), pose.RotationZ)
	assert.Equal(t, float32(1.5), pose.Zoom)

	// once per settle, not per frame
	require.Len(t, redraws, 1)
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].Index)
	assert.Equal(t, "app", events[0].ElementID)
	assert.Equal(t, "intro", events[0].SectionID)
	assert.Same(t, p.desc.Root.FindID("app"), events[0].Node)
	assert.Equal(t, []string{"db"}, matched)
	assert.Equal(t, []string{"db"}, p.ActiveGroups())

	// all nodes with db membership end highlighted, disjoint ones dimmed
	assert.Equal(t, scene.Highlighted, p.desc.Root.FindID("db").State)
	assert.Equal(t, scene.Dimmed, p.desc.Root.FindID("app").State)
	assert.Equal(t, "rgba(255, 255, 255, 0.2)", p.desc.Root.FindID("app").Colors.Background)
}

func TestConnectorGating(t *testing.T) {
	p, _ := testPresenter()
	var rendered []*connector.Rendered
	p.OnConnectors = func(rs []*connector.Rendered) { rendered = rs }

	p.Machine.NavigateToIndex(0, nil)
	settle(p)

	// the ghost connector is skipped, the two resolvable ones survive
	require.Len(t, rendered, 2)

	active := rendered[0]
	assert.False(t, active.Dimmed)
	assert.Equal(t, "#e91e63", active.Color)
	require.NotNil(t, active.Marker, "active animated connector keeps its marker")

	dimmed := rendered[1]
	assert.True(t, dimmed.Dimmed)
	assert.Nil(t, dimmed.Marker)
	assert.Equal(t, "rgba(0, 188, 212, 0.25)", dimmed.Color)
}

func TestOverviewClearsHighlights(t *testing.T) {
	p, _ := testPresenter()
	p.Machine.NavigateToIndex(0, nil)
	settle(p)
	require.Equal(t, []string{"db"}, p.ActiveGroups())

	p.Machine.ResetToDefault(nil)
	settle(p)
	assert.Nil(t, p.ActiveGroups())
	assert.Equal(t, scene.HighlightNone, p.desc.Root.FindID("app").State)
	assert.Equal(t, "#ffffff", p.desc.Root.FindID("app").Colors.Background)
}

func TestSnapshotReusedUntilInvalidated(t *testing.T) {
	p, m := testPresenter()
	p.Redraw()
	first := m.passes
	require.Greater(t, first, 0)

	p.Redraw()
	assert.Equal(t, first, m.passes, "snapshot cache is reused across redraws")

	p.InvalidateGeometry()
	p.Redraw()
	assert.Greater(t, m.passes, first, "stale snapshot triggers one resnapshot")
}

func TestAutoPanCentersBookmarkedElement(t *testing.T) {
	p, _ := testPresenter()
	p.Machine.NavigateToIndex(1, nil)
	settle(p)

	// flat rect of db is (200,100)-(250,150), pose stays identity at zoom 1:
	// pan = viewport center - projected centroid
	assert.Equal(t, math32.Vec2(400-225, 300-125), p.Machine.Pose().Pan)
}

func TestActivateNode(t *testing.T) {
	p, _ := testPresenter()
	var rendered []*connector.Rendered
	p.OnConnectors = func(rs []*connector.Rendered) { rendered = rs }

	p.ActivateNode("app")
	assert.Equal(t, []string{"frontend"}, p.ActiveGroups())
	require.Len(t, rendered, 2)
	assert.True(t, rendered[0].Dimmed, "db connector is outside the frontend set")
	assert.False(t, rendered[1].Dimmed)

	// unknown id is a warned no-op
	p.ActivateNode("nope")
	assert.Equal(t, []string{"frontend"}, p.ActiveGroups())
}

func TestHighlightClearIsIdempotent(t *testing.T) {
	p, _ := testPresenter()
	p.Highlight([]string{"db"})
	p.Highlight(nil)
	bg := p.desc.Root.FindID("app").Colors.Background
	p.Highlight(nil)
	assert.Equal(t, bg, p.desc.Root.FindID("app").Colors.Background)
	assert.Equal(t, "#ffffff", bg)
}

func TestDefaultPoseZoomClamped(t *testing.T) {
	p := New(testDescription(), &fakeMeasurer{rects: map[string]math32.Box2{}},
		Config{DefaultPose: camera.Pose{Zoom: 9}})
	assert.Equal(t, float32(camera.ZoomMax), p.Machine.Pose().Zoom)
}
