// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/VIIgit/isometric-3d-presenter/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literalPoint(index int, rot [3]float32, zoom float32) *scene.NavigationPoint {
	return &scene.NavigationPoint{
		Index:    index,
		Rotation: scene.RotationField{Mode: scene.FieldLiteral, Value: rot},
		Zoom:     scene.ScalarField{Mode: scene.FieldLiteral, Value: zoom},
		Pan:      scene.PanField{Mode: scene.FieldKeep},
		Duration: 100 * time.Millisecond,
	}
}

func testMachine() *Machine {
	points := []*scene.NavigationPoint{
		literalPoint(0, [3]float32{30, 0, -40}, 1.5),
		literalPoint(1, [3]float32{0, 45, 20}, 0.8),
	}
	return NewMachine(Pose{Zoom: 1}, DefaultLimits, points)
}

// settle ticks the machine in 10ms steps until it goes idle.
func settle(m *Machine) {
	for i := 0; i < 1000; i++ {
		if !m.Tick(10*time.Millisecond) && !m.Animating() {
			return
		}
	}
}

func TestEaseInOutQuad(t *testing.T) {
	assert.Equal(t, float32(0), EaseInOutQuad(0))
	assert.Equal(t, float32(0.5), EaseInOutQuad(0.5))
	assert.Equal(t, float32(1), EaseInOutQuad(1))
	prev := float32(0)
	for i := 1; i <= 10; i++ {
		v := EaseInOutQuad(float32(i) / 10)
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestNavigateToSettles(t *testing.T) {
	m := testMachine()
	var arrived []int
	m.OnArrive = func(pt *scene.NavigationPoint, index int) {
		arrived = append(arrived, index)
	}
	completions := 0
	m.NavigateToIndex(0, func() { completions++ })

	var poses []Pose
	m.OnPose = func(p Pose) { poses = append(poses, p) }
	settle(m)

	p := m.Pose()
	assert.Equal(t, float32(30), p.RotationX)
	assert.Equal(t, float32(0), p.RotationY)
	assert.Equal(t, float32(-40), p.RotationZ)
	assert.Equal(t, float32(1.5), p.Zoom)
	assert.Equal(t, StateAtBookmark, m.State())
	assert.Equal(t, 0, m.Bookmark())
	assert.Equal(t, 1, completions)
	assert.Equal(t, []int{0}, arrived)
	assert.NotEmpty(t, poses, "intermediate poses are published")
}

func TestNavigateClampsOutOfRange(t *testing.T) {
	points := []*scene.NavigationPoint{
		literalPoint(0, [3]float32{500, -500, 0}, 99),
	}
	m := NewMachine(Pose{Zoom: 1}, DefaultLimits, points)
	m.NavigateToIndex(0, nil)
	settle(m)

	p := m.Pose()
	assert.Equal(t, float32(90), p.RotationX)
	assert.Equal(t, float32(-90), p.RotationY)
	assert.Equal(t, float32(ZoomMax), p.Zoom)
}

func TestNavigateUnknownIndexIsNoOp(t *testing.T) {
	m := testMachine()
	m.NavigateToIndex(7, nil)
	assert.False(t, m.Animating())
	assert.Equal(t, StateDefault, m.State())
}

func TestSupersededNavigationNeverCompletes(t *testing.T) {
	m := testMachine()
	firstDone := false
	m.NavigateToIndex(0, func() { firstDone = true })
	m.Tick(30 * time.Millisecond)
	require.True(t, m.Animating())

	secondDone := false
	m.NavigateToIndex(1, func() { secondDone = true })
	settle(m)

	assert.False(t, firstDone, "superseded completion callback must not fire")
	assert.True(t, secondDone)
	assert.Equal(t, 1, m.Bookmark())
	assert.Equal(t, float32(45), m.Pose().RotationY)
}

func TestAdjustIsImmediateAndManual(t *testing.T) {
	m := testMachine()
	m.Adjust(Delta{Rotation: [3]float32{0, 0, 15}})
	assert.Equal(t, StateManual, m.State())
	assert.Equal(t, float32(15), m.Pose().RotationZ)
	assert.False(t, m.PanDirty(), "rotation does not dirty the pan")

	m.Adjust(Delta{Pan: math32.Vec2(5, 0)})
	assert.True(t, m.PanDirty())
}

func TestAdjustCancelsInterpolation(t *testing.T) {
	m := testMachine()
	done := false
	m.NavigateToIndex(0, func() { done = true })
	m.Tick(30 * time.Millisecond)
	m.Adjust(Delta{Zoom: 0.1})
	assert.False(t, m.Animating())
	settle(m)
	assert.False(t, done)
	assert.Equal(t, StateManual, m.State())
}

func TestNudgeDurations(t *testing.T) {
	m := testMachine()
	m.NudgeRotation([3]float32{0, 0, 5})
	require.True(t, m.Animating())
	settle(m)
	assert.Equal(t, float32(5), m.Pose().RotationZ)
	assert.Equal(t, StateManual, m.State())
	assert.False(t, m.PanDirty())

	m.NudgePan(math32.Vec2(10, 0))
	settle(m)
	assert.True(t, m.PanDirty())
}

func TestResetToDefault(t *testing.T) {
	m := testMachine()
	m.NavigateToIndex(1, nil)
	settle(m)
	require.Equal(t, 1, m.Bookmark())

	var arrivedIndex = 99
	m.OnArrive = func(pt *scene.NavigationPoint, index int) {
		assert.Nil(t, pt)
		arrivedIndex = index
	}
	m.ResetToDefault(nil)
	settle(m)

	assert.Equal(t, StateDefault, m.State())
	assert.Equal(t, scene.OverviewIndex, m.Bookmark())
	assert.Equal(t, scene.OverviewIndex, arrivedIndex)
	assert.Equal(t, Pose{Zoom: 1}, m.Pose())
}

func TestAutoCenterPanResolution(t *testing.T) {
	points := []*scene.NavigationPoint{
		{Index: 0, ElementID: "db",
			Rotation: scene.RotationField{Mode: scene.FieldKeep},
			Duration: 50 * time.Millisecond},
	}
	m := NewMachine(Pose{Zoom: 1}, DefaultLimits, points)
	m.AutoPan = func(target Pose, elementID string) (math32.Vector2, bool) {
		assert.Equal(t, "db", elementID)
		return math32.Vec2(120, -60), true
	}
	m.NavigateToIndex(0, nil)
	settle(m)
	assert.Equal(t, math32.Vec2(120, -60), m.Pose().Pan)
	assert.False(t, m.PanDirty(), "auto-centered pan is not a manual pan")
}

func TestAutoplayCyclesWithOverview(t *testing.T) {
	m := testMachine()
	var visited []int
	m.OnArrive = func(pt *scene.NavigationPoint, index int) {
		visited = append(visited, index)
	}
	m.StartAutoplay(50 * time.Millisecond)
	for i := 0; i < 400; i++ {
		m.Tick(10 * time.Millisecond)
	}
	require.GreaterOrEqual(t, len(visited), 4)
	assert.Equal(t, []int{0, 1, scene.OverviewIndex, 0}, visited[:4])
}

func TestManualInputCancelsAutoplay(t *testing.T) {
	m := testMachine()
	m.StartAutoplay(50 * time.Millisecond)
	require.True(t, m.AutoplayActive())
	m.Adjust(Delta{Zoom: 0.1})
	assert.False(t, m.AutoplayActive())
}

func TestLoadPersistedTwoStepReplay(t *testing.T) {
	m := testMachine()
	var arrived []int
	m.OnArrive = func(pt *scene.NavigationPoint, index int) {
		arrived = append(arrived, index)
	}
	m.LoadPersisted(Record{
		BookmarkIndex: 1,
		Pan:           math32.Vec2(50, -20),
		ManualPan:     true,
	})

	// first leg: the bookmark pose, with its settle notification
	for m.Animating() && len(arrived) == 0 {
		m.Tick(10 * time.Millisecond)
	}
	require.Equal(t, []int{1}, arrived)
	assert.Equal(t, math32.Vector2{}, m.Pose().Pan)
	require.True(t, m.Animating(), "second leg animates the manual delta")

	settle(m)
	assert.Equal(t, math32.Vec2(50, -20), m.Pose().Pan)
	assert.Equal(t, float32(45), m.Pose().RotationY, "bookmark rotation is kept")
	assert.Equal(t, StateManual, m.State())
	assert.True(t, m.PanDirty())
	assert.Equal(t, []int{1}, arrived, "the manual leg does not re-arrive")
}

func TestLoadPersistedUnknownBookmark(t *testing.T) {
	m := testMachine()
	m.LoadPersisted(Record{BookmarkIndex: 9})
	assert.False(t, m.Animating())
}

func TestEncodeRoundTrip(t *testing.T) {
	m := testMachine()
	m.NavigateToIndex(0, nil)
	settle(m)
	m.Adjust(Delta{Pan: math32.Vec2(50, -20)})

	rec := m.Encode()
	assert.Equal(t, 0, rec.BookmarkIndex)
	assert.Equal(t, math32.Vec2(50, -20), rec.Pan)
	assert.True(t, rec.ManualPan)
	assert.Equal(t, [3]float32{}, rec.Rotation)

	// replay on a fresh machine converges on the same pose
	m2 := testMachine()
	m2.LoadPersisted(rec)
	settle(m2)
	assert.Equal(t, m.Pose(), m2.Pose())
}

func TestProjectedCentroid(t *testing.T) {
	flat := math32.B2(90, 40, 110, 60)
	// identity pose: projection is the rect center
	p := ProjectedCentroid(Pose{Zoom: 1}, flat)
	assert.Equal(t, math32.Vec2(100, 50), p)

	// zoom scales the projection
	p = ProjectedCentroid(Pose{Zoom: 2}, flat)
	assert.Equal(t, math32.Vec2(200, 100), p)

	viewport := math32.B2(0, 0, 800, 600)
	pan := AutoCenterPan(Pose{Zoom: 1}, flat, viewport)
	assert.Equal(t, math32.Vec2(300, 250), pan)
}
