// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presenter ties one widget instance together: the camera state
// machine, the highlight propagator, and the connector router, sequenced
// so that connectors are recomputed once per settle against the final
// clamped pose and the already-applied highlight state, never against an
// in-flight interpolation frame.
package presenter

import (
	"log/slog"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/camera"
	"github.com/VIIgit/isometric-3d-presenter/connector"
	"github.com/VIIgit/isometric-3d-presenter/geom"
	"github.com/VIIgit/isometric-3d-presenter/highlight"
	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/VIIgit/isometric-3d-presenter/scene"
)

// Measurer is the layout/measurement capability the presenter consumes.
// Measure returns the anchor rectangle of an element, either in the flat
// 2D reference pose (the stable basis for connector geometry) or under
// the current transform. It reports false for unknown elements.
type Measurer interface {
	Measure(id string, flat bool) (math32.Box2, bool)
}

// NavigationChange is emitted once per completed navigation, for scroll
// synchronization and other external listeners.
type NavigationChange struct {
	Index     int
	ElementID string
	SectionID string

	// Node is the resolved bookmarked element, nil for the overview or
	// when the element id does not resolve.
	Node *scene.Node
}

// Config carries the per-instance construction options.
type Config struct {
	DefaultPose camera.Pose
	Limits      camera.Limits

	// Viewport is the projected screen area used for auto-centering.
	Viewport math32.Box2

	// Opacities overrides the default dim levels when non-nil.
	Opacities *highlight.Opacities
}

// Presenter is one widget instance. Multiple instances on one page share
// no state: each owns its pose, its highlight state, and its anchor
// snapshot cache.
type Presenter struct {
	desc     *scene.Description
	measurer Measurer
	viewport math32.Box2
	op       highlight.Opacities

	// Machine is the camera state machine; drive it through
	// [Presenter.Frame] and navigate through its methods.
	Machine *camera.Machine

	prop *highlight.Propagator

	// anchor snapshot cache, taken once per settle at the flat reference
	// pose; epoch counts dimension changes so a stale snapshot triggers
	// one resnapshot instead of drawing with wrong coordinates
	epoch     int
	snapEpoch int
	snapshots map[string]geom.Rect

	// OnConnectors publishes the routed connectors after every settle or
	// explicit redraw.
	OnConnectors func([]*connector.Rendered)

	// OnHighlight publishes the matched node ids after the highlight
	// set changes.
	OnHighlight func(matched []string)

	// OnNavigation is fired once per completed navigation.
	OnNavigation func(NavigationChange)
}

// New returns a presenter for the loaded scene description.
func New(desc *scene.Description, measurer Measurer, cfg Config) *Presenter {
	if cfg.Viewport.IsEmpty() || cfg.Viewport == (math32.Box2{}) {
		cfg.Viewport = math32.B2(0, 0, 1024, 768)
	}
	op := highlight.DefaultOpacities
	if cfg.Opacities != nil {
		op = *cfg.Opacities
	}
	p := &Presenter{
		desc:      desc,
		measurer:  measurer,
		viewport:  cfg.Viewport,
		op:        op,
		prop:      highlight.NewWithOpacities(desc.Root, op),
		snapshots: map[string]geom.Rect{},
		snapEpoch: -1,
	}
	p.Machine = camera.NewMachine(cfg.DefaultPose, cfg.Limits, desc.Points)
	p.Machine.AutoPan = p.autoPan
	p.Machine.OnArrive = p.settle
	return p
}

// Frame advances the widget by one frame delta and reports whether an
// interpolation is running. The host calls it on its display refresh
// callback; intermediate poses reach the renderer through
// [camera.Machine.OnPose].
func (p *Presenter) Frame(dt time.Duration) bool {
	return p.Machine.Tick(dt)
}

// ActiveGroups returns the active highlight group set, or nil when
// everything renders at full strength.
func (p *Presenter) ActiveGroups() []string {
	return p.prop.Active()
}

// Highlight applies the given group set programmatically and redraws.
// A nil set clears.
func (p *Presenter) Highlight(groups []string) []string {
	matched := p.prop.Apply(groups)
	if p.OnHighlight != nil {
		p.OnHighlight(matched)
	}
	p.Redraw()
	return matched
}

// ActivateNode applies the activation groups authored on the given node,
// as a pointer activation would. An unknown id degrades to a no-op with
// a logged warning.
func (p *Presenter) ActivateNode(id string) {
	n := p.desc.Root.FindID(id)
	if n == nil {
		slog.Warn("presenter: cannot activate unknown node", "id", id)
		return
	}
	p.Highlight(n.ActivateGroups)
}

// InvalidateGeometry marks all anchor snapshots stale after an element
// dimension change; the next redraw resnapshots before routing.
func (p *Presenter) InvalidateGeometry() {
	p.epoch++
}

// settle runs the once-per-settle sequence: bookmark highlight groups,
// connector recomputation, then the navigation event.
func (p *Presenter) settle(pt *scene.NavigationPoint, index int) {
	var groups []string
	if pt != nil {
		groups = pt.ActivateGroups
	}
	matched := p.prop.Apply(groups)
	if p.OnHighlight != nil {
		p.OnHighlight(matched)
	}
	p.Redraw()
	if p.OnNavigation != nil {
		ev := NavigationChange{Index: index}
		if pt != nil {
			ev.ElementID = pt.ElementID
			ev.SectionID = pt.SectionID
			ev.Node = p.desc.Root.FindID(pt.ElementID)
		}
		p.OnNavigation(ev)
	}
}

// Redraw recomputes every connector against the current snapshot and
// highlight state and publishes the result. Connectors with an
// unresolvable endpoint are skipped with a warning; a missing element
// never aborts the redraw.
func (p *Presenter) Redraw() {
	p.snapshot()
	rendered := make([]*connector.Rendered, 0, len(p.desc.Connectors))
	for _, sp := range p.desc.Connectors {
		from, okFrom := p.snapshots[sp.FromID]
		to, okTo := p.snapshots[sp.ToID]
		if !okFrom || !okTo {
			slog.Warn("presenter: skipping connector with unresolved anchor",
				"from", sp.FromID, "to", sp.ToID)
			continue
		}
		r := connector.Route(sp, from, to)
		if !p.prop.IsActive(sp.Groups) {
			r.Dim(highlight.DimColor(sp.Color, p.op.Stroke))
		}
		rendered = append(rendered, r)
	}
	if p.OnConnectors != nil {
		p.OnConnectors(rendered)
	}
}

// snapshot measures every identified element in the flat reference pose.
// The cache is reused across redraws until a dimension change bumps the
// epoch; it is never recomputed per frame.
func (p *Presenter) snapshot() {
	if p.snapEpoch == p.epoch {
		return
	}
	clear(p.snapshots)
	p.desc.Root.WalkDown(func(n *scene.Node) bool {
		if n.ID == "" {
			return scene.Continue
		}
		if box, ok := p.measurer.Measure(n.ID, true); ok {
			p.snapshots[n.ID] = geom.RectFromBox2(box)
		}
		return scene.Continue
	})
	p.snapEpoch = p.epoch
}

func (p *Presenter) autoPan(target camera.Pose, id string) (math32.Vector2, bool) {
	flat, ok := p.measurer.Measure(id, true)
	if !ok {
		return math32.Vector2{}, false
	}
	return camera.AutoCenterPan(target, flat, p.viewport), true
}
