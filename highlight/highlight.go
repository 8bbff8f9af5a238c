// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight computes the tri-state highlight classification of a
// scene tree for an active set of group keys, and applies a reversible
// color-dimming transform to the nodes outside it.
package highlight

import (
	"slices"

	"github.com/VIIgit/isometric-3d-presenter/scene"
)

// Propagator owns the highlight state of one widget instance: the active
// group set and the cache of original colors for currently dimmed nodes.
type Propagator struct {
	root *scene.Node
	op   Opacities

	// active is the current group set; nil means no explicit highlight,
	// everything at full strength.
	active []string

	// saved holds the authored colors of currently dimmed nodes,
	// captured on first dim and discarded on restore.
	saved map[*scene.Node]scene.Colors
}

// New returns a [Propagator] for the given scene tree using
// [DefaultOpacities].
func New(root *scene.Node) *Propagator {
	return NewWithOpacities(root, DefaultOpacities)
}

// NewWithOpacities returns a [Propagator] with custom dim levels.
func NewWithOpacities(root *scene.Node, op Opacities) *Propagator {
	return &Propagator{root: root, op: op, saved: map[*scene.Node]scene.Colors{}}
}

// Active returns the active group set, or nil if no explicit highlight
// is active.
func (p *Propagator) Active() []string {
	return p.active
}

// IsActive returns whether the given groups intersect the active set.
// With no explicit highlight active, everything is active.
func (p *Propagator) IsActive(groups []string) bool {
	if p.active == nil {
		return true
	}
	for _, g := range groups {
		if slices.Contains(p.active, g) {
			return true
		}
	}
	return false
}

// Apply classifies every node against the requested group set and
// applies the dimming transform, returning the ids of the matched nodes
// in tree order. A nil or empty set clears any active highlight and
// restores all dimmed colors; clearing twice is a no-op. A new set always
// fully clears first and reclassifies from scratch, never diffing
// against the previous set.
func (p *Propagator) Apply(groups []string) []string {
	p.clear()
	if len(groups) == 0 {
		return nil
	}
	p.active = slices.Clone(groups)
	var matched []string
	p.visit(p.root, false, groups, &matched)
	return matched
}

// visit classifies the subtree rooted at n. The pre-order pass decides
// highlighted/inherited from the parent state; the bottom-up return value
// says whether anything in the subtree matched, which is what separates a
// merely not-highlighted ancestor from a dimmable one.
func (p *Propagator) visit(n *scene.Node, parentOn bool, groups []string, matched *[]string) bool {
	match := n.MemberOfAny(groups)
	if match && n.ID != "" {
		*matched = append(*matched, n.ID)
	}
	any := match
	for _, c := range n.Children {
		if p.visit(c, match || parentOn, groups, matched) {
			any = true
		}
	}
	switch {
	case match:
		n.State = scene.Highlighted
	case parentOn || any:
		n.State = scene.Inherited
	default:
		n.State = scene.Dimmed
		p.dim(n)
	}
	return any
}

func (p *Propagator) dim(n *scene.Node) {
	if n.Colors.IsZero() {
		return
	}
	if _, ok := p.saved[n]; !ok {
		p.saved[n] = n.Colors
	}
	n.Colors = dimColors(p.saved[n], p.op)
}

// clear restores every dimmed node's colors bit for bit, discards the
// cache entries, and removes the highlight state tree-wide.
func (p *Propagator) clear() {
	if p.active == nil && len(p.saved) == 0 {
		return
	}
	for n, orig := range p.saved {
		n.Colors = orig
		delete(p.saved, n)
	}
	p.root.WalkDown(func(n *scene.Node) bool {
		n.State = scene.HighlightNone
		return scene.Continue
	})
	p.active = nil
}
