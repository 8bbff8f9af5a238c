// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene tree consumed by the presenter: nodes
// with group memberships and authored colors, navigation points, and the
// declarative YAML scene description loader.
package scene

import (
	"slices"

	"github.com/jinzhu/copier"
)

// Highlight is the rendered highlight state of a node, written by the
// highlight propagator and read by the renderer.
type Highlight int32

const (
	// HighlightNone is the default state when no explicit highlight is
	// active; everything renders at full strength.
	HighlightNone Highlight = iota

	// Highlighted nodes are members of an active group.
	Highlighted

	// Inherited nodes render at full strength without glowing: they are
	// descendants of a highlighted node, or ancestors of a match that
	// must stay readable for context.
	Inherited

	// Dimmed nodes have no match anywhere in their subtree and render
	// with reduced-alpha colors.
	Dimmed
)

func (h Highlight) String() string {
	switch h {
	case Highlighted:
		return "highlighted"
	case Inherited:
		return "inherited"
	case Dimmed:
		return "dimmed"
	}
	return "none"
}

// Colors are the authored color strings of a node. The highlight
// propagator replaces them with reduced-alpha versions while the node is
// dimmed and restores the originals on clearing.
type Colors struct {
	Background string `yaml:"background,omitempty"`
	Border     string `yaml:"border,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Stroke     string `yaml:"stroke,omitempty"`
	Fill       string `yaml:"fill,omitempty"`
}

// IsZero returns whether no colors are set.
func (c Colors) IsZero() bool {
	return c == Colors{}
}

// Node is one element of the scene tree. The tree is owned by the scene
// builder; the presenter core only reads memberships and writes the
// derived highlight state and color overrides.
type Node struct {

	// ID identifies the node for anchor measurement and connector
	// endpoints. It may be empty for purely structural nodes.
	ID string `yaml:"id,omitempty"`

	// Classes are styling hints passed through to the renderer.
	// The presenter core never interprets them.
	Classes []string `yaml:"classes,omitempty"`

	// Groups are the highlight groups this node is a member of.
	Groups []string `yaml:"groups,omitempty"`

	// ActivateGroups are the groups a pointer activation of this node
	// should highlight.
	ActivateGroups []string `yaml:"activate,omitempty"`

	// Colors are the authored colors; see [Colors].
	Colors Colors `yaml:"colors,omitempty"`

	Children []*Node `yaml:"children,omitempty"`

	// Parent is set by [Node.Init] after loading.
	Parent *Node `yaml:"-" copier:"-"`

	// State is the derived highlight state, written by the propagator.
	State Highlight `yaml:"-" copier:"-"`
}

// Tree walking:

const (
	// Continue = true can be returned from tree iteration functions to
	// continue processing down the tree, as compared to Break = false,
	// which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on this node and all of its children
// in depth-first pre order. It skips a branch if the function returns
// [Break] for its root, and keeps going if it returns [Continue].
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if n == nil || !fun(n) {
		return
	}
	for _, c := range n.Children {
		c.WalkDown(fun)
	}
}

// Init sets parent pointers throughout the tree. It is called by the
// loader and must be called again after structural changes.
func (n *Node) Init() {
	for _, c := range n.Children {
		c.Parent = n
		c.Init()
	}
}

// FindID returns the first node in the tree with the given id,
// or nil if there is none.
func (n *Node) FindID(id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	n.WalkDown(func(k *Node) bool {
		if found != nil {
			return Break
		}
		if k.ID == id {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// MemberOfAny returns whether any of the node's own group memberships is
// in the given set.
func (n *Node) MemberOfAny(groups []string) bool {
	for _, g := range n.Groups {
		if slices.Contains(groups, g) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of this node and its subtree, detached from
// any parent. Derived highlight state is not carried over.
func (n *Node) Clone() *Node {
	nc := &Node{}
	if err := copier.CopyWithOption(nc, n, copier.Option{DeepCopy: true}); err != nil {
		return nil
	}
	nc.Parent = nil
	nc.Init()
	return nc
}
