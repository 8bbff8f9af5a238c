// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VIIgit/isometric-3d-presenter/connector"
	"github.com/VIIgit/isometric-3d-presenter/geom"
)

// Description is a fully loaded scene: the node tree, the connector
// specs, and the ordered navigation points.
type Description struct {
	Root       *Node
	Connectors []*connector.Spec
	Points     []*NavigationPoint
}

// description is the raw YAML form.
type description struct {
	Nodes      []*Node         `yaml:"nodes"`
	Connectors []connectorSpec `yaml:"connectors"`
	Navigation []navPoint      `yaml:"navigation"`
}

type connectorSpec struct {
	From       string     `yaml:"from"`
	To         string     `yaml:"to"`
	FromAnchor string     `yaml:"fromAnchor"`
	ToAnchor   string     `yaml:"toAnchor"`
	FromCenter bool       `yaml:"fromCenter"`
	ToCenter   bool       `yaml:"toCenter"`
	Color      string     `yaml:"color"`
	Waypoints  []*float32 `yaml:"waypoints"`
	Line       string     `yaml:"line"`
	Start      string     `yaml:"start"`
	End        string     `yaml:"end"`
	Animated   bool       `yaml:"animated"`
	Groups     []string   `yaml:"groups"`
}

type navPoint struct {
	Section  string   `yaml:"section"`
	Element  string   `yaml:"element"`
	Rotation string   `yaml:"rotation"`
	Zoom     string   `yaml:"zoom"`
	Pan      string   `yaml:"pan"`
	Groups   []string `yaml:"groups"`
	Duration string   `yaml:"duration"`
}

// Load parses a YAML scene description. Malformed navigation points and
// connectors are skipped with a logged warning and the rest of the scene
// is kept; only an unreadable document is an error.
func Load(r io.Reader) (*Description, error) {
	var raw description
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	d := &Description{Root: &Node{}}
	d.Root.Children = raw.Nodes
	d.Root.Init()

	for i := range raw.Connectors {
		c := &raw.Connectors[i]
		sp, err := c.spec()
		if err != nil {
			slog.Warn("scene: skipping connector", "from", c.From, "to", c.To, "err", err)
			continue
		}
		d.Connectors = append(d.Connectors, sp)
	}

	for i := range raw.Navigation {
		pt, err := raw.Navigation[i].point(len(d.Points))
		if err != nil {
			slog.Warn("scene: skipping navigation point", "index", i, "err", err)
			continue
		}
		d.Points = append(d.Points, pt)
	}
	return d, nil
}

func (c *connectorSpec) spec() (*connector.Spec, error) {
	if c.From == "" || c.To == "" {
		return nil, fmt.Errorf("connector needs both from and to ids")
	}
	if len(c.Waypoints) > 2 {
		return nil, fmt.Errorf("at most two waypoint offsets, got %d", len(c.Waypoints))
	}
	sp := &connector.Spec{
		FromID:     c.From,
		ToID:       c.To,
		From:       geom.ParseSide(c.FromAnchor),
		To:         geom.ParseSide(c.ToAnchor),
		FromCenter: c.FromCenter,
		ToCenter:   c.ToCenter,
		Color:      c.Color,
		Line:       connector.ParseLineStyle(c.Line),
		Start:      connector.ParseDecoration(c.Start),
		End:        connector.ParseDecoration(c.End),
		Animated:   c.Animated,
		Groups:     c.Groups,
	}
	if len(c.Waypoints) > 0 {
		sp.StartOffset = nonNegative(c.Waypoints[0])
	}
	if len(c.Waypoints) > 1 {
		sp.EndOffset = nonNegative(c.Waypoints[1])
	}
	return sp, nil
}

// nonNegative keeps the caller contract that waypoint offsets are
// magnitudes: the travel sign comes from the anchor side, never from
// the offset itself.
func nonNegative(v *float32) *float32 {
	if v == nil || *v >= 0 {
		return v
	}
	n := -*v
	return &n
}

func (p *navPoint) point(index int) (*NavigationPoint, error) {
	rot, err := ParseRotation(p.Rotation)
	if err != nil {
		return nil, err
	}
	zoom, err := ParseZoom(p.Zoom)
	if err != nil {
		return nil, err
	}
	pan, err := ParsePan(p.Pan)
	if err != nil {
		return nil, err
	}
	pt := &NavigationPoint{
		Index:          index,
		SectionID:      p.Section,
		ElementID:      p.Element,
		Rotation:       rot,
		Zoom:           zoom,
		Pan:            pan,
		ActivateGroups: p.Groups,
	}
	if p.Duration != "" {
		dur, err := time.ParseDuration(p.Duration)
		if err != nil {
			return nil, fmt.Errorf("duration %q: %w", p.Duration, err)
		}
		pt.Duration = dur
	}
	return pt, nil
}
