// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package connector

import (
	"fmt"
	"strings"

	"github.com/VIIgit/isometric-3d-presenter/math32"
)

// Path is a collection of MoveTo, LineTo, and ArcTo commands, each followed
// by the float32 coordinate data for it. To enable bidirectional processing,
// the command verb is also added to the end of the coordinate data.
// The last two coordinate values before the trailing verb are the end point
// position of the pen after the action (x,y). ArcTo defines a circular
// rounded-corner transition (r, sweep, x, y), where sweep is 0 or 1
// following the SVG arc sweep flag.
type Path []float32

// Commands.
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	ArcTo  float32 = 2
)

var cmdLens = [3]int{4, 4, 6}

// CmdLen returns the overall length of the command, including
// the command verb at both ends.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Pos returns the current pen position, which is the end point of the
// last command.
func (p Path) Pos() math32.Vector2 {
	if len(p) > 0 {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// Start returns the position of the first MoveTo command.
func (p Path) Start() math32.Vector2 {
	if len(p) >= cmdLens[int(MoveTo)] && p[0] == MoveTo {
		return math32.Vec2(p[1], p[2])
	}
	return math32.Vector2{}
}

// MoveTo moves the pen to (x,y) without drawing.
func (p *Path) MoveTo(x, y float32) {
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a straight segment to (x,y). Zero-length segments are dropped.
func (p *Path) LineTo(x, y float32) {
	if p.Pos().DistanceTo(math32.Vec2(x, y)) < 1e-4 {
		return
	}
	*p = append(*p, LineTo, x, y, LineTo)
}

// ArcTo adds a circular rounded-corner arc of the given radius to (x,y).
// sweep selects the turn direction per the SVG arc sweep flag. A zero
// radius degrades to a straight segment.
func (p *Path) ArcTo(r float32, sweep bool, x, y float32) {
	if r <= 0 {
		p.LineTo(x, y)
		return
	}
	if p.Pos().DistanceTo(math32.Vec2(x, y)) < 1e-4 {
		return
	}
	sw := float32(0)
	if sweep {
		sw = 1
	}
	*p = append(*p, ArcTo, r, sw, x, y, ArcTo)
}

// NumSegments returns the number of drawn segments (LineTo and ArcTo
// commands) in the path.
func (p Path) NumSegments() int {
	n := 0
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		if p[i] != MoveTo {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of all command end points.
func (p Path) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		n := CmdLen(p[i])
		b = b.ExpandByPoint(math32.Vec2(p[i+n-3], p[i+n-2]))
	}
	return b
}

// Length returns the total drawn length of the path. Straight segments are
// exact; rounded corners are measured along their circular arc, recovered
// from the chord and radius.
func (p Path) Length() float32 {
	var total float32
	pos := math32.Vector2{}
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		cmd := p[i]
		n := CmdLen(cmd)
		end := math32.Vec2(p[i+n-3], p[i+n-2])
		switch cmd {
		case LineTo:
			total += pos.DistanceTo(end)
		case ArcTo:
			r := p[i+1]
			chord := pos.DistanceTo(end)
			if r > 0 {
				half := math32.Min(1, chord/(2*r))
				total += 2 * r * math32.Asin(half)
			} else {
				total += chord
			}
		}
		pos = end
	}
	return total
}

// String returns the path as SVG path data, with coordinates rounded to
// two decimal places.
func (p Path) String() string {
	var sb strings.Builder
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch p[i] {
		case MoveTo:
			fmt.Fprintf(&sb, "M %s %s", num(p[i+1]), num(p[i+2]))
		case LineTo:
			fmt.Fprintf(&sb, "L %s %s", num(p[i+1]), num(p[i+2]))
		case ArcTo:
			fmt.Fprintf(&sb, "A %s %s 0 0 %d %s %s",
				num(p[i+1]), num(p[i+1]), int(p[i+2]), num(p[i+3]), num(p[i+4]))
		}
	}
	return sb.String()
}

func num(v float32) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
