// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/VIIgit/isometric-3d-presenter/scene"
)

// Opacities configures the alpha applied to each color channel of a
// dimmed node.
type Opacities struct {
	Background float32
	Border     float32
	Text       float32
	Stroke     float32
	Fill       float32
}

// DefaultOpacities are the stock dim levels.
var DefaultOpacities = Opacities{
	Background: 0.2,
	Border:     0.2,
	Text:       0.3,
	Stroke:     0.25,
	Fill:       0.25,
}

// rgba is a parsed color with a separate alpha in [0,1].
type rgba struct {
	r, g, b uint8
	a       float32
}

// parseColor parses the color forms scene descriptions use: #rgb and
// #rrggbb hex, rgb()/rgba() functional notation, and SVG color names.
func parseColor(s string) (rgba, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "":
		return rgba{}, false
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return rgba{}, false
		}
		r, g, b := c.RGB255()
		return rgba{r, g, b, 1}, true
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return rgba{c.R, c.G, c.B, 1}, true
	}
	return rgba{}, false
}

func parseRGBFunc(s string) (rgba, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if open < 0 || end < open {
		return rgba{}, false
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return rgba{}, false
	}
	var c rgba
	c.a = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return rgba{}, false
		}
		switch i {
		case 0:
			c.r = uint8(v)
		case 1:
			c.g = uint8(v)
		case 2:
			c.b = uint8(v)
		case 3:
			c.a = float32(v)
		}
	}
	return c, true
}

// DimColor returns the given color at its alpha reduced by the given
// factor, in rgba() notation. Colors that cannot be parsed are returned
// unchanged, so an exotic authored value survives a dim/restore cycle.
func DimColor(s string, factor float32) string {
	c, ok := parseColor(s)
	if !ok {
		return s
	}
	a := c.a * factor
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b,
		strconv.FormatFloat(float64(a), 'g', 3, 32))
}

// dimColors applies the per-channel opacities to every set color.
func dimColors(c scene.Colors, op Opacities) scene.Colors {
	out := c
	if c.Background != "" {
		out.Background = DimColor(c.Background, op.Background)
	}
	if c.Border != "" {
		out.Border = DimColor(c.Border, op.Border)
	}
	if c.Text != "" {
		out.Text = DimColor(c.Text, op.Text)
	}
	if c.Stroke != "" {
		out.Stroke = DimColor(c.Stroke, op.Stroke)
	}
	if c.Fill != "" {
		out.Fill = DimColor(c.Fill, op.Fill)
	}
	return out
}
