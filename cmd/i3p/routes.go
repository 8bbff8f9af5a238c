// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/VIIgit/isometric-3d-presenter/connector"
	"github.com/VIIgit/isometric-3d-presenter/geom"
	"github.com/VIIgit/isometric-3d-presenter/math32"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// rectMeasurer serves element rectangles from a geometry file, standing
// in for the live layout a host widget would measure.
type rectMeasurer map[string]math32.Box2

func (m rectMeasurer) Measure(id string, flat bool) (math32.Box2, bool) {
	b, ok := m[id]
	return b, ok
}

// loadGeometry reads a YAML map of element id to [x, y, w, h].
func loadGeometry(path string) (rectMeasurer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string][4]float32
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("geometry %s: %w", path, err)
	}
	m := rectMeasurer{}
	for id, r := range raw {
		m[id] = math32.B2(r[0], r[1], r[0]+r[2], r[1]+r[3])
	}
	return m, nil
}

func routesCmd() *cobra.Command {
	var geomPath string
	c := &cobra.Command{
		Use:   "routes <scene.yaml>",
		Short: "Print routed connector paths as SVG path data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := loadScene(args[0])
			if err != nil {
				return err
			}
			rects, err := loadGeometry(geomPath)
			if err != nil {
				return err
			}

			for _, sp := range desc.Connectors {
				fb, okFrom := rects[sp.FromID]
				tb, okTo := rects[sp.ToID]
				if !okFrom || !okTo {
					warn.Printf("  %s -> %s: no geometry, skipped\n", sp.FromID, sp.ToID)
					continue
				}
				r := connector.Route(sp, geom.RectFromBox2(fb), geom.RectFromBox2(tb))
				fmt.Printf("  %s -> %s  %s  %s\n",
					sp.FromID, sp.ToID, subtle.Sprint(sp.Shape()), r.Path.String())
			}
			return nil
		},
	}
	c.Flags().StringVarP(&geomPath, "geometry", "g", "", "YAML map of element id to [x, y, w, h]")
	c.MarkFlagRequired("geometry")
	return c
}
