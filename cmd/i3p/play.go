// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/VIIgit/isometric-3d-presenter/presenter"
	"github.com/VIIgit/isometric-3d-presenter/scene"
	"github.com/spf13/cobra"
)

func playCmd() *cobra.Command {
	var geomPath string
	var hold time.Duration
	c := &cobra.Command{
		Use:   "play <scene.yaml>",
		Short: "Simulate one autoplay cycle with synthetic frame ticks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := loadScene(args[0])
			if err != nil {
				return err
			}
			if len(desc.Points) == 0 {
				return fmt.Errorf("%s has no navigation points", args[0])
			}
			rects := rectMeasurer{}
			if geomPath != "" {
				if rects, err = loadGeometry(geomPath); err != nil {
					return err
				}
			}

			p := presenter.New(desc, rects, presenter.Config{})
			clock := time.Duration(0)
			arrivals := 0
			p.OnNavigation = func(ev presenter.NavigationChange) {
				arrivals++
				at := clock.Round(time.Millisecond)
				if ev.Index == scene.OverviewIndex {
					subtle.Printf("  %8s  overview\n", at)
					return
				}
				pose := p.Machine.Pose()
				fmt.Printf("  %8s  [%d] %s  rot(%g %g %g) zoom %g  %v\n",
					at, ev.Index, ev.ElementID,
					pose.RotationX, pose.RotationY, pose.RotationZ, pose.Zoom,
					p.ActiveGroups())
			}

			p.Machine.StartAutoplay(hold)

			// one full cycle visits every point plus the overview
			const dt = 16 * time.Millisecond
			for arrivals < len(desc.Points)+1 {
				p.Frame(dt)
				clock += dt
				if clock > time.Hour {
					return fmt.Errorf("autoplay did not complete a cycle")
				}
			}
			good.Printf("  cycle complete after %s\n", clock.Round(time.Millisecond))
			return nil
		},
	}
	c.Flags().StringVarP(&geomPath, "geometry", "g", "", "YAML map of element id to [x, y, w, h]")
	c.Flags().DurationVar(&hold, "hold", time.Second, "Hold time at each point")
	return c
}
