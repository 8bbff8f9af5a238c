// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/VIIgit/isometric-3d-presenter/scene"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <scene.yaml>",
		Short: "Validate a scene description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := loadScene(args[0])
			if err != nil {
				return err
			}

			ids := map[string]bool{}
			nodes := 0
			desc.Root.WalkDown(func(n *scene.Node) bool {
				nodes++
				if n.ID != "" {
					if ids[n.ID] {
						warn.Printf("  duplicate element id %q\n", n.ID)
					}
					ids[n.ID] = true
				}
				return scene.Continue
			})

			problems := 0
			for _, sp := range desc.Connectors {
				for _, id := range []string{sp.FromID, sp.ToID} {
					if !ids[id] {
						bad.Printf("  connector %s -> %s: unknown element %q\n",
							sp.FromID, sp.ToID, id)
						problems++
					}
				}
			}
			for _, pt := range desc.Points {
				if pt.ElementID != "" && !ids[pt.ElementID] {
					bad.Printf("  navigation point %d: unknown element %q\n",
						pt.Index, pt.ElementID)
					problems++
				}
			}

			fmt.Printf("  %d nodes, %d connectors, %d navigation points\n",
				nodes, len(desc.Connectors), len(desc.Points))
			if problems > 0 {
				return fmt.Errorf("%d problem(s)", problems)
			}
			good.Println("  ok")
			return nil
		},
	}
}
