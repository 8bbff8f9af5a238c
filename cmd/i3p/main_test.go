// Copyright (c) 2026, The Isometric 3D Presenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSceneOK(t *testing.T) {
	c := checkCmd()
	c.SetArgs([]string{"testdata/scene.yaml"})
	assert.NoError(t, c.Execute())
}

func TestLoadGeometry(t *testing.T) {
	m, err := loadGeometry("testdata/geometry.yaml")
	require.NoError(t, err)
	require.Len(t, m, 3)

	b, ok := m.Measure("db", true)
	require.True(t, ok)
	assert.Equal(t, float32(260), b.Min.X)
	assert.Equal(t, float32(360), b.Max.X)

	_, ok = m.Measure("nope", true)
	assert.False(t, ok)
}

func TestRoutesCommand(t *testing.T) {
	c := routesCmd()
	c.SetArgs([]string{"-g", "testdata/geometry.yaml", "testdata/scene.yaml"})
	assert.NoError(t, c.Execute())
}

func TestPlayCommand(t *testing.T) {
	c := playCmd()
	c.SetArgs([]string{"--hold", "50ms", "-g", "testdata/geometry.yaml", "testdata/scene.yaml"})
	assert.NoError(t, c.Execute())
}
