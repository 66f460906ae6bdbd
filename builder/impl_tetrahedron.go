// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// impl_tetrahedron.go - implementation of Tetrahedron().
//
// Canonical model:
//   • Vertices a, b, c, d; faces (a,b,c), (a,d,b), (b,d,c), (c,d,a).
//   • All four faces are wound consistently, so every half-edge meets its
//     reverse exactly once and stitching yields a closed surface.
//
// Counts: V = 4, F = 4, E = 12, boundary edges = 0 (12 without stitching).

package builder

import "github.com/katalvlaran/hedge/mesh"

// tetraFaces lists the faces of the tetrahedron by local vertex slot.
var tetraFaces = [4][3]int{
	{0, 1, 2},
	{0, 3, 1},
	{1, 3, 2},
	{2, 3, 0},
}

// Tetrahedron returns a Constructor that adds a closed tetrahedral surface.
func Tetrahedron() Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		vs := addVertices(m, cfg, 4)
		for _, f := range tetraFaces {
			m.AddTriangle(vs[f[0]], vs[f[1]], vs[f[2]])
		}

		return nil
	}
}
