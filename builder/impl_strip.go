// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// impl_strip.go - implementation of Strip(n).
//
// Canonical model:
//   • Vertices p0..p(n+1) zig-zag along a band; triangle i spans p_i, p_i+1, p_i+2.
//   • Triangle 0 is (p0, p1, p2). Each later triangle is attached with
//     AddAdjacentTriangle to the edge p_i→p_i+1 of its predecessor, which
//     alternates between the predecessor's second and third edge.
//
// Counts: V = n+2, F = n, E = 3n, boundary edges = n+2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hedge/mesh"
)

const (
	methodStrip = "Strip"
	minStrip    = 1
)

// Strip returns a Constructor that builds a band of n triangles with
// consistent orientation.
func Strip(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if n < minStrip {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStrip, n, minStrip, ErrTooFewVertices)
		}

		p := addVertices(m, cfg, n+2)
		f := m.AddTriangle(p[0], p[1], p[2])
		for i := 1; i < n; i++ {
			// Even triangles share their second edge, odd ones their third.
			shared := m.FaceFn(f).Edge().Next()
			if i%2 == 0 {
				shared = m.FaceFn(f).Edge().Prev()
			}
			f = m.AddAdjacentTriangle(p[i+2], shared.Index)
		}

		return nil
	}
}
