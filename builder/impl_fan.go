// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// impl_fan.go - implementation of Fan(n).
//
// Canonical model:
//   • One hub h and a rim r0..rn; triangle i is (h, r_i, r_i+1).
//   • Triangle 0 comes from AddTriangle; every later one from
//     AddAdjacentTriangle on the previous triangle's closing edge r_i→h,
//     so spokes are paired while building.
//
// Counts: V = n+2, F = n, E = 3n, boundary edges = n+2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hedge/mesh"
)

const (
	methodFan = "Fan"
	minFan    = 1
)

// Fan returns a Constructor that builds n triangles sharing one hub vertex.
func Fan(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if n < minFan {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodFan, n, minFan, ErrTooFewVertices)
		}

		hub := addVertices(m, cfg, 1)[0]
		rim := addVertices(m, cfg, n+1)

		f := m.AddTriangle(hub, rim[0], rim[1])
		for i := 2; i <= n; i++ {
			// closing edge of the previous triangle runs rim[i-1]→hub
			closing := m.FaceFn(f).Edge().Prev().Index
			f = m.AddAdjacentTriangle(rim[i], closing)
		}

		return nil
	}
}
