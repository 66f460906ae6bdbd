// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// impl_grid.go - implementation of QuadGrid(rows, cols) constructor.
//
// Canonical model:
//   • (rows+1)×(cols+1) lattice vertices in row-major order.
//   • One quad per cell (r,c): v(r,c) → v(r,c+1) → v(r+1,c+1) → v(r+1,c).
//   • Quads are emitted independently with AddPolygon; neighbouring cells are
//     paired by the stitching pass.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Counts: V = (rows+1)(cols+1), F = rows·cols, E = 4·rows·cols,
// boundary edges = 2(rows+cols) once stitched.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable face order: row-major over cells.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hedge/mesh"
)

const (
	methodQuadGrid = "QuadGrid"
	minGridDim     = 1
)

// QuadGrid returns a Constructor that builds a rows×cols grid of quads.
func QuadGrid(rows, cols int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodQuadGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		stride := cols + 1
		lattice := addVertices(m, cfg, (rows+1)*stride)
		at := func(r, c int) mesh.VertexIndex { return lattice[r*stride+c] }

		quad := make([]mesh.VertexIndex, 4)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				quad[0], quad[1], quad[2], quad[3] = at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)
				m.AddPolygon(quad)
			}
		}

		return nil
	}
}
