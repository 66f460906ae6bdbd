// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// impl_polygon.go - single-face constructors: Triangle() and Polygon(n).
//
// Contract:
//   • Triangle adds 3 vertices and one face; Polygon(n) adds n vertices and
//     one face with n half-edges.
//   • n ≥ 3 (else ErrTooFewVertices).
//   • No twins are paired; every edge is a boundary.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hedge/mesh"
)

const (
	methodTriangle  = "Triangle"
	methodPolygon   = "Polygon"
	minPolygonSides = 3
)

// Triangle returns a Constructor that adds one isolated triangle.
func Triangle() Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		vs := addVertices(m, cfg, 3)
		m.AddTriangle(vs[0], vs[1], vs[2])

		return nil
	}
}

// Polygon returns a Constructor that adds one isolated n-gon, vertices in
// counter-clockwise creation order.
func Polygon(n int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if n < minPolygonSides {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPolygon, n, minPolygonSides, ErrTooFewVertices)
		}
		m.AddPolygon(addVertices(m, cfg, n))

		return nil
	}
}
