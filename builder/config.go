// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • attrFn = ordinal+1 (attribute equals the vertex index)
//   • stitch = true      (open boundaries are paired after construction)

package builder

import "github.com/katalvlaran/hedge/mesh"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// attrFn maps the zero-based vertex ordinal within the mesh to its attribute.
	attrFn func(int) int
	// stitch runs Mesh.PairTwins once every constructor has finished.
	stitch bool
}

// defaultAttr makes a vertex attribute equal to its (1-based) arena index.
func defaultAttr(ordinal int) int { return ordinal + 1 }

// newBuilderConfig resolves opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		attrFn: defaultAttr,
		stitch: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// addVertices appends n vertices to m and returns their indices in order.
// Attributes are taken from cfg.attrFn, keyed by the mesh-wide ordinal.
// Complexity: O(n).
func addVertices(m *mesh.Mesh, cfg builderConfig, n int) []mesh.VertexIndex {
	vs := make([]mesh.VertexIndex, n)
	for i := range vs {
		ordinal := m.VertexCount()
		vs[i] = m.AddVertex(mesh.Vertex{Attr: mesh.VertexAttr(cfg.attrFn(ordinal))})
	}

	return vs
}
