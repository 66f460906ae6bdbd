// SPDX-License-Identifier: MIT
// Package mesh_test verifies the whole-face builders and twin stitching.
//
// Purpose:
//   - Lock in loop closure and uniform face tagging after every builder.
//   - Lock in the adjacency contract of AddAdjacentTriangle.
//   - Lock in the closed umbrella (tetrahedron) twin symmetry.

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedge/mesh"
)

// requireClosedLoop checks that f's loop has exactly sides edges, returns to
// its root, and is uniformly tagged with f.
func requireClosedLoop(t *testing.T, m *mesh.Mesh, f mesh.FaceIndex, sides int) {
	t.Helper()
	loop := loopOf(m, f)
	require.Len(t, loop, sides)
	root := m.Face(f).Edge
	require.Equal(t, root, loop[0])
	require.Equal(t, root, m.Edge(loop[len(loop)-1]).Next, "loop must return to its root")
	for _, e := range loop {
		require.Equal(t, f, m.Edge(e).Face, "edge %v", e)
		require.True(t, m.Edge(e).IsValid(), "edge %v", e)
	}
}

func TestAddTriangle(t *testing.T) {
	m := mesh.NewMesh()
	vs := addVertices(m, 3)

	f := m.AddTriangle(vs[0], vs[1], vs[2])
	require.Equal(t, mesh.FaceIndex(1), f)
	requireClosedLoop(t, m, f, 3)

	assert.Equal(t, edges(1, 2, 3), loopOf(m, f))
	assert.Equal(t, vs[1], m.FaceFn(f).Edge().Next().Vertex().Index)
	for _, e := range loopOf(m, f) {
		assert.True(t, m.Edge(e).IsBoundary())
	}
	assert.NoError(t, m.Validate())
}

func TestAddAdjacentTriangle(t *testing.T) {
	m, vs := twoTriangles(t)

	f1, f2 := mesh.FaceIndex(1), mesh.FaceIndex(2)
	shared := m.FaceFn(f1).Edge().Next() // e2: v2→v3
	requireClosedLoop(t, m, f1, 3)
	requireClosedLoop(t, m, f2, 3)

	root := m.FaceFn(f2).Edge()
	assert.Equal(t, shared.Index, root.Twin().Index)
	assert.Equal(t, root.Index, shared.Twin().Index)
	assert.Equal(t, shared.Vertex().Index, root.Next().Vertex().Index)
	assert.Equal(t, vs[2], root.Vertex().Index, "root starts where the shared edge ends")
	assert.Equal(t, vs[3], root.Prev().Vertex().Index)
	assert.NoError(t, m.Validate())
}

func TestAddPolygon_Triangle(t *testing.T) {
	m := mesh.NewMesh()
	vs := addVertices(m, 3)

	f := m.AddPolygon(vs)
	requireClosedLoop(t, m, f, 3)
	assert.Equal(t, 3, m.EdgeCount())
}

func TestAddPolygon_NGon(t *testing.T) {
	for _, n := range []int{4, 5, 8} {
		m := mesh.NewMesh()
		vs := addVertices(m, n)

		f := m.AddPolygon(vs)
		requireClosedLoop(t, m, f, n)
		assert.Equal(t, n, m.EdgeCount(), "one half-edge per vertex for n=%d", n)
		assert.Equal(t, vs, collectVertices(m, f))
		assert.Equal(t, mesh.EdgeIndex(1), m.Face(f).Edge)
		assert.NoError(t, m.Validate())
	}
}

func TestUmbrella_ClosedAndSymmetric(t *testing.T) {
	m, vs := tetrahedron(t)

	assert.Equal(t, 4, m.FaceCount())
	faces := m.Faces()
	for f, ok := faces.Next(); ok; f, ok = faces.Next() {
		requireClosedLoop(t, m, f, 3)
	}
	for e := mesh.EdgeIndex(1); int(e) <= m.EdgeCount(); e++ {
		twin := m.Edge(e).Twin
		require.True(t, twin.IsValid(), "edge %v", e)
		require.Equal(t, e, m.Edge(twin).Twin, "edge %v", e)
	}

	// The apex resolves identically through each outer face's root edge.
	for _, f := range []mesh.FaceIndex{2, 3, 4} {
		apex := m.FaceFn(f).Edge().Next().Next().Vertex().Index
		assert.Equal(t, vs[3], apex, "face %v", f)
	}
	assert.NoError(t, m.Validate())
}

func TestPairTwins_StitchesOppositeBoundaries(t *testing.T) {
	m := mesh.NewMesh()
	vs := addVertices(m, 4)
	m.AddTriangle(vs[0], vs[1], vs[2]) // e2: v2→v3
	m.AddTriangle(vs[2], vs[1], vs[3]) // e4: v3→v2

	assert.Equal(t, 1, m.PairTwins())
	assert.Equal(t, mesh.EdgeIndex(4), m.Edge(2).Twin)
	assert.Equal(t, mesh.EdgeIndex(2), m.Edge(4).Twin)
	assert.Equal(t, 0, m.PairTwins(), "already paired edges are left alone")
	assert.Equal(t, 4, m.Stats().BoundaryEdges)
	assert.NoError(t, m.Validate())
}

func TestPairTwins_IgnoresSameDirection(t *testing.T) {
	m := mesh.NewMesh()
	vs := addVertices(m, 4)
	m.AddTriangle(vs[0], vs[1], vs[2])
	m.AddTriangle(vs[1], vs[2], vs[3]) // v2→v3 again, same direction

	assert.Equal(t, 0, m.PairTwins())
}
