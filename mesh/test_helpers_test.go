// SPDX-License-Identifier: MIT
// Package mesh_test contains shared fixtures for mesh tests.
//
// Purpose:
//   - Build small, fully known meshes (triangle, two triangles, tetrahedron)
//     whose edge numbering is spelled out so tests can assert exact indices.
//   - Provide a panic helper that checks the wrapped sentinel.

package mesh_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedge/mesh"
)

// addVertices appends n unconnected vertices whose attribute index equals
// their vertex index, and returns their indices (v1..vn on a fresh mesh).
func addVertices(m *mesh.Mesh, n int) []mesh.VertexIndex {
	out := make([]mesh.VertexIndex, 0, n)
	for i := 0; i < n; i++ {
		attr := mesh.VertexAttr(m.VertexCount() + 1)
		out = append(out, m.AddVertex(mesh.Vertex{Attr: attr}))
	}
	return out
}

// twoTriangles builds f1 = (v1,v2,v3) and f2 adjacent to f1's second edge
// with apex v4.
//
//	f1: e1 v1→v2, e2 v2→v3, e3 v3→v1
//	f2: e4 v3→v2 (twin e2), e5 v2→v4, e6 v4→v3
func twoTriangles(t *testing.T) (*mesh.Mesh, []mesh.VertexIndex) {
	t.Helper()
	m := mesh.NewMesh()
	vs := addVertices(m, 4)
	f1 := m.AddTriangle(vs[0], vs[1], vs[2])
	m.AddAdjacentTriangle(vs[3], m.FaceFn(f1).Edge().Next().Index)
	return m, vs
}

// tetrahedron builds the closed umbrella: f1 = (v1,v2,v3) and three
// adjacent triangles meeting at v4, then stitches their side edges.
//
//	f1: e1 v1→v2,  e2 v2→v3,  e3 v3→v1
//	f2: e4 v2→v1,  e5 v1→v4,  e6 v4→v2   (e4 twin e1)
//	f3: e7 v3→v2,  e8 v2→v4,  e9 v4→v3   (e7 twin e2)
//	f4: e10 v1→v3, e11 v3→v4, e12 v4→v1  (e10 twin e3)
//	stitched: e5↔e12, e6↔e8, e9↔e11
func tetrahedron(t *testing.T) (*mesh.Mesh, []mesh.VertexIndex) {
	t.Helper()
	m := mesh.NewMesh()
	vs := addVertices(m, 4)
	f1 := m.AddTriangle(vs[0], vs[1], vs[2])
	root := m.FaceFn(f1).Edge()
	m.AddAdjacentTriangle(vs[3], root.Index)
	m.AddAdjacentTriangle(vs[3], root.Next().Index)
	m.AddAdjacentTriangle(vs[3], root.Next().Next().Index)
	m.SetTwinEdges(5, 12)
	m.SetTwinEdges(6, 8)
	m.SetTwinEdges(9, 11)
	require.Equal(t, 12, m.EdgeCount())
	return m, vs
}

// loopOf collects the edge loop of face f.
func loopOf(m *mesh.Mesh, f mesh.FaceIndex) []mesh.EdgeIndex {
	return slices.Collect(m.Edges(f).Seq())
}

// collectVertices collects the vertices around face f.
func collectVertices(m *mesh.Mesh, f mesh.FaceIndex) []mesh.VertexIndex {
	return slices.Collect(m.Vertices(f).Seq())
}

// edges converts plain ints to edge indices for compact expectations.
func edges(ids ...int) []mesh.EdgeIndex {
	out := make([]mesh.EdgeIndex, len(ids))
	for i, id := range ids {
		out[i] = mesh.EdgeIndex(id)
	}
	return out
}

// requirePanicIs runs fn and requires it to panic with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
