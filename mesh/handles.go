// SPDX-License-Identifier: MIT
//
// File: handles.go
// Role: Chained navigation handles (EdgeFn, FaceFn, VertexFn) over a Mesh.
// Policy:
//   - Handles hold an index and the mesh, nothing else; they copy freely.
//   - Every step goes through the value accessors, so walking off the
//     connectivity yields the sentinel instead of panicking.

package mesh

// EdgeFn bundles an edge index with its mesh for chained navigation:
//
//	m.FaceFn(f).Edge().Next().Twin().Vertex().Index
//
// Each step resolves through the mesh's read accessors, so a chain that
// walks off the connectivity lands on the sentinel and reports invalid
// rather than failing.
type EdgeFn struct {
	mesh  *Mesh
	Index EdgeIndex
}

// FaceFn bundles a face index with its mesh.
type FaceFn struct {
	mesh  *Mesh
	Index FaceIndex
}

// VertexFn bundles a vertex index with its mesh.
type VertexFn struct {
	mesh  *Mesh
	Index VertexIndex
}

// EdgeFn returns a navigation handle for edge i.
func (m *Mesh) EdgeFn(i EdgeIndex) EdgeFn { return EdgeFn{mesh: m, Index: i} }

// FaceFn returns a navigation handle for face i.
func (m *Mesh) FaceFn(i FaceIndex) FaceFn { return FaceFn{mesh: m, Index: i} }

// VertexFn returns a navigation handle for vertex i.
func (m *Mesh) VertexFn(i VertexIndex) VertexFn { return VertexFn{mesh: m, Index: i} }

// Data returns the edge the handle names.
func (h EdgeFn) Data() Edge { return h.mesh.Edge(h.Index) }

// Next moves to the next edge of the loop.
func (h EdgeFn) Next() EdgeFn { return h.mesh.EdgeFn(h.Data().Next) }

// Prev moves to the previous edge of the loop.
func (h EdgeFn) Prev() EdgeFn { return h.mesh.EdgeFn(h.Data().Prev) }

// Twin moves to the opposing half-edge.
func (h EdgeFn) Twin() EdgeFn { return h.mesh.EdgeFn(h.Data().Twin) }

// Face moves to the face the edge bounds.
func (h EdgeFn) Face() FaceFn { return h.mesh.FaceFn(h.Data().Face) }

// Vertex moves to the edge's origin.
func (h EdgeFn) Vertex() VertexFn { return h.mesh.VertexFn(h.Data().Vertex) }

// IsValid reports whether the named edge is fully formed.
func (h EdgeFn) IsValid() bool { return h.Data().IsValid() }

// Data returns the face the handle names.
func (h FaceFn) Data() Face { return h.mesh.Face(h.Index) }

// Edge moves to the face's root edge.
func (h FaceFn) Edge() EdgeFn { return h.mesh.EdgeFn(h.Data().Edge) }

// IsValid reports whether the named face has a root edge.
func (h FaceFn) IsValid() bool { return h.Data().IsValid() }

// Data returns the vertex the handle names.
func (h VertexFn) Data() Vertex { return h.mesh.Vertex(h.Index) }

// Edge moves to the vertex's outgoing edge.
func (h VertexFn) Edge() EdgeFn { return h.mesh.EdgeFn(h.Data().Edge) }

// IsValid reports whether the named vertex is connected.
func (h VertexFn) IsValid() bool { return h.Data().IsValid() }
