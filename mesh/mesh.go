// SPDX-License-Identifier: MIT
//
// File: mesh.go
// Role: Mesh aggregate, construction options, arena accessors, add-operations,
//       counts, cloning and clearing.
// Policy:
//   - Reads degrade to the sentinel element; they never fail.
//   - Mutable access to the sentinel is forbidden (nil); out-of-range is a precondition violation.
//   - Add-operations only append; indices handed out stay valid until a removal relocates them.

package mesh

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Mesh owns the vertex, edge and face arenas exclusively.
//
// Each arena starts with a single sentinel element at index 0. All
// relationships between components are indices resolved against the mesh.
// A Mesh is not safe for concurrent use.
type Mesh struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face

	logger *slog.Logger
}

// MeshOption configures a Mesh before first use.
type MeshOption func(m *Mesh)

// WithLogger routes debug diagnostics (removals, validation failures) to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) MeshOption {
	return func(m *Mesh) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCapacity preallocates room for the given number of vertices, edges and
// faces (sentinels excluded). Panics on negative values.
func WithCapacity(vertices, edges, faces int) MeshOption {
	if vertices < 0 || edges < 0 || faces < 0 {
		panic(fmt.Sprintf("mesh: WithCapacity(%d, %d, %d): capacities must be ≥ 0", vertices, edges, faces))
	}
	return func(m *Mesh) {
		m.vertices = slices.Grow(m.vertices, vertices)
		m.edges = slices.Grow(m.edges, edges)
		m.faces = slices.Grow(m.faces, faces)
	}
}

// NewMesh creates a Mesh whose arenas hold only their sentinel elements.
// Complexity: O(1) plus any requested preallocation.
func NewMesh(opts ...MeshOption) *Mesh {
	m := &Mesh{
		vertices: []Vertex{{}},
		edges:    []Edge{{}},
		faces:    []Face{{}},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Vertex returns the vertex at i, or the sentinel vertex when i is out of range.
func (m *Mesh) Vertex(i VertexIndex) Vertex {
	if m.hasVertex(i) {
		return m.vertices[i]
	}
	return m.vertices[InvalidIndex]
}

// Edge returns the edge at i, or the sentinel edge when i is out of range.
func (m *Mesh) Edge(i EdgeIndex) Edge {
	if m.hasEdge(i) {
		return m.edges[i]
	}
	return m.edges[InvalidIndex]
}

// Face returns the face at i, or the sentinel face when i is out of range.
func (m *Mesh) Face(i FaceIndex) Face {
	if m.hasFace(i) {
		return m.faces[i]
	}
	return m.faces[InvalidIndex]
}

// VertexMut returns a pointer to the vertex at i, or nil for the sentinel.
// The pointer is invalidated by the next AddVertex.
func (m *Mesh) VertexMut(i VertexIndex) *Vertex {
	if !i.IsValid() {
		return nil
	}
	if !m.hasVertex(i) {
		precondition(false, ErrIndexOutOfRange, "VertexMut(%d): %d vertices", i, len(m.vertices))
		return nil
	}
	return &m.vertices[i]
}

// EdgeMut returns a pointer to the edge at i, or nil for the sentinel.
// The pointer is invalidated by the next add or remove on the edge arena.
func (m *Mesh) EdgeMut(i EdgeIndex) *Edge {
	if !i.IsValid() {
		return nil
	}
	if !m.hasEdge(i) {
		precondition(false, ErrIndexOutOfRange, "EdgeMut(%d): %d edges", i, len(m.edges))
		return nil
	}
	return &m.edges[i]
}

// FaceMut returns a pointer to the face at i, or nil for the sentinel.
func (m *Mesh) FaceMut(i FaceIndex) *Face {
	if !i.IsValid() {
		return nil
	}
	if !m.hasFace(i) {
		precondition(false, ErrIndexOutOfRange, "FaceMut(%d): %d faces", i, len(m.faces))
		return nil
	}
	return &m.faces[i]
}

// AddVertex appends v and returns its index.
func (m *Mesh) AddVertex(v Vertex) VertexIndex {
	m.vertices = append(m.vertices, v)
	return VertexIndex(len(m.vertices) - 1)
}

// AddEdge appends e as-is (no links are established) and returns its index.
func (m *Mesh) AddEdge(e Edge) EdgeIndex {
	m.edges = append(m.edges, e)
	return EdgeIndex(len(m.edges) - 1)
}

// AddFace appends f as-is (its loop is not tagged) and returns its index.
func (m *Mesh) AddFace(f Face) FaceIndex {
	m.faces = append(m.faces, f)
	return FaceIndex(len(m.faces) - 1)
}

// VertexCount returns the number of vertices, sentinel excluded.
func (m *Mesh) VertexCount() int { return len(m.vertices) - 1 }

// EdgeCount returns the number of half-edges, sentinel excluded.
func (m *Mesh) EdgeCount() int { return len(m.edges) - 1 }

// FaceCount returns the number of faces, sentinel excluded.
func (m *Mesh) FaceCount() int { return len(m.faces) - 1 }

// Stats is a point-in-time summary of a mesh. Sentinels are never counted.
type Stats struct {
	Vertices          int
	Edges             int
	Faces             int
	ConnectedVertices int // vertices with an outgoing edge
	BoundaryEdges     int // half-edges without a twin
}

// Stats returns a summary snapshot.
// Complexity: O(V+E).
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices: m.VertexCount(),
		Edges:    m.EdgeCount(),
		Faces:    m.FaceCount(),
	}
	for _, v := range m.vertices[1:] {
		if v.IsValid() {
			s.ConnectedVertices++
		}
	}
	for _, e := range m.edges[1:] {
		if e.IsBoundary() {
			s.BoundaryEdges++
		}
	}

	return s
}

// String implements fmt.Stringer.
func (m *Mesh) String() string {
	return fmt.Sprintf("Half-Edge Mesh { %d vertices, %d edges, %d faces }",
		m.VertexCount(), m.EdgeCount(), m.FaceCount())
}

// Clone returns a deep copy of the mesh. Indices are preserved, so any index
// valid on m is valid on the clone. The logger is shared.
// Complexity: O(V+E+F).
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices: slices.Clone(m.vertices),
		edges:    slices.Clone(m.edges),
		faces:    slices.Clone(m.faces),
		logger:   m.logger,
	}
}

// Clear drops every component, leaving only the sentinels. Options applied
// at construction (logger) are preserved; capacity is retained.
func (m *Mesh) Clear() {
	m.vertices = append(m.vertices[:0], Vertex{})
	m.edges = append(m.edges[:0], Edge{})
	m.faces = append(m.faces[:0], Face{})
}

func (m *Mesh) hasVertex(i VertexIndex) bool { return i >= 0 && int(i) < len(m.vertices) }
func (m *Mesh) hasEdge(i EdgeIndex) bool     { return i >= 0 && int(i) < len(m.edges) }
func (m *Mesh) hasFace(i FaceIndex) bool     { return i >= 0 && int(i) < len(m.faces) }
