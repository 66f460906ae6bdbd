// SPDX-License-Identifier: MIT
//
// File: builders.go
// Role: Whole-face builders (triangle, adjacent triangle, polygon) and
//       boundary stitching.
// Determinism:
//   - Edges are allocated in loop order starting at the first vertex, so the
//     face's root edge is always the edge leaving the first vertex.

package mesh

// minPolygonSides is the smallest vertex count that closes a face.
const minPolygonSides = 3

// AddTriangle builds the loop a→b→c→a, creates a face for it and returns the
// face index. No twins are paired: every edge of the new face is a boundary.
func (m *Mesh) AddTriangle(a, b, c VertexIndex) FaceIndex {
	precondition(a.IsValid() && b.IsValid() && c.IsValid(), ErrInvalidIndex,
		"AddTriangle(%d, %d, %d)", a, b, c)

	e1 := m.EdgeFromVertex(a)
	e2 := m.ExtendEdgeLoop(b, e1)
	e3 := m.CloseEdgeLoop(c, e2, e1)

	face := m.AddFace(Face{Edge: e1})
	m.edges[e1].Face = face
	m.edges[e2].Face = face
	m.edges[e3].Face = face

	return face
}

// AddAdjacentTriangle builds a triangle sharing the undirected edge of twin.
// The new root edge is twin's opposite half; the second edge starts at twin's
// origin and the third at c. Returns the new face index.
func (m *Mesh) AddAdjacentTriangle(c VertexIndex, twin EdgeIndex) FaceIndex {
	precondition(c.IsValid(), ErrInvalidIndex, "AddAdjacentTriangle: vertex %d", c)
	precondition(twin.IsValid(), ErrInvalidIndex, "AddAdjacentTriangle: twin %d", twin)

	e1 := m.EdgeFromTwin(twin)
	b := m.Edge(twin).Vertex
	e2 := m.ExtendEdgeLoop(b, e1)
	e3 := m.CloseEdgeLoop(c, e2, e1)

	face := m.AddFace(Face{Edge: e1})
	m.edges[e1].Face = face
	m.edges[e2].Face = face
	m.edges[e3].Face = face

	return face
}

// AddPolygon builds one face from vs in order, one half-edge per vertex, and
// returns the face index. Three vertices delegate to AddTriangle.
//
// Fewer than three vertices, or any sentinel vertex, is a precondition
// violation. With assertions compiled out a short slice yields the sentinel
// face and allocates nothing.
func (m *Mesh) AddPolygon(vs []VertexIndex) FaceIndex {
	precondition(len(vs) >= minPolygonSides, ErrDegeneratePolygon, "AddPolygon: %d vertices", len(vs))
	for i, v := range vs {
		precondition(v.IsValid(), ErrInvalidIndex, "AddPolygon: vertex #%d", i)
	}

	n := len(vs)
	switch {
	case n < minPolygonSides:
		return FaceIndex(InvalidIndex)
	case n == minPolygonSides:
		return m.AddTriangle(vs[0], vs[1], vs[2])
	}

	face := m.AddFace(Face{})
	root := m.EdgeFromVertex(vs[0])
	last := root
	for _, v := range vs[1 : n-1] {
		last = m.ExtendEdgeLoop(v, last)
	}
	m.CloseEdgeLoop(vs[n-1], last, root)
	m.AssignFaceToLoop(face, root)

	return face
}

// endpoints identifies a directed half-edge by its origin and destination.
type endpoints struct{ from, to VertexIndex }

// PairTwins stitches boundary half-edges: every unpaired, connected edge u→v
// is paired with an unpaired edge v→u if one exists. Edges are visited in
// index order, so the result is deterministic. Returns the number of pairs
// created.
// Complexity: O(E) time and space.
func (m *Mesh) PairTwins() int {
	open := make(map[endpoints]EdgeIndex)
	for i := 1; i < len(m.edges); i++ {
		e := m.edges[i]
		if !e.IsBoundary() || !m.hasEdge(e.Next) || !e.Next.IsValid() {
			continue
		}
		key := endpoints{from: e.Vertex, to: m.edges[e.Next].Vertex}
		if _, seen := open[key]; !seen {
			open[key] = EdgeIndex(i)
		}
	}

	pairs := 0
	for i := 1; i < len(m.edges); i++ {
		e := m.edges[i]
		if !e.IsBoundary() || !m.hasEdge(e.Next) || !e.Next.IsValid() {
			continue
		}
		other, ok := open[endpoints{from: m.edges[e.Next].Vertex, to: e.Vertex}]
		if !ok || other == EdgeIndex(i) || !m.edges[other].IsBoundary() {
			continue
		}
		m.SetTwinEdges(EdgeIndex(i), other)
		pairs++
	}
	if pairs > 0 {
		m.logger.Debug("paired boundary edges", "pairs", pairs)
	}

	return pairs
}
