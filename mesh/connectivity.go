// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Connectivity primitives (one relationship per call) and the edge/loop
//       builders composed from them.
// Policy:
//   - Primitives perform no geometric or orientation checks; callers establish those.
//   - Preconditions are asserted (see assert.go); sentinel targets are skipped silently otherwise.

package mesh

// SetTwinEdges marks e1 and e2 as the two halves of one undirected edge.
//
// For the pairing to be consistent each edge should end where the other
// starts (e1.Next.Vertex == e2.Vertex and e2.Next.Vertex == e1.Vertex). That
// is not checked, since EdgeFromTwin pairs an edge before it is linked.
func (m *Mesh) SetTwinEdges(e1, e2 EdgeIndex) {
	precondition(e1.IsValid() && e2.IsValid(), ErrInvalidIndex, "SetTwinEdges(%d, %d)", e1, e2)
	if edge := m.EdgeMut(e1); edge != nil {
		edge.Twin = e2
	}
	if edge := m.EdgeMut(e2); edge != nil {
		edge.Twin = e1
	}
}

// ConnectEdges links prev → next within a loop.
func (m *Mesh) ConnectEdges(prev, next EdgeIndex) {
	precondition(prev.IsValid() && next.IsValid(), ErrInvalidIndex, "ConnectEdges(%d, %d)", prev, next)
	if edge := m.EdgeMut(prev); edge != nil {
		edge.Next = next
	}
	if edge := m.EdgeMut(next); edge != nil {
		edge.Prev = prev
	}
}

// AssignFaceToLoop makes root the root edge of face and tags every edge of
// the loop starting at root with face.
// Complexity: O(loop length).
func (m *Mesh) AssignFaceToLoop(face FaceIndex, root EdgeIndex) {
	precondition(face.IsValid(), ErrInvalidIndex, "AssignFaceToLoop: face %d", face)
	precondition(root.IsValid(), ErrInvalidIndex, "AssignFaceToLoop: edge %d", root)
	if f := m.FaceMut(face); f != nil {
		f.Edge = root
	}
	loop := m.EdgeLoop(root)
	for e, ok := loop.Next(); ok; e, ok = loop.Next() {
		m.edges[e].Face = face
	}
}

// EdgeFromVertex allocates an unlinked edge originating at v and makes it
// v's outgoing edge.
func (m *Mesh) EdgeFromVertex(v VertexIndex) EdgeIndex {
	precondition(v.IsValid(), ErrInvalidIndex, "EdgeFromVertex: vertex %d", v)
	e := m.AddEdge(Edge{Vertex: v})
	if vert := m.VertexMut(v); vert != nil {
		vert.Edge = e
	}

	return e
}

// EdgeFromTwin allocates the opposing half of twin and pairs the two. twin
// must already be linked to a next edge: the new edge starts where twin ends,
// which is twin.Next's origin.
func (m *Mesh) EdgeFromTwin(twin EdgeIndex) EdgeIndex {
	precondition(twin.IsValid(), ErrInvalidIndex, "EdgeFromTwin: edge %d", twin)
	next := m.Edge(twin).Next
	precondition(next.IsValid(), ErrDisconnectedEdge, "EdgeFromTwin: edge %d has no next", twin)

	e := m.EdgeFromVertex(m.Edge(next).Vertex)
	m.SetTwinEdges(e, twin)

	return e
}

// ExtendEdgeLoop allocates an edge from v and links it after prev.
//
// When v is the sentinel the origin is inferred from prev's twin: the twin
// starts where prev ends, which is where the new edge must start. This is
// used when growing a loop along an already paired boundary.
func (m *Mesh) ExtendEdgeLoop(v VertexIndex, prev EdgeIndex) EdgeIndex {
	precondition(prev.IsValid(), ErrInvalidIndex, "ExtendEdgeLoop: prev %d", prev)
	if !v.IsValid() {
		twin := m.Edge(prev).Twin
		precondition(twin.IsValid(), ErrUnpairedEdge, "ExtendEdgeLoop: prev %d", prev)
		v = m.Edge(twin).Vertex
	}

	e := m.EdgeFromVertex(v)
	m.ConnectEdges(prev, e)

	return e
}

// CloseEdgeLoop allocates an edge from v and links it between prev and next,
// completing a cycle.
func (m *Mesh) CloseEdgeLoop(v VertexIndex, prev, next EdgeIndex) EdgeIndex {
	precondition(v.IsValid() && prev.IsValid() && next.IsValid(), ErrInvalidIndex,
		"CloseEdgeLoop(%d, %d, %d)", v, prev, next)

	e := m.EdgeFromVertex(v)
	m.ConnectEdges(prev, e)
	m.ConnectEdges(e, next)

	return e
}
