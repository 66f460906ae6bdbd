// SPDX-License-Identifier: MIT
//
// File: remove.go
// Role: Swap-and-pop removal of edges and faces with cross-reference patching.
// Policy:
//   - An arena shrinks by one; its former last element moves into the freed slot.
//   - Every slot that can hold an EdgeIndex is listed in edgeReferrers; removal
//     patches exactly those slots, both for the victim and for the relocated edge.
//   - Vertex removal is not a primitive: resolve incident edges first.
// AI-HINT (file):
//   - Indices held by callers to the removed slot or to the old last slot are stale after removal.

package mesh

import "fmt"

// edgeReferrers returns every slot that currently refers to edge i through a
// reciprocal relationship: i.Next.Prev, i.Prev.Next, i.Twin.Twin, the root
// of i's face, and the outgoing edge of i's origin vertex.
//
// Slots are returned as pointers into the arenas and are only valid until
// the next append to any arena.
func (m *Mesh) edgeReferrers(i EdgeIndex) []*EdgeIndex {
	e := m.edges[i]
	refs := make([]*EdgeIndex, 0, 5)
	if e.Next.IsValid() && m.hasEdge(e.Next) && m.edges[e.Next].Prev == i {
		refs = append(refs, &m.edges[e.Next].Prev)
	}
	if e.Prev.IsValid() && m.hasEdge(e.Prev) && m.edges[e.Prev].Next == i {
		refs = append(refs, &m.edges[e.Prev].Next)
	}
	if e.Twin.IsValid() && m.hasEdge(e.Twin) && m.edges[e.Twin].Twin == i {
		refs = append(refs, &m.edges[e.Twin].Twin)
	}
	if e.Face.IsValid() && m.hasFace(e.Face) && m.faces[e.Face].Edge == i {
		refs = append(refs, &m.faces[e.Face].Edge)
	}
	if e.Vertex.IsValid() && m.hasVertex(e.Vertex) && m.vertices[e.Vertex].Edge == i {
		refs = append(refs, &m.vertices[e.Vertex].Edge)
	}

	return refs
}

// RemoveEdge deletes edge i in O(1) by moving the last edge into slot i.
//
// Steps:
//  1. Clear the victim's reciprocal links (next.Prev, prev.Next, twin.Twin).
//  2. If the victim roots its face, re-root the face at the victim's next
//     edge; a single-edge loop leaves the face disconnected.
//  3. If the victim is its origin's outgoing edge, pick another edge leaving
//     the same vertex: prev.Twin for a boundary victim, twin.Next otherwise.
//     The vertex is disconnected when no such edge exists.
//  4. Retarget every referrer of the last edge (including its own
//     self-references) to i, then move it into slot i and shrink the arena.
//
// The victim's loop is left open; callers re-link or remove the rest.
func (m *Mesh) RemoveEdge(i EdgeIndex) {
	precondition(i.IsValid(), ErrInvalidIndex, "RemoveEdge(%d)", i)
	precondition(m.hasEdge(i), ErrIndexOutOfRange, "RemoveEdge(%d): %d edges", i, len(m.edges))
	if !i.IsValid() || !m.hasEdge(i) {
		return
	}

	victim := m.edges[i]

	// 1) Reciprocal links.
	if next := m.EdgeMut(victim.Next); next != nil && next.Prev == i {
		next.Prev = InvalidIndex
	}
	if prev := m.EdgeMut(victim.Prev); prev != nil && prev.Next == i {
		prev.Next = InvalidIndex
	}
	if twin := m.EdgeMut(victim.Twin); twin != nil && twin.Twin == i {
		twin.Twin = InvalidIndex
	}

	// 2) Face root.
	if face := m.FaceMut(victim.Face); face != nil && face.Edge == i {
		face.Edge = InvalidIndex
		if victim.Next.IsValid() && victim.Next != i && m.hasEdge(victim.Next) {
			face.Edge = victim.Next
		}
	}

	// 3) Outgoing edge of the origin.
	if vert := m.VertexMut(victim.Vertex); vert != nil && vert.Edge == i {
		var candidate EdgeIndex
		if victim.IsBoundary() {
			candidate = m.Edge(victim.Prev).Twin
		} else {
			candidate = m.Edge(victim.Twin).Next
		}
		if candidate == i || m.Edge(candidate).Vertex != victim.Vertex {
			candidate = InvalidIndex
		}
		vert.Edge = candidate
	}

	// 4) Relocate the last edge.
	last := EdgeIndex(len(m.edges) - 1)
	if i != last {
		for _, ref := range m.edgeReferrers(last) {
			*ref = i
		}
		m.edges[i] = m.edges[last]
	}
	m.edges = m.edges[:last]

	m.logger.Debug("edge removed", "edge", int(i), "relocated", int(last), "edges", m.EdgeCount())
}

// RemoveFace deletes face i by moving the last face into slot i.
//
// Face tags are patched by value over the whole edge arena, not by walking
// loops: RemoveEdge leaves loops open, so edges cut off from the root still
// carry the tag. Edges tagged i lose it; edges tagged with the old last index
// are retagged to i.
// Complexity: O(E).
func (m *Mesh) RemoveFace(i FaceIndex) {
	precondition(i.IsValid(), ErrInvalidIndex, "RemoveFace(%d)", i)
	precondition(m.hasFace(i), ErrIndexOutOfRange, "RemoveFace(%d): %d faces", i, len(m.faces))
	if !i.IsValid() || !m.hasFace(i) {
		return
	}

	last := FaceIndex(len(m.faces) - 1)
	for e := 1; e < len(m.edges); e++ {
		switch m.edges[e].Face {
		case i:
			m.edges[e].Face = InvalidIndex
		case last:
			m.edges[e].Face = i
		}
	}
	if i != last {
		m.faces[i] = m.faces[last]
	}
	m.faces = m.faces[:last]

	m.logger.Debug("face removed", "face", int(i), "relocated", int(last), "faces", m.FaceCount())
}

// RemoveVertex is not supported: a vertex can only go once every edge incident
// to it has been reassigned or removed, which is a higher-level operation.
// It always panics with an error wrapping ErrUnsupported, in every build.
func (m *Mesh) RemoveVertex(i VertexIndex) {
	panic(fmt.Errorf("RemoveVertex(%d): remove or reassign incident edges first: %w", i, ErrUnsupported))
}
