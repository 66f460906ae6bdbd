// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Whole-mesh invariant audit.
// Policy:
//   - Never panics and never mutates; every violation found is reported.
//   - Links are checked only where set: a sentinel Next/Prev/Twin is not a violation.

package mesh

import (
	"errors"
	"fmt"
)

// Validate audits every connectivity invariant and returns all violations
// joined with errors.Join, or nil for a consistent mesh. Each violation wraps
// one of ErrIndexOutOfRange, ErrVertexOrigin, ErrLoopLink, ErrTwinLink,
// ErrFaceTag or ErrOpenLoop; branch with errors.Is.
//
// Checked:
//   - a connected vertex's edge exists and originates at the vertex;
//   - every set link of an edge is in range;
//   - e.Next.Prev == e, e.Prev.Next == e and e.Twin.Twin == e where set;
//   - a face's loop returns to its root and every edge on it carries the face;
//   - no edge off a closed loop carries that loop's face.
//
// An open loop (after RemoveEdge) may leave tagged fragments that are not
// reachable from the root; only ErrOpenLoop is reported for it.
//
// Complexity: O(V+E+F) plus the total length of all face loops.
func (m *Mesh) Validate() error {
	var errs []error
	errs = m.validateVertices(errs)
	errs = m.validateEdges(errs)
	errs = m.validateFaces(errs)
	if len(errs) == 0 {
		return nil
	}

	m.logger.Debug("mesh validation failed", "violations", len(errs))
	return errors.Join(errs...)
}

func (m *Mesh) validateVertices(errs []error) []error {
	for i := 1; i < len(m.vertices); i++ {
		v := m.vertices[i]
		if !v.Edge.IsValid() {
			continue
		}
		if !m.hasEdge(v.Edge) {
			errs = append(errs, fmt.Errorf("vertex %d: edge %d: %w", i, v.Edge, ErrIndexOutOfRange))
			continue
		}
		if origin := m.edges[v.Edge].Vertex; origin != VertexIndex(i) {
			errs = append(errs, fmt.Errorf("vertex %d: edge %d starts at %d: %w", i, v.Edge, origin, ErrVertexOrigin))
		}
	}

	return errs
}

func (m *Mesh) validateEdges(errs []error) []error {
	for i := 1; i < len(m.edges); i++ {
		self := EdgeIndex(i)
		e := m.edges[i]

		if e.Vertex.IsValid() && !m.hasVertex(e.Vertex) {
			errs = append(errs, fmt.Errorf("edge %d: vertex %d: %w", i, e.Vertex, ErrIndexOutOfRange))
		}
		if e.Face.IsValid() && !m.hasFace(e.Face) {
			errs = append(errs, fmt.Errorf("edge %d: face %d: %w", i, e.Face, ErrIndexOutOfRange))
		}

		if e.Next.IsValid() {
			if !m.hasEdge(e.Next) {
				errs = append(errs, fmt.Errorf("edge %d: next %d: %w", i, e.Next, ErrIndexOutOfRange))
			} else if back := m.edges[e.Next].Prev; back != self {
				errs = append(errs, fmt.Errorf("edge %d: next %d has prev %d: %w", i, e.Next, back, ErrLoopLink))
			}
		}
		if e.Prev.IsValid() {
			if !m.hasEdge(e.Prev) {
				errs = append(errs, fmt.Errorf("edge %d: prev %d: %w", i, e.Prev, ErrIndexOutOfRange))
			} else if fwd := m.edges[e.Prev].Next; fwd != self {
				errs = append(errs, fmt.Errorf("edge %d: prev %d has next %d: %w", i, e.Prev, fwd, ErrLoopLink))
			}
		}
		if e.Twin.IsValid() {
			if !m.hasEdge(e.Twin) {
				errs = append(errs, fmt.Errorf("edge %d: twin %d: %w", i, e.Twin, ErrIndexOutOfRange))
			} else if back := m.edges[e.Twin].Twin; back != self {
				errs = append(errs, fmt.Errorf("edge %d: twin %d has twin %d: %w", i, e.Twin, back, ErrTwinLink))
			}
		}
	}

	return errs
}

func (m *Mesh) validateFaces(errs []error) []error {
	tagged := make([]int, len(m.faces))
	for _, e := range m.edges[1:] {
		if e.Face.IsValid() && m.hasFace(e.Face) {
			tagged[e.Face]++
		}
	}

	for i := 1; i < len(m.faces); i++ {
		face := FaceIndex(i)
		root := m.faces[i].Edge
		if !root.IsValid() {
			continue
		}
		if !m.hasEdge(root) {
			errs = append(errs, fmt.Errorf("face %d: root %d: %w", i, root, ErrIndexOutOfRange))
			continue
		}

		// A closed loop cannot be longer than the arena.
		closed := false
		onLoop := 0
		cur := root
		for steps := 0; steps < len(m.edges); steps++ {
			if tag := m.edges[cur].Face; tag == face {
				onLoop++
			} else {
				errs = append(errs, fmt.Errorf("face %d: edge %d tagged %d: %w", i, cur, tag, ErrFaceTag))
			}
			next := m.edges[cur].Next
			if next == root {
				closed = true
				break
			}
			if !next.IsValid() || !m.hasEdge(next) {
				break
			}
			cur = next
		}
		switch {
		case !closed:
			errs = append(errs, fmt.Errorf("face %d: loop from root %d: %w", i, root, ErrOpenLoop))
		case tagged[i] > onLoop:
			errs = append(errs, fmt.Errorf("face %d: %d edges tagged, %d on its loop: %w",
				i, tagged[i], onLoop, ErrFaceTag))
		}
	}

	return errs
}
