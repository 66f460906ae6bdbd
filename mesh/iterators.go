// SPDX-License-Identifier: MIT
//
// File: iterators.go
// Role: Lazy traversal over edge loops, loop vertices, faces and vertex rings.
// Determinism:
//   - Loops are walked by following Next from the root; closure is detected by
//     index equality with the root, not by a visited set.
// Concurrency:
//   - Iterators alias the edge arena. Adding or removing edges while an
//     iterator is live leaves it walking stale or relocated data.

package mesh

import "iter"

// EdgeLoop walks a loop of half-edges by following Next.
//
// The root is yielded first. The walk ends when Next would return to the
// root. A sentinel or out-of-range Next ends the walk early instead of
// failing, and a loop that never returns to its root never ends.
type EdgeLoop struct {
	edges   []Edge
	root    EdgeIndex
	current EdgeIndex
	started bool
}

// EdgeLoop returns an iterator over the loop starting at root. A sentinel or
// out-of-range root yields nothing.
func (m *Mesh) EdgeLoop(root EdgeIndex) *EdgeLoop {
	return &EdgeLoop{edges: m.edges, root: root}
}

// Edges returns an iterator over the half-edges bounding face.
func (m *Mesh) Edges(face FaceIndex) *EdgeLoop {
	return m.EdgeLoop(m.Face(face).Edge)
}

// Next advances the walk and returns the next edge index, or false once the
// loop is exhausted.
func (l *EdgeLoop) Next() (EdgeIndex, bool) {
	if !l.started {
		l.started = true
		if !l.in(l.root) {
			return InvalidIndex, false
		}
		l.current = l.root
		return l.current, true
	}
	if !l.in(l.current) {
		return InvalidIndex, false
	}

	next := l.edges[l.current].Next
	if next == l.root || !l.in(next) {
		l.current = InvalidIndex
		return InvalidIndex, false
	}
	l.current = next

	return next, true
}

// Reset rewinds the walk to the root.
func (l *EdgeLoop) Reset() {
	l.current = InvalidIndex
	l.started = false
}

// Seq returns the full walk as a range-over-func sequence. Each call starts
// from the root and does not disturb l.
func (l *EdgeLoop) Seq() iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		walk := EdgeLoop{edges: l.edges, root: l.root}
		for e, ok := walk.Next(); ok; e, ok = walk.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

func (l *EdgeLoop) in(e EdgeIndex) bool {
	return e.IsValid() && int(e) < len(l.edges)
}

// EdgeLoopVertices performs the EdgeLoop walk and yields each edge's origin.
type EdgeLoopVertices struct {
	loop EdgeLoop
}

// EdgeLoopVertices returns an iterator over the origins of the loop starting at root.
func (m *Mesh) EdgeLoopVertices(root EdgeIndex) *EdgeLoopVertices {
	return &EdgeLoopVertices{loop: EdgeLoop{edges: m.edges, root: root}}
}

// Vertices returns an iterator over the vertices around face, in loop order.
func (m *Mesh) Vertices(face FaceIndex) *EdgeLoopVertices {
	return m.EdgeLoopVertices(m.Face(face).Edge)
}

// Next returns the origin of the next edge in the loop.
func (l *EdgeLoopVertices) Next() (VertexIndex, bool) {
	e, ok := l.loop.Next()
	if !ok {
		return InvalidIndex, false
	}
	return l.loop.edges[e].Vertex, true
}

// Reset rewinds the walk to the root.
func (l *EdgeLoopVertices) Reset() { l.loop.Reset() }

// Seq returns the full walk as a range-over-func sequence.
func (l *EdgeLoopVertices) Seq() iter.Seq[VertexIndex] {
	return func(yield func(VertexIndex) bool) {
		for e := range l.loop.Seq() {
			if !yield(l.loop.edges[e].Vertex) {
				return
			}
		}
	}
}

// FaceIter yields face indices 1..n-1, where n is the face arena length at
// the time the iterator was created. It does not use connectivity and does
// not observe faces added or removed afterwards.
type FaceIter struct {
	count int
	prev  FaceIndex
}

// Faces returns an iterator over every face index, sentinel excluded.
func (m *Mesh) Faces() *FaceIter {
	return &FaceIter{count: len(m.faces)}
}

// Next returns the next face index.
func (it *FaceIter) Next() (FaceIndex, bool) {
	if int(it.prev)+1 >= it.count {
		return InvalidIndex, false
	}
	it.prev++
	return it.prev, true
}

// Reset rewinds to the first face.
func (it *FaceIter) Reset() { it.prev = InvalidIndex }

// Seq returns the face range as a range-over-func sequence.
func (it *FaceIter) Seq() iter.Seq[FaceIndex] {
	return func(yield func(FaceIndex) bool) {
		for f := 1; f < it.count; f++ {
			if !yield(FaceIndex(f)) {
				return
			}
		}
	}
}

// VertexRing circulates the outgoing half-edges of one vertex.
//
// Starting at the vertex's outgoing edge e, the next outgoing edge is
// e.Prev.Twin. The ring ends on returning to the start, or at the first
// boundary where e.Prev has no twin; on an open fan only the edges reachable
// in that direction are visited.
type VertexRing struct {
	edges   []Edge
	start   EdgeIndex
	current EdgeIndex
	started bool
}

// OutgoingEdges returns a ring iterator over the half-edges leaving v.
func (m *Mesh) OutgoingEdges(v VertexIndex) *VertexRing {
	return &VertexRing{edges: m.edges, start: m.Vertex(v).Edge}
}

// Next returns the next outgoing edge.
func (r *VertexRing) Next() (EdgeIndex, bool) {
	if !r.started {
		r.started = true
		if !r.in(r.start) {
			return InvalidIndex, false
		}
		r.current = r.start
		return r.current, true
	}
	if !r.in(r.current) {
		return InvalidIndex, false
	}

	prev := r.edges[r.current].Prev
	if !r.in(prev) {
		r.current = InvalidIndex
		return InvalidIndex, false
	}
	next := r.edges[prev].Twin
	if next == r.start || !r.in(next) {
		r.current = InvalidIndex
		return InvalidIndex, false
	}
	r.current = next

	return next, true
}

// Reset rewinds to the vertex's outgoing edge.
func (r *VertexRing) Reset() {
	r.current = InvalidIndex
	r.started = false
}

// Seq returns the ring as a range-over-func sequence.
func (r *VertexRing) Seq() iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		walk := VertexRing{edges: r.edges, start: r.start}
		for e, ok := walk.Next(); ok; e, ok = walk.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

func (r *VertexRing) in(e EdgeIndex) bool {
	return e.IsValid() && int(e) < len(r.edges)
}
