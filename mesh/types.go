// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Index handles, component structs, validity predicates and sentinel errors.
// Policy:
//   - Index 0 is reserved in every arena; the zero value of each handle is the sentinel.
//   - Components hold indices only; nothing here owns another component.

package mesh

import (
	"errors"
	"fmt"
)

// InvalidIndex is the reserved arena slot meaning "no such component".
const InvalidIndex = 0

// Sentinel errors for mesh operations.
var (
	// ErrInvalidIndex indicates the sentinel index was passed where a real component is required.
	ErrInvalidIndex = errors.New("mesh: invalid (sentinel) index")

	// ErrIndexOutOfRange indicates an index beyond the end of its arena.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrDegeneratePolygon indicates a polygon with fewer than three vertices.
	ErrDegeneratePolygon = errors.New("mesh: polygon needs at least three vertices")

	// ErrUnpairedEdge indicates an operation needed a twin that the edge does not have.
	ErrUnpairedEdge = errors.New("mesh: edge has no twin")

	// ErrDisconnectedEdge indicates an operation needed an edge linked into a loop.
	ErrDisconnectedEdge = errors.New("mesh: edge is not connected")

	// ErrUnsupported indicates an operation this core deliberately does not implement.
	ErrUnsupported = errors.New("mesh: operation not supported")

	// ErrVertexOrigin indicates a vertex whose edge does not originate at it.
	ErrVertexOrigin = errors.New("mesh: vertex edge has a different origin")

	// ErrLoopLink indicates next/prev links that do not reference each other.
	ErrLoopLink = errors.New("mesh: next/prev links are not reciprocal")

	// ErrTwinLink indicates a twin whose own twin is a different edge.
	ErrTwinLink = errors.New("mesh: twin links are not symmetric")

	// ErrFaceTag indicates an edge on a face loop tagged with another face.
	ErrFaceTag = errors.New("mesh: loop edge tagged with a different face")

	// ErrOpenLoop indicates a face loop that does not return to its root edge.
	ErrOpenLoop = errors.New("mesh: face loop is not closed")
)

// Validation is implemented by every component and handle that can report
// whether it refers to something real.
type Validation interface {
	IsValid() bool
}

// VertexAttr is an opaque index into caller-owned vertex attribute storage.
// The mesh stores it and never dereferences it.
type VertexAttr int

// VertexIndex is a handle into the vertex arena.
type VertexIndex int

// IsValid reports whether v is not the sentinel.
func (v VertexIndex) IsValid() bool { return v != InvalidIndex }

// String renders the handle as "v<n>".
func (v VertexIndex) String() string { return fmt.Sprintf("v%d", int(v)) }

// EdgeIndex is a handle into the half-edge arena.
type EdgeIndex int

// IsValid reports whether e is not the sentinel.
func (e EdgeIndex) IsValid() bool { return e != InvalidIndex }

// String renders the handle as "e<n>".
func (e EdgeIndex) String() string { return fmt.Sprintf("e%d", int(e)) }

// FaceIndex is a handle into the face arena.
type FaceIndex int

// IsValid reports whether f is not the sentinel.
func (f FaceIndex) IsValid() bool { return f != InvalidIndex }

// String renders the handle as "f<n>".
func (f FaceIndex) String() string { return fmt.Sprintf("f%d", int(f)) }

// Vertex is the point where half-edges meet.
type Vertex struct {
	// Edge is any one outgoing half-edge.
	Edge EdgeIndex

	// Attr points into external attribute storage.
	Attr VertexAttr
}

// IsValid reports whether the vertex is connected to an outgoing edge.
func (v Vertex) IsValid() bool { return v.Edge.IsValid() }

// Edge is one directed half of an undirected mesh edge.
type Edge struct {
	Twin   EdgeIndex   // opposing half-edge; sentinel on a boundary
	Next   EdgeIndex   // next half-edge of the loop
	Prev   EdgeIndex   // previous half-edge of the loop
	Face   FaceIndex   // face bounded by the loop
	Vertex VertexIndex // origin
}

// IsBoundary reports whether the edge has no twin.
func (e Edge) IsBoundary() bool { return !e.Twin.IsValid() }

// IsConnected reports whether the edge has both a previous and a next edge.
func (e Edge) IsConnected() bool { return e.Next.IsValid() && e.Prev.IsValid() }

// IsValid reports whether the edge is fully formed: it has an origin, a face,
// and is connected.
func (e Edge) IsValid() bool {
	return e.Vertex.IsValid() && e.Face.IsValid() && e.IsConnected()
}

// String renders all link fields, e.g. "(o: v1, t: e0, n: e2, p: e3, f: f1)".
func (e Edge) String() string {
	return fmt.Sprintf("(o: %v, t: %v, n: %v, p: %v, f: %v)", e.Vertex, e.Twin, e.Next, e.Prev, e.Face)
}

// Face is defined by the loop of half-edges around it.
type Face struct {
	// Edge is the root of the bounding loop.
	Edge EdgeIndex
}

// IsValid reports whether the face has a root edge.
func (f Face) IsValid() bool { return f.Edge.IsValid() }
