// Package mesh provides an index-based half-edge mesh: flat arenas of
// vertices, half-edges and faces whose relationships are plain integer indices.
//
// Storage model:
//
//   - Three slices (vertices, edges, faces). Slot 0 of each is a permanent
//     sentinel, so the zero value of VertexIndex/EdgeIndex/FaceIndex means
//     "no such component".
//   - Reads (Vertex, Edge, Face) never fail: out-of-range and sentinel indices
//     resolve to the sentinel element, which reports IsValid()==false.
//   - Writes (VertexMut, EdgeMut, FaceMut) return nil for the sentinel index.
//
// Half-edge fields:
//
//	Edge.Vertex  origin vertex
//	Edge.Next    next half-edge around the same face
//	Edge.Prev    previous half-edge around the same face
//	Edge.Twin    oppositely directed half-edge (sentinel on a boundary)
//	Edge.Face    face bounded by the loop
//
// Core Methods:
//
//	// Primitives
//	SetTwinEdges(e1, e2)            // O(1)
//	ConnectEdges(prev, next)        // O(1)
//	AssignFaceToLoop(face, root)    // O(loop)
//
//	// Edge/loop builders
//	EdgeFromVertex(v) EdgeIndex
//	EdgeFromTwin(twin) EdgeIndex
//	ExtendEdgeLoop(v, prev) EdgeIndex
//	CloseEdgeLoop(v, prev, next) EdgeIndex
//
//	// Mesh builders
//	AddTriangle(a, b, c) FaceIndex
//	AddAdjacentTriangle(c, twin) FaceIndex
//	AddPolygon(vs) FaceIndex
//	PairTwins() int
//
//	// Removal (swap-and-pop; relocates the last element into the freed slot)
//	RemoveEdge(i)                   // O(1)
//	RemoveFace(i)                   // O(E), retags by value
//	RemoveVertex(i)                 // unsupported, always panics
//
//	// Traversal
//	Edges(f) *EdgeLoop, Vertices(f) *EdgeLoopVertices, Faces() *FaceIter,
//	OutgoingEdges(v) *VertexRing
//
// Preconditions:
//
// Passing a sentinel where a connected component is required, a degenerate
// polygon, or an out-of-range index to a mutable accessor is a programmer
// error. With the default build these panic with an error wrapping one of the
// package sentinels (ErrInvalidIndex, ErrIndexOutOfRange, ...). Building with
// -tags hedge_release compiles the checks out; connectivity is then silently
// inconsistent on bad input.
//
// Concurrency:
//
// A Mesh is a single mutable aggregate with no internal locking. Callers
// serialize all mutations, and an iterator must not be used after the edge
// arena it walks has been mutated by an add or remove.
package mesh
