// Package bfs provides breadth-first search over the faces of a half-edge
// mesh, returning crossing distances, parent links, and visit order.
//
// What
//
//   - Explore faces in non-decreasing distance from a start face, where one
//     step crosses one twin-paired edge. Boundary edges are walls.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from face → number of crossings from start
//   - Parent: map from face → its predecessor in the BFS tree
//   - Via: map from face → the parent's half-edge that was crossed
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a face is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows forbidding individual crossings via WithFilterCrossing.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Region growing, shell detection and patch layering on a surface.
//   - Components(m) splits a mesh into edge-connected shells.
//
// Determinism
//
//	Neighbours are discovered in edge-loop order starting at each face's
//	root edge, so the visit sequence is fully reproducible for a given mesh.
//
// Complexity (F = faces, E = half-edges)
//
//   - Time:   O(F + E)
//   - Memory: O(F)
//
// Usage
//
//	res, err := bfs.BFS(m, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterCrossing(func(f mesh.FaceIndex, e mesh.EdgeIndex) bool { return !crease[e] }),
//	)
//
// Errors
//
//   - ErrMeshNil             if the mesh pointer is nil.
//   - ErrStartFaceNotFound   if the start face is the sentinel or out of range.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()              on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
