// Package hedge is an index-based half-edge mesh connectivity engine for
// polygonal surface meshes.
//
// What is hedge?
//
//	A small, zero-geometry library that answers "which vertices, edges and
//	faces touch which" for subdivision, remeshing and boolean pipelines:
//		• Arena storage: vertices, edges and faces live in flat slices
//		• Sentinel-at-zero: index 0 of every arena is a permanent invalid element
//		• Primitives: twin pairing, next/prev linking, face tagging
//		• Builders: triangles, adjacent triangles, arbitrary polygons
//		• Removal: O(1) swap-and-pop with cross-reference patching
//		• Traversal: edge loops, loop vertices, faces, vertex rings
//
// Under the hood, everything is organized under three subpackages:
//
//	mesh/    - Mesh, index types, primitives, builders, removal, iterators, Validate
//	builder/ - deterministic mesh constructors (Fan, Strip, Tetrahedron, QuadGrid, …)
//	bfs/     - breadth-first search over faces across twin edges, shell detection
//
// Quick ASCII example (two triangles sharing the edge v2–v3):
//
//	v1───v2
//	 │ f1 ╱│
//	 │  ╱  │
//	 │╱ f2 │
//	v3───v4
//
// Vertex positions, normals and the like are not stored here; every vertex
// carries an opaque attribute index into storage owned by the caller.
//
//	go get github.com/katalvlaran/hedge/mesh
package hedge
