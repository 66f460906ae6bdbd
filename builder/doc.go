// Package builder assembles deterministic half-edge mesh fixtures.
//
// Every constructor is a Constructor closure that appends vertices, edges and
// faces to a *mesh.Mesh. BuildMesh creates the mesh, applies the constructors
// in order, optionally stitches open boundaries into twin pairs and finally
// validates the result:
//
//	m, err := builder.BuildMesh(nil, nil,
//		builder.Tetrahedron(),
//		builder.QuadGrid(2, 3),
//	)
//
// Available constructors:
//
//	Triangle()          one triangle, 3 boundary edges
//	Polygon(n)          one n-gon, n ≥ 3
//	Fan(n)              n triangles around a hub, n ≥ 1
//	Strip(n)            n triangles in a zig-zag band, n ≥ 1
//	Tetrahedron()       closed surface, 4 faces, no boundary once stitched
//	QuadGrid(rows,cols) rows×cols quads, rows,cols ≥ 1
//
// Fan and Strip share their interior edges while building; Tetrahedron and
// QuadGrid emit independent faces and rely on stitching (WithStitch, on by
// default) to pair them.
//
// Vertex attributes come from the attribute scheme (WithAttrScheme). It maps
// the zero-based ordinal of a vertex within the whole mesh to its attribute;
// the default yields attr == vertex index.
//
// Constructors validate their parameters and return sentinel errors wrapped
// with the constructor name. They never panic; only option constructors do.
package builder
