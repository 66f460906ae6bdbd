// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves must not panic.

package builder

// BuilderOption customizes constructors by mutating a builderConfig before
// any mesh element is created.
type BuilderOption func(*builderConfig)

// WithAttrScheme sets the vertex attribute generator: ordinal -> attribute.
// The ordinal counts vertices across the whole mesh, starting at 0, so
// composed constructors never hand out the same ordinal twice.
// Panics on nil.
func WithAttrScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithAttrScheme(nil)")
	}
	return func(c *builderConfig) {
		c.attrFn = fn
	}
}

// WithStitch toggles the final Mesh.PairTwins pass. With stitching off,
// constructors that emit independent faces (Tetrahedron, QuadGrid) leave
// every edge on the boundary.
func WithStitch(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.stitch = on
	}
}
