//go:build !hedge_release

package mesh

// assertionsEnabled turns precondition violations into panics.
// Build with -tags hedge_release to compile the checks out.
const assertionsEnabled = true
