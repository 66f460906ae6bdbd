//go:build hedge_release

package mesh

// assertionsEnabled is false in release builds; precondition checks are skipped.
const assertionsEnabled = false
