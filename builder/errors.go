// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the constructor name.
//   • Constructors never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum accepted by the constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the assembled mesh is unusable: a nil
// constructor was passed, or the finished mesh failed mesh.Validate.
// The validation report stays reachable through errors.Is as well.
var ErrConstructFailed = errors.New("builder: construction failed")
