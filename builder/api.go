// SPDX-License-Identifier: MIT
// Package: hedge/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical arenas.
//   - Safety: constructors return sentinel errors; the finished mesh is always validated.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hedge/mesh"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching the
// mesh and return sentinel errors instead of panicking.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates a new mesh.Mesh with mesh options mopts, resolves the
// builder configuration from bopts and applies all constructors in order.
// When stitching is enabled, open boundaries are paired with Mesh.PairTwins.
// The result is then checked with Mesh.Validate.
//
// Errors:
//   - Constructor errors are wrapped as "BuildMesh: %w" and returned at once.
//   - A nil constructor or a failed validation wraps ErrConstructFailed.
//
// Complexity: Σ cost of the constructors plus O(V+E+F) for stitching and
// validation.
func BuildMesh(mopts []mesh.MeshOption, bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.NewMesh(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	if cfg.stitch {
		m.PairTwins()
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("BuildMesh: %w: %w", ErrConstructFailed, err)
	}

	return m, nil
}
