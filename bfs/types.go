// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Errors, options and the result record of the face search.
// Policy:
//   - Option constructors never panic; a bad value is parked in the options
//     and BFS reports it as ErrOptionViolation before touching the mesh.
//   - Hooks default to no-ops, so the walker calls them unconditionally.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/hedge/mesh"
)

var (
	// ErrMeshNil: BFS or Components got a nil *mesh.Mesh.
	ErrMeshNil = errors.New("bfs: mesh is nil")

	// ErrStartFaceNotFound: the start face is the sentinel or past the face arena.
	ErrStartFaceNotFound = errors.New("bfs: start face not found")

	// ErrOptionViolation: an option carried a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath: PathTo was asked for a face outside the searched region.
	ErrNoPath = errors.New("bfs: face not reached")
)

// Option adjusts a search before it starts.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one search.
type BFSOptions struct {
	// Ctx is polled once per dequeued face.
	Ctx context.Context

	// OnEnqueue fires when a face is first discovered.
	OnEnqueue func(f mesh.FaceIndex, depth int)

	// OnDequeue fires when a face leaves the queue, just before OnVisit.
	OnDequeue func(f mesh.FaceIndex, depth int)

	// OnVisit fires once per reached face; a non-nil error ends the search.
	OnVisit func(f mesh.FaceIndex, depth int) error

	// MaxDepth caps the number of crossings from the start face; 0 is unbounded.
	MaxDepth int

	// FilterCrossing decides whether the half-edge via of face curr may be
	// crossed into its twin's face.
	FilterCrossing func(curr mesh.FaceIndex, via mesh.EdgeIndex) bool

	err error
}

// DefaultOptions crosses every paired edge without a depth cap, runs under
// context.Background and installs no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(mesh.FaceIndex, int) {},
		OnDequeue:      func(mesh.FaceIndex, int) {},
		OnVisit:        func(mesh.FaceIndex, int) error { return nil },
		FilterCrossing: func(mesh.FaceIndex, mesh.EdgeIndex) bool { return true },
	}
}

// WithContext makes the search abort with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue observes discovery order (nil ignored).
func WithOnEnqueue(fn func(f mesh.FaceIndex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue observes processing order (nil ignored).
func WithOnDequeue(fn func(f mesh.FaceIndex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs a per-face callback that can stop the search by
// returning an error; BFS wraps and returns it (nil ignored).
func WithOnVisit(fn func(f mesh.FaceIndex, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps the search within d crossings of the start face.
// d == 0 lifts the cap; d < 0 yields ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterCrossing turns shared edges into walls wherever fn returns false,
// e.g. creases or UV seams (nil ignored).
func WithFilterCrossing(fn func(curr mesh.FaceIndex, via mesh.EdgeIndex) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterCrossing = fn
		}
	}
}

// BFSResult is the search tree rooted at the start face.
//
// Order lists reached faces as they were visited. Depth counts crossings
// from the start. Parent and Via record, for every face but the start, the
// face it was discovered from and that face's half-edge that was crossed.
type BFSResult struct {
	Order  []mesh.FaceIndex
	Depth  map[mesh.FaceIndex]int
	Parent map[mesh.FaceIndex]mesh.FaceIndex
	Via    map[mesh.FaceIndex]mesh.EdgeIndex
}

// PathTo returns the faces from the start face to dest along the search tree,
// both ends included, or ErrNoPath when dest was not reached.
func (r *BFSResult) PathTo(dest mesh.FaceIndex) ([]mesh.FaceIndex, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}

	path := make([]mesh.FaceIndex, 0, r.Depth[dest]+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
