// Package bfs provides breadth-first search over the dual graph of a
// mesh.Mesh: faces are nodes and every twin-paired edge links two faces.
//
// BFS explores faces in increasing crossing distance from a start face,
// with optional hooks, depth limiting and crossing filters.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/hedge/mesh"
)

// queueItem pairs a face with its BFS depth.
type queueItem struct {
	face  mesh.FaceIndex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	mesh    *mesh.Mesh
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on m starting from face start,
// applying any number of functional Options.
// Returns ErrMeshNil or ErrStartFaceNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(m *mesh.Mesh, start mesh.FaceIndex, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !start.IsValid() || int(start) > m.FaceCount() {
		return nil, fmt.Errorf("%w: %v", ErrStartFaceNotFound, start)
	}

	n := m.FaceCount()
	w := &walker{
		mesh:    m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n+1),
		res: &BFSResult{
			Order:  make([]mesh.FaceIndex, 0, n),
			Depth:  make(map[mesh.FaceIndex]int, n),
			Parent: make(map[mesh.FaceIndex]mesh.FaceIndex, n),
			Via:    make(map[mesh.FaceIndex]mesh.EdgeIndex, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks f visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(f mesh.FaceIndex, d int) {
	w.visited[f] = true
	w.res.Depth[f] = d
	w.opts.OnEnqueue(f, d)
	w.queue = append(w.queue, queueItem{face: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.face, item.depth)
	return item
}

// visit records the face in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.face)
	if err := w.opts.OnVisit(item.face, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.face, err)
	}
	return nil
}

// enqueueNeighbors walks the loop of item.face in edge order and enqueues the
// face across every paired edge that passes the filter and depth limit.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for e := range w.mesh.Edges(item.face).Seq() {
		nbr := w.mesh.EdgeFn(e).Twin().Data().Face
		if !nbr.IsValid() || int(nbr) >= len(w.visited) || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterCrossing(item.face, e) {
			continue
		}
		w.res.Parent[nbr] = item.face
		w.res.Via[nbr] = e
		w.enqueue(nbr, nextDepth)
	}
}

// Components partitions the faces of m into edge-connected shells. Shells are
// ordered by their smallest face index and list faces in BFS order.
// Complexity: O(F + E).
func Components(m *mesh.Mesh) ([][]mesh.FaceIndex, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	seen := make([]bool, m.FaceCount()+1)
	var shells [][]mesh.FaceIndex
	for f := range m.Faces().Seq() {
		if seen[f] {
			continue
		}
		res, err := BFS(m, f)
		if err != nil {
			return nil, err
		}
		for _, g := range res.Order {
			seen[g] = true
		}
		shells = append(shells, res.Order)
	}
	return shells, nil
}
