package mesh_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedge/mesh"
)

func TestEdgeLoop_NextAndReset(t *testing.T) {
	m, _ := twoTriangles(t)
	loop := m.Edges(2)

	var got []mesh.EdgeIndex
	for e, ok := loop.Next(); ok; e, ok = loop.Next() {
		got = append(got, e)
	}
	assert.Equal(t, edges(4, 5, 6), got)

	_, ok := loop.Next()
	assert.False(t, ok, "exhausted loop stays exhausted")

	loop.Reset()
	first, ok := loop.Next()
	require.True(t, ok)
	assert.Equal(t, mesh.EdgeIndex(4), first)
}

func TestEdgeLoop_SeqIsRestartable(t *testing.T) {
	m, _ := twoTriangles(t)
	loop := m.EdgeLoop(5)

	assert.Equal(t, edges(5, 6, 4), slices.Collect(loop.Seq()))
	assert.Equal(t, edges(5, 6, 4), slices.Collect(loop.Seq()))

	var firstTwo []mesh.EdgeIndex
	for e := range loop.Seq() {
		firstTwo = append(firstTwo, e)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, edges(5, 6), firstTwo)
}

func TestEdgeLoop_SentinelRootYieldsNothing(t *testing.T) {
	m, _ := twoTriangles(t)
	assert.Empty(t, slices.Collect(m.EdgeLoop(0).Seq()))
	assert.Empty(t, slices.Collect(m.EdgeLoop(42).Seq()))
	assert.Empty(t, slices.Collect(m.Edges(0).Seq()))
}

func TestEdgeLoop_TruncatesOnSentinelNext(t *testing.T) {
	m := mesh.NewMesh()
	vs := addVertices(m, 3)
	e1 := m.EdgeFromVertex(vs[0])
	e2 := m.ExtendEdgeLoop(vs[1], e1)
	e3 := m.ExtendEdgeLoop(vs[2], e2) // open chain, e3.Next is the sentinel

	assert.Equal(t, []mesh.EdgeIndex{e1, e2, e3}, slices.Collect(m.EdgeLoop(e1).Seq()))
	assert.Equal(t, []mesh.EdgeIndex{e2, e3}, slices.Collect(m.EdgeLoop(e2).Seq()))
}

func TestEdgeLoopVertices(t *testing.T) {
	m, vs := twoTriangles(t)

	assert.Equal(t, []mesh.VertexIndex{vs[0], vs[1], vs[2]}, collectVertices(m, 1))
	assert.Equal(t, []mesh.VertexIndex{vs[2], vs[1], vs[3]}, collectVertices(m, 2))

	it := m.EdgeLoopVertices(6)
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, vs[3], v)
	it.Reset()
	v, _ = it.Next()
	assert.Equal(t, vs[3], v)
}

func TestFaces_SkipsSentinelAndSnapshotsLength(t *testing.T) {
	m := mesh.NewMesh()
	assert.Empty(t, slices.Collect(m.Faces().Seq()))

	vs := addVertices(m, 4)
	m.AddTriangle(vs[0], vs[1], vs[2])
	m.AddTriangle(vs[1], vs[2], vs[3])

	it := m.Faces()
	m.AddTriangle(vs[0], vs[2], vs[3])

	var got []mesh.FaceIndex
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		got = append(got, f)
	}
	assert.Equal(t, []mesh.FaceIndex{1, 2}, got, "face added after creation is not observed")

	it.Reset()
	assert.Equal(t, []mesh.FaceIndex{1, 2}, slices.Collect(it.Seq()))
	assert.Equal(t, []mesh.FaceIndex{1, 2, 3}, slices.Collect(m.Faces().Seq()))
}

func TestOutgoingEdges_ClosedRing(t *testing.T) {
	m, vs := tetrahedron(t)
	apex := vs[3]

	ring := slices.Collect(m.OutgoingEdges(apex).Seq())
	assert.Equal(t, edges(12, 9, 6), ring)
	for _, e := range ring {
		assert.Equal(t, apex, m.Edge(e).Vertex)
	}
}

func TestOutgoingEdges_StopsAtBoundary(t *testing.T) {
	m, vs := twoTriangles(t)

	// v1 has a single outgoing edge and its prev is a boundary.
	assert.Equal(t, edges(1), slices.Collect(m.OutgoingEdges(vs[0]).Seq()))
	assert.Empty(t, slices.Collect(m.OutgoingEdges(0).Seq()))

	ring := m.OutgoingEdges(vs[1])
	first, ok := ring.Next()
	require.True(t, ok)
	ring.Reset()
	again, _ := ring.Next()
	assert.Equal(t, first, again)
}
