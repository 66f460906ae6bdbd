package bfs_test

import (
	"testing"

	"github.com/katalvlaran/hedge/bfs"
)

// BenchmarkBFS_QuadGrid measures a full sweep over a 100×100 quad grid.
func BenchmarkBFS_QuadGrid(b *testing.B) {
	m := grid(b, 100, 100)

	b.ReportAllocs()
	b.SetBytes(int64(m.FaceCount() + m.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, 1)
	}
}

// BenchmarkComponents measures shell detection on the same grid.
func BenchmarkComponents(b *testing.B) {
	m := grid(b, 100, 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(m)
	}
}
