package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedge/mesh"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(m *mesh.Mesh)
		want    error
	}{
		{
			name:    "consistent",
			corrupt: func(*mesh.Mesh) {},
		},
		{
			name:    "vertex edge with foreign origin",
			corrupt: func(m *mesh.Mesh) { m.VertexMut(1).Edge = 2 },
			want:    mesh.ErrVertexOrigin,
		},
		{
			name:    "vertex edge out of range",
			corrupt: func(m *mesh.Mesh) { m.VertexMut(1).Edge = 99 },
			want:    mesh.ErrIndexOutOfRange,
		},
		{
			name:    "one-sided next",
			corrupt: func(m *mesh.Mesh) { m.EdgeMut(2).Prev = 3 },
			want:    mesh.ErrLoopLink,
		},
		{
			name:    "one-sided twin",
			corrupt: func(m *mesh.Mesh) { m.EdgeMut(4).Twin = 1 },
			want:    mesh.ErrTwinLink,
		},
		{
			name:    "loop edge with another face",
			corrupt: func(m *mesh.Mesh) { m.EdgeMut(5).Face = 1 },
			want:    mesh.ErrFaceTag,
		},
		{
			name: "open loop",
			corrupt: func(m *mesh.Mesh) {
				m.EdgeMut(6).Next = mesh.InvalidIndex
				m.EdgeMut(4).Prev = mesh.InvalidIndex
			},
			want: mesh.ErrOpenLoop,
		},
		{
			name:    "stray edge tagged with a closed face",
			corrupt: func(m *mesh.Mesh) { m.AddEdge(mesh.Edge{Vertex: 1, Face: 1}) },
			want:    mesh.ErrFaceTag,
		},
		{
			name: "open loop fragment keeps its tag",
			corrupt: func(m *mesh.Mesh) {
				m.EdgeMut(1).Next = mesh.InvalidIndex
				m.EdgeMut(2).Prev = mesh.InvalidIndex
			},
			want: mesh.ErrOpenLoop,
		},
		{
			name:    "face root out of range",
			corrupt: func(m *mesh.Mesh) { m.FaceMut(2).Edge = 50 },
			want:    mesh.ErrIndexOutOfRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := twoTriangles(t)
			tc.corrupt(m)
			err := m.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_OpenLoopFragmentIsNotAFaceTagViolation(t *testing.T) {
	m, _ := twoTriangles(t)
	m.EdgeMut(1).Next = mesh.InvalidIndex
	m.EdgeMut(2).Prev = mesh.InvalidIndex

	err := m.Validate()
	require.ErrorIs(t, err, mesh.ErrOpenLoop)
	require.NotErrorIs(t, err, mesh.ErrFaceTag)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	m, _ := twoTriangles(t)
	m.EdgeMut(4).Twin = 1
	m.EdgeMut(5).Face = 1

	err := m.Validate()
	require.ErrorIs(t, err, mesh.ErrTwinLink)
	require.ErrorIs(t, err, mesh.ErrFaceTag)
}
