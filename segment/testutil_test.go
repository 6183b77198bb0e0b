package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/mesh"
)

// cubeVerts returns the 8 corners of a unit cube translated by off.
func cubeVerts(off r3.Vec) []r3.Vec {
	base := []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	for i := range base {
		base[i] = r3.Add(base[i], off)
	}

	return base
}

// cubeFaces returns the 6 outward-wound quad rings of a cube whose corners
// start at vertex index off.
func cubeFaces(off int) [][]int {
	rings := [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {2, 3, 7, 6},
		{0, 4, 7, 3}, {1, 2, 6, 5},
	}
	for _, r := range rings {
		for i := range r {
			r[i] += off
		}
	}

	return rings
}

// unitCube returns one closed cube: 8 vertices, 6 faces, every edge manifold.
func unitCube(t *testing.T) mesh.Mesh {
	t.Helper()
	m, err := mesh.NewIndexedMesh(cubeVerts(r3.Vec{}), cubeFaces(0))
	require.NoError(t, err)

	return m
}

// twoCubes returns two disjoint cubes in one mesh: faces 0-5 belong to the
// first cube, faces 6-11 to the second, with no shared geometry at all.
func twoCubes(t *testing.T) mesh.Mesh {
	t.Helper()
	verts := append(cubeVerts(r3.Vec{}), cubeVerts(r3.Vec{X: 5})...)
	faces := append(cubeFaces(0), cubeFaces(8)...)
	m, err := mesh.NewIndexedMesh(verts, faces)
	require.NoError(t, err)

	return m
}

// zigzagStrip returns a chain of four triangles with irregular vertex
// heights, so every face is geometrically distinct and the spectrum of the
// resulting affinity has no degenerate eigenvalues.
func zigzagStrip(t *testing.T) mesh.Mesh {
	t.Helper()
	verts := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0.3},
		{X: 1, Y: 0, Z: 0.05},
		{X: 1, Y: 1, Z: 0.5},
		{X: 2, Y: 0, Z: 0.12},
		{X: 2, Y: 1, Z: 0.7},
	}
	faces := [][]int{
		{0, 1, 2},
		{2, 1, 3},
		{2, 3, 4},
		{4, 3, 5},
	}
	m, err := mesh.NewIndexedMesh(verts, faces)
	require.NoError(t, err)

	return m
}

// flatPair returns two coplanar triangles: valid geometry whose angular
// distance population is identically zero.
func flatPair(t *testing.T) mesh.Mesh {
	t.Helper()
	verts := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	m, err := mesh.NewIndexedMesh(verts, [][]int{{0, 1, 2}, {1, 3, 2}})
	require.NoError(t, err)

	return m
}
