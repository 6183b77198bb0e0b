package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/mesh"
)

// unitCube returns the canonical axis-aligned unit cube: 8 vertices, 6 quad
// faces wound counter-clockwise when viewed from outside, so every Newell
// normal points outward.
func unitCube(t *testing.T) *mesh.IndexedMesh {
	t.Helper()
	verts := []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	faces := [][]int{
		{0, 3, 2, 1}, // bottom, -Z
		{4, 5, 6, 7}, // top, +Z
		{0, 1, 5, 4}, // front, -Y
		{2, 3, 7, 6}, // back, +Y
		{0, 4, 7, 3}, // left, -X
		{1, 2, 6, 5}, // right, +X
	}
	m, err := mesh.NewIndexedMesh(verts, faces)
	require.NoError(t, err) // the cube is a valid closed manifold

	return m
}

// TestNewIndexedMesh_Cube verifies construction on a valid closed mesh:
// counts, outward unit normals and centroid placement.
func TestNewIndexedMesh_Cube(t *testing.T) {
	m := unitCube(t)

	require.Equal(t, 8, m.NumVertices()) // all vertices retained
	require.Equal(t, 6, m.NumFaces())    // all faces retained

	// Outward normals per face, in construction order.
	want := []r3.Vec{
		{Z: -1}, {Z: 1}, {Y: -1}, {Y: 1}, {X: -1}, {X: 1},
	}
	for i, n := range want {
		got := m.Face(i).Normal
		require.InDelta(t, n.X, got.X, 1e-12, "face %d normal X", i)
		require.InDelta(t, n.Y, got.Y, 1e-12, "face %d normal Y", i)
		require.InDelta(t, n.Z, got.Z, 1e-12, "face %d normal Z", i)
		require.InDelta(t, 1.0, r3.Norm(got), 1e-12, "face %d normal length", i)
	}

	// Bottom face centroid sits at the face center.
	c := mesh.Centroid(m, m.Face(0))
	require.InDelta(t, 0.5, c.X, 1e-12)
	require.InDelta(t, 0.5, c.Y, 1e-12)
	require.InDelta(t, 0.0, c.Z, 1e-12)
}

// TestNewIndexedMesh_InputCopied verifies the constructor snapshots its
// inputs: mutating the caller's slices after construction changes nothing.
func TestNewIndexedMesh_InputCopied(t *testing.T) {
	verts := []r3.Vec{{}, {X: 1}, {Y: 1}}
	ring := []int{0, 1, 2}
	m, err := mesh.NewIndexedMesh(verts, [][]int{ring})
	require.NoError(t, err)

	verts[0] = r3.Vec{X: 99} // caller mutates its buffer
	ring[0] = 2              // and its ring

	require.Equal(t, r3.Vec{}, m.Vertex(0))             // snapshot unaffected
	require.Equal(t, []int{0, 1, 2}, m.Face(0).Vertices) // ring unaffected
}

// TestNewIndexedMesh_Errors walks the validation ladder: every malformed
// input maps to its dedicated sentinel, wrapped for errors.Is.
func TestNewIndexedMesh_Errors(t *testing.T) {
	tri := []r3.Vec{{}, {X: 1}, {Y: 1}}

	// Empty geometry.
	_, err := mesh.NewIndexedMesh(nil, [][]int{{0, 1, 2}})
	require.ErrorIs(t, err, mesh.ErrEmptyMesh) // no vertices
	_, err = mesh.NewIndexedMesh(tri, nil)
	require.ErrorIs(t, err, mesh.ErrEmptyMesh) // no faces

	// Too few corners.
	_, err = mesh.NewIndexedMesh(tri, [][]int{{0, 1}})
	require.ErrorIs(t, err, mesh.ErrBadFace)

	// Repeated corner inside the ring.
	_, err = mesh.NewIndexedMesh(tri, [][]int{{0, 1, 1}})
	require.ErrorIs(t, err, mesh.ErrBadFace)

	// Vertex index out of range, both directions.
	_, err = mesh.NewIndexedMesh(tri, [][]int{{0, 1, 3}})
	require.ErrorIs(t, err, mesh.ErrVertexRange)
	_, err = mesh.NewIndexedMesh(tri, [][]int{{-1, 1, 2}})
	require.ErrorIs(t, err, mesh.ErrVertexRange)

	// Collinear corners span zero area.
	line := []r3.Vec{{}, {X: 1}, {X: 2}}
	_, err = mesh.NewIndexedMesh(line, [][]int{{0, 1, 2}})
	require.ErrorIs(t, err, mesh.ErrDegenerateFace)
}

// TestFace_Edges verifies ring-order emission including the closing edge,
// with every key normalized to U < V.
func TestFace_Edges(t *testing.T) {
	f := mesh.Face{Vertices: []int{5, 2, 9}}
	got := f.Edges()

	want := []mesh.EdgeKey{
		mesh.NewEdgeKey(5, 2), // first ring pair
		mesh.NewEdgeKey(2, 9), // second ring pair
		mesh.NewEdgeKey(9, 5), // closing edge
	}
	require.Equal(t, want, got)
	for _, ek := range got {
		require.Less(t, ek.U, ek.V) // canonical orientation
	}
}

// TestNewEdgeKey verifies the unordered-pair normalization.
func TestNewEdgeKey(t *testing.T) {
	require.Equal(t, mesh.EdgeKey{U: 1, V: 7}, mesh.NewEdgeKey(7, 1)) // swapped
	require.Equal(t, mesh.EdgeKey{U: 1, V: 7}, mesh.NewEdgeKey(1, 7)) // already ordered
}
