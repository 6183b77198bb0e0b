package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// IndexedMesh is the reference Mesh implementation: a vertex buffer plus
// faces stored as index rings, with unit normals precomputed at
// construction.
//
// Algorithm (construction):
//  1. Validate vertex buffer is non-empty and every face ring is sound.
//  2. Derive each face normal via Newell's method (robust for arbitrary
//     planar polygons, unlike a single cross product on the first corner).
//  3. Freeze everything; the value is read-only afterwards.
//
// Time complexity: O(total face-edge incidences).
// Memory: O(V + total incidences).
type IndexedMesh struct {
	verts []r3.Vec
	faces []Face
}

// compile-time check that IndexedMesh satisfies the query contract.
var _ Mesh = (*IndexedMesh)(nil)

// NewIndexedMesh builds a validated IndexedMesh from a vertex buffer and
// face index rings.
//
// Validation (in order, fail-fast):
//  1. verts non-empty and faces non-empty (ErrEmptyMesh).
//  2. Every face has ≥ 3 vertices with no repeats (ErrBadFace).
//  3. Every referenced vertex index is in range (ErrVertexRange).
//  4. Every face has nonzero area so a unit normal exists (ErrDegenerateFace).
//
// The input slices are copied; callers may reuse them afterwards.
//
// Complexity: O(V + total incidences).
func NewIndexedMesh(verts []r3.Vec, faces [][]int) (*IndexedMesh, error) {
	// 1) Reject empty geometry outright.
	if len(verts) == 0 || len(faces) == 0 {
		return nil, ErrEmptyMesh
	}

	// Copy the vertex buffer so later caller mutation cannot alias us.
	vcopy := make([]r3.Vec, len(verts))
	copy(vcopy, verts)

	out := &IndexedMesh{
		verts: vcopy,
		faces: make([]Face, len(faces)),
	}

	var (
		fi   int   // face index
		ring []int // current face's vertex ring
		vi   int   // vertex index within the ring
	)
	for fi, ring = range faces {
		// 2) A polygon needs at least three corners.
		if len(ring) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices: %w", fi, len(ring), ErrBadFace)
		}

		// 2b) Repeated indices collapse the polygon; reject deterministically.
		seen := make(map[int]struct{}, len(ring))
		for _, vi = range ring {
			// 3) Bounds check before anything touches the vertex buffer.
			if vi < 0 || vi >= len(vcopy) {
				return nil, fmt.Errorf("face %d references vertex %d of %d: %w", fi, vi, len(vcopy), ErrVertexRange)
			}
			if _, dup := seen[vi]; dup {
				return nil, fmt.Errorf("face %d repeats vertex %d: %w", fi, vi, ErrBadFace)
			}
			seen[vi] = struct{}{}
		}

		// Copy the ring; the caller keeps ownership of its slice.
		rcopy := make([]int, len(ring))
		copy(rcopy, ring)

		// 4) Newell normal; zero length means zero area.
		n, err := newellNormal(vcopy, rcopy)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", fi, err)
		}

		out.faces[fi] = Face{Vertices: rcopy, Normal: n}
	}

	return out, nil
}

// NumVertices returns the number of vertices. Complexity: O(1).
func (m *IndexedMesh) NumVertices() int { return len(m.verts) }

// Vertex returns the coordinate of vertex i. Complexity: O(1).
func (m *IndexedMesh) Vertex(i int) r3.Vec { return m.verts[i] }

// NumFaces returns the number of faces. Complexity: O(1).
func (m *IndexedMesh) NumFaces() int { return len(m.faces) }

// Face returns face i. The returned value shares the internal ring slice;
// callers must treat it as read-only per the Mesh contract.
// Complexity: O(1).
func (m *IndexedMesh) Face(i int) Face { return m.faces[i] }

// newellNormal computes the unit normal of the polygon described by ring
// using Newell's method: accumulate the signed projections of every edge
// onto the three coordinate planes, then normalize.
//
// Returns ErrDegenerateFace when the accumulated vector has zero length
// (collinear or coincident corners).
//
// Complexity: O(len(ring)).
func newellNormal(verts []r3.Vec, ring []int) (r3.Vec, error) {
	var (
		n    r3.Vec // accumulator
		a, b r3.Vec // current edge endpoints
		i    int
	)
	for i = 0; i < len(ring); i++ {
		a = verts[ring[i]]
		b = verts[ring[(i+1)%len(ring)]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if r3.Norm(n) == 0 {
		return r3.Vec{}, ErrDegenerateFace
	}

	return r3.Unit(n), nil
}

// Centroid returns the arithmetic mean of the face's vertex coordinates.
//
// Complexity: O(len(f.Vertices)).
func Centroid(m Mesh, f Face) r3.Vec {
	var c r3.Vec
	for _, vi := range f.Vertices {
		c = r3.Add(c, m.Vertex(vi))
	}

	return r3.Scale(1/float64(len(f.Vertices)), c)
}
