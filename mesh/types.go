// Package mesh: domain types and sentinel errors.
//
// This file contains ONLY the query contract (Mesh), the value types shared
// across the module (Face, EdgeKey) and the package sentinel set. The
// concrete implementation lives in mesh.go, adjacency extraction in
// adjacency.go.
package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by mesh construction and queries.
var (
	// ErrNilMesh indicates that a nil Mesh was passed where one is required.
	ErrNilMesh = errors.New("mesh: mesh is nil")

	// ErrEmptyMesh indicates a mesh with no vertices or no faces.
	ErrEmptyMesh = errors.New("mesh: mesh has no vertices or faces")

	// ErrBadFace indicates a face with fewer than three vertices, or with a
	// repeated vertex index inside its ring.
	ErrBadFace = errors.New("mesh: face needs at least three distinct vertices")

	// ErrVertexRange indicates a face referencing a vertex index outside
	// [0, NumVertices).
	ErrVertexRange = errors.New("mesh: face vertex index out of range")

	// ErrDegenerateFace indicates a zero-area face whose normal is undefined.
	ErrDegenerateFace = errors.New("mesh: degenerate face has no normal")
)

// Mesh is the read-only query contract the segmentation core consumes.
//
// Contract:
//   - Vertices and faces are ordered; indices are stable for the lifetime
//     of the value.
//   - Face(i).Normal is a unit vector.
//   - All queries are side-effect free; implementations must not require
//     the caller to copy results defensively.
type Mesh interface {
	// NumVertices returns the number of vertices.
	// Complexity: O(1).
	NumVertices() int

	// Vertex returns the 3D coordinate of vertex i.
	// Panics on out-of-range i (programmer error, not user input).
	// Complexity: O(1).
	Vertex(i int) r3.Vec

	// NumFaces returns the number of faces.
	// Complexity: O(1).
	NumFaces() int

	// Face returns face i: its ordered vertex ring and unit normal.
	// Panics on out-of-range i.
	// Complexity: O(1).
	Face(i int) Face
}

// Face is an ordered ring of vertex indices plus the face's unit normal.
// Callers must treat Vertices as read-only.
type Face struct {
	// Vertices lists the face's vertex indices in ring order.
	Vertices []int

	// Normal is the unit normal derived at construction time.
	Normal r3.Vec
}

// Edges returns the face's edges as unordered vertex-index pairs, one per
// consecutive ring pair including the closing edge.
//
// Determinism: edges are emitted in ring order, each normalized via
// NewEdgeKey, so two faces sharing an edge produce identical keys.
//
// Complexity: O(len(Vertices)); allocates the result slice.
func (f Face) Edges() []EdgeKey {
	n := len(f.Vertices)
	out := make([]EdgeKey, n) // one edge per ring position, closing included
	for i := 0; i < n; i++ {
		out[i] = NewEdgeKey(f.Vertices[i], f.Vertices[(i+1)%n])
	}

	return out
}

// EdgeKey is an unordered pair of vertex indices with U < V.
// Build it with NewEdgeKey; a hand-rolled literal with U > V will never
// match extractor output.
type EdgeKey struct {
	U int // smaller vertex index
	V int // larger vertex index
}

// NewEdgeKey normalizes (a, b) into the canonical unordered key.
// Complexity: O(1).
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}
