// Package mesh defines the read-only polygonal mesh contract consumed by
// the segmentation pipeline, a validated concrete implementation, and the
// edge-to-incident-faces adjacency extractor.
//
// Overview:
//
//   - Mesh is a query-only interface: ordered vertices (3D coordinates) and
//     ordered faces (vertex index rings with unit normals). The caller owns
//     the mesh; nothing in this module mutates it.
//   - IndexedMesh is the reference implementation: it validates topology at
//     construction and derives unit face normals via Newell's method, so
//     arbitrary planar polygons (not just triangles) are supported.
//   - EdgeKey is an unordered pair of vertex indices. AdjacencyMap maps each
//     EdgeKey to the faces containing that edge; for a closed manifold mesh
//     every edge maps to exactly two faces.
//
// Topology policy:
//
//   - Edges with fewer than two incident faces are boundary edges; they are
//     legal and simply carry no face-to-face distance.
//   - Edges with more than two incident faces mark non-manifold input; they
//     are reported (NonManifoldEdges) and excluded downstream, never fatal.
//
// Error handling (sentinel errors):
//
//   - ErrNilMesh         — a nil Mesh was passed where one is required.
//   - ErrEmptyMesh       — the mesh has no vertices or no faces.
//   - ErrBadFace         — a face has fewer than three vertices or repeats one.
//   - ErrVertexRange     — a face references a vertex index out of range.
//   - ErrDegenerateFace  — a face has zero area, so no normal exists.
//
// Complexity: construction and adjacency extraction are both linear in the
// total number of face-edge incidences.
package mesh
