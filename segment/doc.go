// SPDX-License-Identifier: MIT

// Package segment implements spectral segmentation of polygonal meshes:
// it partitions the faces of a mesh into k disjoint regions that follow
// the surface's geometric structure.
//
// Pipeline (each stage consumes the previous stage's output):
//
//  1. Adjacency extraction (package mesh): edge key → incident faces.
//  2. Pairwise distances: for every edge shared by exactly two faces,
//     a geodesic term (edge midpoint to the two face centroids) and an
//     angular term (1−cos of the dihedral angle, convex folds discounted
//     by η) are computed, each normalized to mean 1.0 over all adjacent
//     pairs, then blended with δ into one sparse face-graph weight.
//  3. Affinity: per-source Dijkstra yields all-pairs shortest path
//     lengths; a Gaussian kernel exp(−W/(2σ²)) with σ = ΣW/n² turns them
//     into similarities. Unreachable pairs stay at affinity 0 and the
//     diagonal is forced to 1.
//  4. Spectral embedding: the symmetric normalized Laplacian
//     D^(−1/2)·W·D^(−1/2) is built and its k eigenvectors of largest
//     eigenvalue become a k-dimensional embedding, row-normalized to
//     unit length.
//  5. Cluster assignment: Lloyd k-means with a fixed 50-iteration cap,
//     seeded either by k-means++ or by a greedy farthest-association
//     heuristic over Q = V·Vᵀ.
//  6. Result sink: an optional callback invoked exactly once with the
//     final labels, never on error or partial state.
//
// Determinism:
//
//   - All randomness flows through Options.Seed (seed==0 maps to a fixed
//     default), loop orders are fixed, and ties break on the lowest index,
//     so identical inputs yield identical labels.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - Input errors:  ErrNilMesh, ErrEmptyMesh, ErrBadClusterCount,
//     ErrBadCoefficient, ErrUnknownSolver, ErrUnknownInit.
//   - Numeric-domain errors: ErrDegenerateDistances, ErrZeroSigma,
//     ErrZeroNormRow, ErrEigenFailed. These mark degenerate/disconnected
//     input and abort the call instead of propagating NaN into clustering.
//   - Every returned error is wrapped with the failing stage's name.
//
// Non-manifold edges (more than two incident faces) are logged as a
// warning through the configured slog.Logger and excluded from distance
// computation; they never abort a run.
//
// Concurrency: a Segment call is single-threaded and synchronous; it
// blocks until a full assignment exists or an error is returned. The
// dense affinity stage is O(n²) memory in the face count — memory, not
// time, is the binding resource for very large meshes.
//
// See example_test.go for runnable usage.
package segment
