// SPDX-License-Identifier: MIT

// Package segment - unified entry point for the segmentation pipeline.
//
// Design principles:
//   - Deterministic: explicit seed routing, fixed loop orders, no
//     time-based randomness.
//   - Strict sentinels: input validation and numeric-domain failures are
//     reported via the sentinels in types.go, wrapped with the failing
//     stage's name.
//   - No partial delivery: the result sink only ever observes a complete,
//     consistent assignment.
package segment

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/meshseg/mesh"
)

// Stage name constants for unified error wrapping and log records.
const (
	stageValidate  = "Validate"
	stageAdjacency = "AdjacencyExtractor"
	stageDistance  = "DistanceBuilder"
	stageAffinity  = "AffinityBuilder"
	stageSpectral  = "SpectralEmbedder"
	stageCluster   = "ClusterAssignment"
)

// segErrorf wraps err with the stage tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func segErrorf(stage string, err error) error {
	return fmt.Errorf("segment: %s: %w", stage, err)
}

// Segment partitions the faces of m into k clusters and returns one label
// per face, each in [0, k).
//
// The call is synchronous and single-threaded: it blocks until a complete
// assignment exists or an error is returned. When Options.OnResult is set,
// the sink is invoked exactly once, after clustering succeeds, with the
// same labels that are returned; it never sees partial state.
//
// Preconditions (validated in order, fail-fast):
//  1. m non-nil (ErrNilMesh) with at least one face (ErrEmptyMesh).
//  2. 2 ≤ k ≤ m.NumFaces() (ErrBadClusterCount).
//  3. Delta, Eta ∈ [0, 1] (ErrBadCoefficient).
//  4. Solver and Init are known enum values (ErrUnknownSolver/ErrUnknownInit).
//
// Numeric-domain failures (degenerate or disconnected-to-a-point input)
// abort the call with ErrDegenerateDistances, ErrZeroSigma, ErrZeroNormRow
// or ErrEigenFailed, each wrapped with its stage name.
//
// Complexity: O(n·(n+E)·log n + n³) time, O(n²) memory, n = face count.
func Segment(m mesh.Mesh, k int, opts ...Option) (Assignment, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default().With(slog.String("component", "segment"))
	}

	// 2) Validate mesh presence and preconditions.
	if m == nil {
		return nil, segErrorf(stageValidate, ErrNilMesh)
	}
	n := m.NumFaces()
	if n == 0 {
		return nil, segErrorf(stageValidate, ErrEmptyMesh)
	}
	if k < 2 || k > n {
		return nil, segErrorf(stageValidate, fmt.Errorf("k=%d, faces=%d: %w", k, n, ErrBadClusterCount))
	}
	if cfg.Delta < 0 || cfg.Delta > 1 {
		return nil, segErrorf(stageValidate, fmt.Errorf("delta=%g: %w", cfg.Delta, ErrBadCoefficient))
	}
	if cfg.Eta < 0 || cfg.Eta > 1 {
		return nil, segErrorf(stageValidate, fmt.Errorf("eta=%g: %w", cfg.Eta, ErrBadCoefficient))
	}
	if cfg.Solver != DenseEigen && cfg.Solver != IterativeEigen {
		return nil, segErrorf(stageValidate, ErrUnknownSolver)
	}
	if cfg.Init != GreedyFarthest && cfg.Init != KMeansPP {
		return nil, segErrorf(stageValidate, ErrUnknownInit)
	}

	// 3) Adjacency extraction; non-manifold edges are reported, not fatal.
	cfg.Logger.Debug("building adjacency", slog.String("stage", stageAdjacency), slog.Int("faces", n))
	adj := mesh.BuildAdjacency(m)
	for _, ek := range mesh.NonManifoldEdges(adj) {
		cfg.Logger.Warn("edge with more than two adjacent faces; excluded from distances",
			slog.Int("u", ek.U), slog.Int("v", ek.V), slog.Int("faces", len(adj[ek])))
	}

	// 4) Sparse pairwise distance graph.
	cfg.Logger.Debug("building distance graph", slog.String("stage", stageDistance))
	graph, err := buildDistanceGraph(m, adj, cfg.Delta, cfg.Eta)
	if err != nil {
		return nil, segErrorf(stageDistance, err)
	}

	// 5) Dense affinity via shortest paths + Gaussian kernel.
	cfg.Logger.Debug("building affinity matrix", slog.String("stage", stageAffinity))
	W, err := buildAffinity(graph)
	if err != nil {
		return nil, segErrorf(stageAffinity, err)
	}

	// 6) Spectral embedding of every face.
	cfg.Logger.Debug("computing spectral embedding",
		slog.String("stage", stageSpectral), slog.Int("k", k))
	V, err := spectralEmbed(W, k, cfg.Solver)
	if err != nil {
		return nil, segErrorf(stageSpectral, err)
	}

	// 7) Cluster assignment; k-means cannot fail (fixed iteration cap).
	cfg.Logger.Debug("clustering embedding", slog.String("stage", stageCluster))
	labels := assignClusters(V, k, cfg)

	// 8) Deliver the complete result, then return it.
	if cfg.OnResult != nil {
		cfg.OnResult(m, k, labels)
	}

	return labels, nil
}

// assignClusters seeds the centroids per the configured strategy and runs
// capped Lloyd k-means over the embedded rows.
func assignClusters(V *mat.Dense, k int, cfg Options) Assignment {
	_, dim := V.Dims()

	var centroids [][]float64
	switch cfg.Init {
	case KMeansPP:
		centroids = kmeansPPInit(V, k, rngFromSeed(cfg.Seed))
	default: // GreedyFarthest, validated upstream
		// Association matrix Q = V·Vᵀ; rows are unit length, so entries
		// behave like cosine similarities with Q[i][i] == 1.
		var Q mat.Dense
		Q.Mul(V, V.T())
		centroids = make([][]float64, 0, k)
		for _, idx := range greedyInit(&Q, k) {
			centroids = append(centroids, rowCopy(V, idx, dim))
		}
	}

	return lloyd(V, centroids, MaxKMeansIterations)
}
