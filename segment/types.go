// SPDX-License-Identifier: MIT

// Package segment: sentinel errors, strategy enums, configuration options.
//
// This file defines ONLY package-level sentinels, the tagged strategy
// enumerations, the Options struct with its functional Option setters and
// DefaultOptions. Algorithms live in their dedicated stage files.
package segment

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/meshseg/mesh"
)

// Sentinel errors returned by Segment. Input errors reject the call before
// any stage runs; numeric-domain errors abort a stage on degenerate input.
var (
	// ErrNilMesh indicates that a nil mesh was passed to Segment.
	ErrNilMesh = errors.New("segment: mesh is nil")

	// ErrEmptyMesh indicates a mesh with zero faces.
	ErrEmptyMesh = errors.New("segment: mesh has no faces")

	// ErrBadClusterCount indicates k outside [2, NumFaces].
	ErrBadClusterCount = errors.New("segment: cluster count k must be in [2, face count]")

	// ErrBadCoefficient indicates delta or eta outside [0, 1].
	ErrBadCoefficient = errors.New("segment: coefficient must be in [0, 1]")

	// ErrUnknownSolver indicates an EigenSolver value outside the enum.
	ErrUnknownSolver = errors.New("segment: unknown eigensolver")

	// ErrUnknownInit indicates an InitStrategy value outside the enum.
	ErrUnknownInit = errors.New("segment: unknown k-means initialization")

	// ErrDegenerateDistances indicates that the geodesic or angular distance
	// population is empty or has zero mean, so mean normalization would
	// divide by zero. Typical causes: all faces coincident, or no edge
	// shared by exactly two faces.
	ErrDegenerateDistances = errors.New("segment: degenerate distance population")

	// ErrZeroSigma indicates a zero Gaussian kernel width (all shortest
	// paths zero), so affinities are undefined.
	ErrZeroSigma = errors.New("segment: zero affinity kernel width")

	// ErrZeroNormRow indicates an embedding row with exactly zero norm;
	// impossible for sane affinities (self-affinity is 1) and therefore a
	// numeric-domain failure, not a clustering concern.
	ErrZeroNormRow = errors.New("segment: zero-norm embedding row")

	// ErrEigenFailed indicates the iterative eigensolver could not produce
	// the requested number of eigenpairs.
	ErrEigenFailed = errors.New("segment: eigendecomposition failed")
)

// EigenSolver selects the numerical strategy for the spectral embedding.
// Both strategies are functionally equivalent up to numerical tolerance.
type EigenSolver int

const (
	// DenseEigen runs a dense symmetric eigendecomposition of the full
	// Laplacian and keeps the top-k eigenpairs. Time: O(n³). Preferred for
	// small and medium meshes; bitwise deterministic.
	DenseEigen EigenSolver = iota

	// IterativeEigen runs a Lanczos iteration with full reorthogonalization,
	// requesting k extremal eigenpairs directly. Time: O(iter·n²). Preferred
	// when k ≪ n.
	IterativeEigen
)

// InitStrategy selects how the k-means centroids are seeded.
type InitStrategy int

const (
	// GreedyFarthest seeds with the greedy farthest-association heuristic
	// over the association matrix Q = V·Vᵀ: the globally least-associated
	// pair first, then repeatedly the face least similar to every chosen
	// center. Fully deterministic regardless of seed.
	GreedyFarthest InitStrategy = iota

	// KMeansPP seeds with standard k-means++ sampling driven by the
	// configured seed.
	KMeansPP
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultDelta balances geodesic (→1) against angular (→0) distance.
	DefaultDelta = 0.5

	// DefaultEta discounts convex dihedral angles; values near 0 emphasize
	// concave creases, 1 treats convex and concave folds equally.
	DefaultEta = 0.15

	// MaxKMeansIterations caps Lloyd's algorithm; the final assignment is
	// returned even when not fully converged, so k-means never fails.
	MaxKMeansIterations = 50

	// defaultRNGSeed is the fixed seed substituted when Options.Seed == 0,
	// keeping the default path reproducible.
	defaultRNGSeed int64 = 1
)

// Assignment maps each face index to its cluster label in [0, k).
type Assignment []int

// Sink consumes a finished segmentation. It is invoked at most once per
// Segment call, only after a complete assignment exists, and never on
// error or partial state.
type Sink func(m mesh.Mesh, k int, labels Assignment)

// Options configures one Segment call. No field survives the call; there
// is no process-wide segmentation state.
//
// Delta  – geodesic/angular blend coefficient in [0,1].
// Eta    – convexity discount in [0,1].
// Solver – DenseEigen or IterativeEigen.
// Init   – GreedyFarthest or KMeansPP.
// Seed   – RNG seed for KMeansPP (0 ⇒ fixed default; always reproducible).
// Logger – stage progress and topology warnings; defaults to slog.Default.
// OnResult – optional result sink.
type Options struct {
	Delta    float64      // geodesic weight; (1-Delta) goes to the angular term
	Eta      float64      // convex-angle discount
	Solver   EigenSolver  // spectral strategy
	Init     InitStrategy // k-means seeding strategy
	Seed     int64        // deterministic RNG seed (0 ⇒ default)
	Logger   *slog.Logger // destination for progress and warnings
	OnResult Sink         // invoked once with the final labels; may be nil
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithDelta sets the geodesic/angular blend coefficient.
// Out-of-range values are rejected by Segment with ErrBadCoefficient.
func WithDelta(delta float64) Option {
	return func(o *Options) { o.Delta = delta }
}

// WithEta sets the convexity discount coefficient.
// Out-of-range values are rejected by Segment with ErrBadCoefficient.
func WithEta(eta float64) Option {
	return func(o *Options) { o.Eta = eta }
}

// WithSolver selects the eigensolver strategy.
func WithSolver(s EigenSolver) Option {
	return func(o *Options) { o.Solver = s }
}

// WithInit selects the k-means initialization strategy.
func WithInit(init InitStrategy) Option {
	return func(o *Options) { o.Init = init }
}

// WithSeed fixes the RNG seed for the KMeansPP path. Zero keeps the fixed
// default seed; GreedyFarthest ignores the seed entirely.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes stage progress and topology warnings to l.
// A nil l restores the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnResult registers the result sink invoked after clustering succeeds.
func WithOnResult(sink Sink) Option {
	return func(o *Options) { o.OnResult = sink }
}

// DefaultOptions returns the documented defaults. Use as the base for
// functional-option overrides.
//
// Defaults:
//   - Delta:  DefaultDelta (0.5 — balanced blend).
//   - Eta:    DefaultEta (0.15 — concave creases dominate).
//   - Solver: DenseEigen.
//   - Init:   GreedyFarthest (deterministic without a seed).
//   - Seed:   0 (⇒ fixed default seed).
//   - Logger: slog.Default() tagged with component=segment.
//   - OnResult: nil (labels are still returned).
func DefaultOptions() Options {
	return Options{
		Delta:  DefaultDelta,
		Eta:    DefaultEta,
		Solver: DenseEigen,
		Init:   GreedyFarthest,
		Seed:   0,
		Logger: slog.Default().With(slog.String("component", "segment")),
	}
}
