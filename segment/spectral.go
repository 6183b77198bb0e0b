// SPDX-License-Identifier: MIT

package segment

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// spectralEmbed maps each face to a point in the space spanned by the k
// eigenvectors of the normalized Laplacian with the largest eigenvalues.
//
// Algorithm:
//  1. Degree vector d from affinity row sums; Dsqrt[i] = 1/√d[i].
//  2. L = D^(−1/2)·W·D^(−1/2) by elementwise row/column scaling — never an
//     explicit matrix inverse. L is assembled as a SymDense from the upper
//     triangle, which also absorbs any floating-point asymmetry drift in W.
//  3. Top-k eigenpairs of L: a dense symmetric eigensolve (DenseEigen) or a
//     Lanczos iteration (IterativeEigen). W is a similarity matrix, so the
//     LARGEST eigenvalues carry the smoothest cluster-indicating
//     directions. Columns are returned in ascending-eigenvalue order of
//     the top-k block for both solvers, with tied eigenvalue blocks
//     resolved to a basis-independent eigenspace representative
//     (topKColumns), so symmetric meshes embed the same way everywhere.
//  4. Row-normalize the n×k embedding to unit Euclidean length.
//
// Errors:
//   - ErrZeroNormRow for a zero degree or an exactly zero-norm embedding
//     row; the unit diagonal upstream guarantees both are nonzero for any
//     sane affinity, so a hit marks numeric corruption.
//   - ErrEigenFailed when the eigensolver does not converge.
//
// Complexity: O(n³) dense / O(iter·n²) iterative; O(n²) memory.
func spectralEmbed(W *mat.Dense, k int, solver EigenSolver) (*mat.Dense, error) {
	n, _ := W.Dims()

	// 1) Degrees and their reciprocal square roots.
	dsqrt := make([]float64, n)
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		d = 0
		for j = 0; j < n; j++ {
			d += W.At(i, j)
		}
		if d <= 0 {
			// Self-affinity is forced to 1 upstream; a non-positive degree
			// means the affinity matrix is corrupt.
			return nil, ErrZeroNormRow
		}
		dsqrt[i] = 1 / math.Sqrt(d)
	}

	// 2) Symmetric normalized Laplacian from the upper triangle.
	L := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			L.SetSym(i, j, W.At(i, j)*dsqrt[i]*dsqrt[j])
		}
	}

	// 3) Top-k eigenvectors by the selected strategy.
	var (
		V   *mat.Dense
		err error
	)
	switch solver {
	case DenseEigen:
		V, err = denseTopK(L, k)
	case IterativeEigen:
		V, err = lanczosTopK(L, k)
	default:
		return nil, ErrUnknownSolver
	}
	if err != nil {
		return nil, err
	}

	// 4) Unit-length rows.
	if err = normalizeRows(V); err != nil {
		return nil, err
	}

	return V, nil
}

// denseTopK runs a full dense symmetric eigendecomposition and keeps the
// k eigenvectors of largest eigenvalue, in ascending-eigenvalue order.
//
// Complexity: O(n³) time, O(n²) memory.
func denseTopK(L *mat.SymDense, k int) (*mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(L, true); !ok {
		return nil, ErrEigenFailed
	}

	// EigenSym returns eigenvalues in ascending order; the top-k block is
	// the last k columns. Keep their ascending order so both solver paths
	// agree column-for-column.
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return topKColumns(es.Values(nil), &vecs, k), nil
}

// eigGapTol is the gap below which adjacent eigenvalues are treated as one
// tied block sharing a single eigenspace.
const eigGapTol = 1e-9

// topKColumns extracts the k trailing columns of the ascending-ordered
// eigenvector matrix vecs, first resolving every tied eigenvalue block
// that reaches the cutoff.
//
// Inside a tied block the solver's eigenvectors are an arbitrary
// orthonormal basis of the shared eigenspace, and an axis-aligned pick can
// zero one embedding coordinate on most faces (a symmetric mesh such as a
// cube has a 3-fold tied block whose axis vectors vanish on 4 of 6 faces).
// The kept columns of such a block are therefore rebuilt as projections of
// fixed pilot vectors onto the block's eigenspace: the projector U·Uᵀ
// depends only on the eigenspace, never on the basis the solver happened
// to return, so the embedding is the same for every backend and for both
// solver strategies.
func topKColumns(vals []float64, vecs *mat.Dense, k int) *mat.Dense {
	n, total := vecs.Dims()
	start := total - k

	V := mat.NewDense(n, k, nil)
	var i, c int
	for c = 0; c < k; c++ {
		for i = 0; i < n; i++ {
			V.Set(i, c, vecs.At(i, start+c))
		}
	}

	// Walk the maximal tied blocks [lo, hi] of the ascending eigenvalues.
	var lo, hi int
	for lo = 0; lo < total; lo = hi + 1 {
		hi = lo
		for hi+1 < total && vals[hi+1]-vals[hi] <= eigGapTol {
			hi++
		}
		if hi == lo || hi < start {
			continue // simple eigenvalue, or block entirely below the cutoff
		}
		rebuildTiedBlock(V, vecs, lo, hi, start)
	}

	return V
}

// rebuildTiedBlock replaces the kept columns of the tied block [lo, hi]
// with orthonormalized eigenspace projections of fixed pilot vectors. V
// holds the k kept columns (offset by start); vecs holds the full basis.
func rebuildTiedBlock(V, vecs *mat.Dense, lo, hi, start int) {
	n, _ := vecs.Dims()
	first := lo
	if first < start {
		first = start // the block may straddle the cutoff
	}

	var (
		c, b, i int
		coef    float64
		norm    float64
		rebuilt [][]float64 // finished block columns, for orthogonalization
	)
	for c = first; c <= hi; c++ {
		// Project the pilot onto the eigenspace: p = U·(Uᵀ·pilot).
		pilot := pilotVector(n, c-first)
		p := make([]float64, n)
		for b = lo; b <= hi; b++ {
			coef = 0
			for i = 0; i < n; i++ {
				coef += vecs.At(i, b) * pilot[i]
			}
			for i = 0; i < n; i++ {
				p[i] += coef * vecs.At(i, b)
			}
		}
		// Keep the block orthonormal: strip the directions already taken.
		for _, u := range rebuilt {
			coef = dot(p, u)
			for i = 0; i < n; i++ {
				p[i] -= coef * u[i]
			}
		}
		norm = math.Sqrt(dot(p, p))
		if norm <= eigGapTol {
			continue // pilot has no usable component; the solver's column stands
		}
		for i = 0; i < n; i++ {
			p[i] /= norm
		}
		rebuilt = append(rebuilt, p)
		for i = 0; i < n; i++ {
			V.Set(i, c-start, p[i])
		}
	}
}

// pilotVector returns the c-th fixed pilot: near-constant entries with a
// small index-dependent perturbation, so its eigenspace projection keeps a
// component along every tied direction for any non-adversarial geometry.
func pilotVector(n, c int) []float64 {
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = 1 + 0.001*float64((i*(c+2))%7)
	}

	return v
}

// normalizeRows scales every row of V to unit Euclidean length in place.
// Returns ErrZeroNormRow when a row has exactly zero norm.
//
// Complexity: O(r·c).
func normalizeRows(V *mat.Dense) error {
	r, c := V.Dims()
	var (
		i, j int
		norm float64
	)
	for i = 0; i < r; i++ {
		norm = 0
		for j = 0; j < c; j++ {
			norm += V.At(i, j) * V.At(i, j)
		}
		if norm == 0 {
			return ErrZeroNormRow
		}
		norm = math.Sqrt(norm)
		for j = 0; j < c; j++ {
			V.Set(i, j, V.At(i, j)/norm)
		}
	}

	return nil
}
