// SPDX-License-Identifier: MIT

package segment

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// greedyInit picks k initial center indices from the association matrix
// Q = V·Vᵀ (cosine-like, since V's rows are unit length).
//
// Algorithm:
//  1. The first two centers are the pair with the globally lowest
//     association (row-major scan, first minimum wins — deterministic
//     tie-break).
//  2. Each remaining round adds the face whose MAXIMUM association to any
//     already-chosen center is smallest, i.e. the face least similar to
//     everything picked so far. A chosen index can never repeat: its
//     self-association is 1, the maximum possible value.
//
// Complexity: O(n²) for the pair scan + O(k·n·k) for the rounds.
func greedyInit(Q *mat.Dense, k int) []int {
	n, _ := Q.Dims()

	// 1) Globally least-associated pair.
	var (
		bestI, bestJ int
		bestV        = math.Inf(1)
		i, j         int
		v            float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v = Q.At(i, j); v < bestV {
				bestV, bestI, bestJ = v, i, j
			}
		}
	}
	chosen := make([]int, 0, k)
	chosen = append(chosen, bestI, bestJ)

	// 2) Farthest-association rounds until k centers exist.
	var (
		cand     int
		maxAssoc float64
		bestCand int
		bestMax  float64
	)
	for len(chosen) < k {
		bestCand, bestMax = -1, math.Inf(1)
		for cand = 0; cand < n; cand++ {
			// Max association from cand to the chosen set.
			maxAssoc = math.Inf(-1)
			for _, c := range chosen {
				if v = Q.At(c, cand); v > maxAssoc {
					maxAssoc = v
				}
			}
			if maxAssoc < bestMax { // strict: first minimum wins
				bestMax, bestCand = maxAssoc, cand
			}
		}
		chosen = append(chosen, bestCand)
	}

	return chosen
}

// kmeansPPInit seeds k centroids with the standard k-means++ scheme: the
// first centroid uniformly at random, each further centroid sampled with
// probability proportional to the squared distance to the nearest centroid
// already chosen. All randomness comes from rng.
//
// Complexity: O(k·n·k) distance work.
func kmeansPPInit(V *mat.Dense, k int, rng *rand.Rand) [][]float64 {
	n, dim := V.Dims()
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, rowCopy(V, rng.Intn(n), dim))

	distSq := make([]float64, n)
	var (
		i      int
		sum    float64
		r, acc float64
	)
	for len(centroids) < k {
		// Squared distance of every row to its nearest chosen centroid.
		sum = 0
		for i = 0; i < n; i++ {
			distSq[i] = nearestDistSq(V, i, centroids)
			sum += distSq[i]
		}
		if sum == 0 {
			// All rows coincide with chosen centroids; any index works and
			// the first is the deterministic choice.
			centroids = append(centroids, rowCopy(V, 0, dim))
			continue
		}
		// Weighted sampling by the accumulated mass.
		r = rng.Float64() * sum
		acc = 0
		for i = 0; i < n; i++ {
			acc += distSq[i]
			if acc >= r {
				break
			}
		}
		if i == n {
			i = n - 1 // guard against accumulated rounding
		}
		centroids = append(centroids, rowCopy(V, i, dim))
	}

	return centroids
}

// lloyd runs Lloyd's k-means on the rows of V from the given centroids,
// capped at MaxKMeansIterations. k-means never fails: the cap bounds
// runtime deterministically and the last assignment is always returned.
//
// Policies:
//   - Assignment ties break toward the lowest centroid index.
//   - An empty cluster keeps its previous centroid for that iteration
//     (deterministic, unlike the random reseed some libraries use).
//   - Early exit as soon as an iteration changes no assignment.
//
// Complexity: O(iter·n·k·dim).
func lloyd(V *mat.Dense, centroids [][]float64, maxIter int) Assignment {
	n, dim := V.Dims()
	k := len(centroids)

	labels := make(Assignment, n)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}

	var (
		iter, i, c, d int
		best          int
		bestD, dd     float64
		changed       bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// Assignment step.
		changed = false
		for i = 0; i < n; i++ {
			best, bestD = 0, math.Inf(1)
			for c = 0; c < k; c++ {
				if dd = rowDistSq(V, i, centroids[c]); dd < bestD {
					bestD, best = dd, c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break // stable assignment; further iterations are no-ops
		}

		// Update step: recompute means; empty clusters stay put.
		for c = 0; c < k; c++ {
			counts[c] = 0
			for d = 0; d < dim; d++ {
				sums[c][d] = 0
			}
		}
		for i = 0; i < n; i++ {
			c = labels[i]
			counts[c]++
			for d = 0; d < dim; d++ {
				sums[c][d] += V.At(i, d)
			}
		}
		for c = 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for d = 0; d < dim; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return labels
}

// rowCopy extracts row i of V as a fresh slice.
func rowCopy(V *mat.Dense, i, dim int) []float64 {
	out := make([]float64, dim)
	for d := 0; d < dim; d++ {
		out[d] = V.At(i, d)
	}

	return out
}

// rowDistSq returns the squared Euclidean distance between row i of V and
// the point p.
func rowDistSq(V *mat.Dense, i int, p []float64) float64 {
	var acc, diff float64
	for d := range p {
		diff = V.At(i, d) - p[d]
		acc += diff * diff
	}

	return acc
}

// nearestDistSq returns the squared distance from row i of V to the
// nearest of the given centroids.
func nearestDistSq(V *mat.Dense, i int, centroids [][]float64) float64 {
	best := math.Inf(1)
	var dd float64
	for _, c := range centroids {
		if dd = rowDistSq(V, i, c); dd < best {
			best = dd
		}
	}

	return best
}
