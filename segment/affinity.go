// SPDX-License-Identifier: MIT

package segment

import (
	"container/heap"
	"math"

	"gonum.org/v1/gonum/mat"
)

// buildAffinity converts the sparse distance graph into the dense affinity
// matrix.
//
// Algorithm:
//  1. Run single-source Dijkstra from every face, filling W with shortest
//     weighted path lengths (+Inf for unreachable pairs across
//     disconnected components).
//  2. Record the unreachable entries and zero them, then compute the
//     Gaussian kernel width σ = ΣW/n².
//  3. Map lengths to similarities exp(−W/(2σ²)), re-zero the recorded
//     entries (unreachable pairs must not gain similarity from exp(0)=1),
//     and force the diagonal to 1.
//
// Errors:
//   - ErrZeroSigma when σ == 0 (single-face or all-zero-distance input);
//     proceeding would divide by zero inside the kernel.
//
// Determinism: sources are processed in ascending face order, and each
// Dijkstra run uses the fixed lazy-decrease-key discipline below.
//
// Complexity: O(n·(n+E)·log n) time, O(n²) memory for W.
func buildAffinity(graph distanceGraph) (*mat.Dense, error) {
	n := len(graph)
	W := mat.NewDense(n, n, nil)

	// 1) APSP by repeated single-source Dijkstra.
	unreachable := make([]bool, n*n) // flat (i*n+j) mask of +Inf entries
	var (
		src, j int
		dist   []float64
	)
	for src = 0; src < n; src++ {
		dist = dijkstraFrom(graph, src)
		for j = 0; j < n; j++ {
			if math.IsInf(dist[j], 1) {
				unreachable[src*n+j] = true
				dist[j] = 0 // zeroed before the kernel, per the +Inf policy
			}
			W.Set(src, j, dist[j])
		}
	}

	// 2) Kernel width from the mean path length over all n² pairs.
	sigma := mat.Sum(W) / float64(n*n)
	if sigma == 0 {
		return nil, ErrZeroSigma
	}
	den := 2 * sigma * sigma

	// 3) Gaussian kernel, then restore the zero/one structure.
	var i int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if unreachable[i*n+j] {
				W.Set(i, j, 0) // no artificial similarity across components
				continue
			}
			W.Set(i, j, math.Exp(-W.At(i, j)/den))
		}
		W.Set(i, i, 1) // every face is maximally similar to itself
	}

	return W, nil
}

// dijkstraFrom computes shortest weighted path lengths from face src to
// every face, using a min-heap with the lazy-decrease-key strategy:
// shorter rediscoveries push duplicate heap entries, and stale entries are
// skipped on pop via the visited set.
//
// Unreachable faces keep +Inf.
//
// Complexity: O((n+E) log n) time, O(n+E) space.
func dijkstraFrom(graph distanceGraph, src int) []float64 {
	n := len(graph)

	// 1) All distances start at +Inf except the source.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	visited := make([]bool, n)

	// 2) Seed the heap with the source at distance zero.
	pq := make(facePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &faceItem{id: src, dist: 0})

	var (
		item    *faceItem
		u       int
		e       halfEdge
		newDist float64
	)
	for pq.Len() > 0 {
		// 3) Pop the closest pending face; drop stale duplicates.
		item = heap.Pop(&pq).(*faceItem)
		u = item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		// 4) Relax every incident arc; strict improvement only, so equal
		//    candidates never push duplicates (deterministic tie rule).
		for _, e = range graph[u] {
			newDist = dist[u] + e.w
			if newDist >= dist[e.to] {
				continue
			}
			dist[e.to] = newDist
			heap.Push(&pq, &faceItem{id: e.to, dist: newDist})
		}
	}

	return dist
}

// faceItem is a (face, tentative distance) pair stored in the priority
// queue, ordered by ascending distance.
type faceItem struct {
	id   int     // face index
	dist float64 // tentative distance from the source
}

// facePQ is a min-heap of *faceItem under the lazy-decrease-key strategy:
// outdated entries remain in the heap and are ignored when popped.
type facePQ []*faceItem

// Len returns the number of items in the heap.
func (pq facePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq facePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq facePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *faceItem.
func (pq *facePQ) Push(x interface{}) { *pq = append(*pq, x.(*faceItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *facePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
