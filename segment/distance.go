// SPDX-License-Identifier: MIT

package segment

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshseg/mesh"
)

// halfEdge is one weighted arc of the sparse face-adjacency graph.
// Both (i→j) and (j→i) are materialized, so the graph is symmetric by
// construction.
type halfEdge struct {
	to int     // neighboring face index
	w  float64 // blended, normalized distance; always ≥ 0
}

// distanceGraph is the sparse face-adjacency distance graph: one neighbor
// slice per face. Entries absent from a slice mean "no direct edge" — not
// zero and not infinity.
type distanceGraph [][]halfEdge

// facePair is one edge shared by exactly two faces, with its raw
// (pre-normalization) distance terms.
type facePair struct {
	i, j int     // incident face indices, i < j by adjacency scan order
	geo  float64 // geodesic distance across the shared edge
	ang  float64 // convexity-discounted angular distance
}

// buildDistanceGraph assembles the sparse distance graph from the mesh and
// its adjacency map.
//
// Algorithm:
//  1. Collect the edge keys with exactly two incident faces, sorted by
//     (U, V) so every float accumulation below is order-stable. Edges with
//     fewer incident faces are boundaries; edges with more are non-manifold
//     and were already reported by the caller — both are skipped here.
//  2. For each pair compute the geodesic term (edge midpoint to the two
//     face centroids) and the angular term (1 − cos of the normal angle,
//     scaled by η when the fold is convex).
//  3. Normalize each population by its mean so both scales are comparable
//     (each has mean 1.0 afterwards), then blend with δ and populate both
//     arc directions.
//
// Errors:
//   - ErrDegenerateDistances when no pair exists, or when either population
//     has zero mean (mean normalization would divide by zero).
//
// Complexity: O(E log E) for the deterministic ordering + O(E) the rest.
func buildDistanceGraph(m mesh.Mesh, adj mesh.AdjacencyMap, delta, eta float64) (distanceGraph, error) {
	// 1) Deterministic edge order: sort the 2-face keys by (U, V).
	keys := make([]mesh.EdgeKey, 0, len(adj))
	for ek, faces := range adj {
		if len(faces) == 2 {
			keys = append(keys, ek)
		}
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].U != keys[b].U {
			return keys[a].U < keys[b].U
		}
		return keys[a].V < keys[b].V
	})

	// No adjacent pair at all: nothing to normalize over.
	if len(keys) == 0 {
		return nil, ErrDegenerateDistances
	}

	// Precompute per-face centroids once; both distance terms reuse them.
	n := m.NumFaces()
	centroids := make([]r3.Vec, n)
	for fi := 0; fi < n; fi++ {
		centroids[fi] = mesh.Centroid(m, m.Face(fi))
	}

	// 2) Raw distance terms per adjacent pair.
	pairs := make([]facePair, len(keys))
	geos := make([]float64, len(keys))
	angs := make([]float64, len(keys))
	var (
		pi     int
		ek     mesh.EdgeKey
		fi, fj int
	)
	for pi, ek = range keys {
		fi, fj = adj[ek][0], adj[ek][1]
		pairs[pi] = facePair{
			i:   fi,
			j:   fj,
			geo: geodesicDistance(m, ek, centroids[fi], centroids[fj]),
			ang: angularDistance(m.Face(fi).Normal, m.Face(fj).Normal, centroids[fi], centroids[fj], eta),
		}
		geos[pi] = pairs[pi].geo
		angs[pi] = pairs[pi].ang
	}

	// 3) Mean normalization; a zero mean is a numeric-domain error, never
	//    a silent NaN.
	meanGeo := floats.Sum(geos) / float64(len(geos))
	meanAng := floats.Sum(angs) / float64(len(angs))
	if meanGeo == 0 || meanAng == 0 {
		return nil, ErrDegenerateDistances
	}

	graph := make(distanceGraph, n)
	var w float64
	for _, p := range pairs {
		w = delta*p.geo/meanGeo + (1-delta)*p.ang/meanAng
		graph[p.i] = append(graph[p.i], halfEdge{to: p.j, w: w})
		graph[p.j] = append(graph[p.j], halfEdge{to: p.i, w: w})
	}

	return graph, nil
}

// geodesicDistance approximates the on-surface distance between the two
// faces adjacent across edge ek: the Euclidean distance from the edge
// midpoint to each face centroid, summed.
//
// Complexity: O(1).
func geodesicDistance(m mesh.Mesh, ek mesh.EdgeKey, ci, cj r3.Vec) float64 {
	mid := r3.Scale(0.5, r3.Add(m.Vertex(ek.U), m.Vertex(ek.V)))

	return r3.Norm(r3.Sub(mid, ci)) + r3.Norm(r3.Sub(mid, cj))
}

// angularDistance is the dihedral-angle dissimilarity 1 − cos∠(ni, nj).
// When the fold is convex (the direction from centroid i to centroid j
// points against normal i), the distance is scaled by eta: convex bends
// separate parts less strongly than concave creases.
//
// The normal dot product is clamped into [−1, 1] to absorb unit-normal
// rounding before the cosine identity is applied.
//
// Complexity: O(1).
func angularDistance(ni, nj, ci, cj r3.Vec, eta float64) float64 {
	cos := r3.Dot(ni, nj)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	d := 1 - cos
	if r3.Dot(ni, r3.Sub(cj, ci)) < 0 {
		// Convex fold: discount.
		d *= eta
	}

	return d
}
