package mesh

import "sort"

// AdjacencyMap maps each edge key to the indices of the faces containing
// that edge, in ascending face order (faces are scanned in index order).
//
// Invariants:
//   - Closed manifold mesh ⇒ every key maps to exactly two faces.
//   - 0 or 1 incident faces ⇒ boundary edge (legal, carries no distance).
//   - >2 incident faces ⇒ non-manifold input; reported, never fatal.
type AdjacencyMap map[EdgeKey][]int

// BuildAdjacency scans every face's edges and appends the face index to
// the list keyed by that edge. Pure scan; no failure conditions.
//
// Determinism: faces are visited in index order, so each key's face list
// is ascending without further sorting.
//
// Complexity: O(total face-edge incidences) expected (map operations).
func BuildAdjacency(m Mesh) AdjacencyMap {
	adj := make(AdjacencyMap, m.NumFaces()*2) // ≈ E for closed manifolds
	var (
		fi int
		ek EdgeKey
	)
	for fi = 0; fi < m.NumFaces(); fi++ {
		for _, ek = range m.Face(fi).Edges() {
			adj[ek] = append(adj[ek], fi)
		}
	}

	return adj
}

// NonManifoldEdges returns the edges with more than two incident faces, in
// deterministic (U, then V) ascending order so warning reports are stable
// across runs.
//
// Complexity: O(E log E) worst case; O(E) when the mesh is manifold.
func NonManifoldEdges(adj AdjacencyMap) []EdgeKey {
	var out []EdgeKey
	for ek, faces := range adj {
		if len(faces) > 2 {
			out = append(out, ek)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
