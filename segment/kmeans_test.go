package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGreedyInit verifies the farthest-association seeding: the globally
// least-associated pair comes first, then the face least similar to every
// chosen center, with no repeats.
func TestGreedyInit(t *testing.T) {
	// Association matrix: pair (0,2) is the global minimum at 0.1.
	Q := mat.NewDense(3, 3, []float64{
		1.0, 0.9, 0.1,
		0.9, 1.0, 0.5,
		0.1, 0.5, 1.0,
	})

	require.Equal(t, []int{0, 2}, greedyInit(Q, 2))    // least-associated pair
	require.Equal(t, []int{0, 2, 1}, greedyInit(Q, 3)) // then the only one left
}

// TestGreedyInit_TieBreak verifies the first-minimum-wins policy: with two
// equally minimal pairs the row-major scan keeps the earlier one.
func TestGreedyInit_TieBreak(t *testing.T) {
	Q := mat.NewDense(4, 4, []float64{
		1.0, 0.2, 0.9, 0.9,
		0.2, 1.0, 0.9, 0.9,
		0.9, 0.9, 1.0, 0.2,
		0.9, 0.9, 0.2, 1.0,
	})

	require.Equal(t, []int{0, 1}, greedyInit(Q, 2)) // (0,1) scans before (2,3)
}

// TestGreedyInit_NoRepeats verifies that unit self-association keeps chosen
// faces out of later rounds even when all cross associations are large.
func TestGreedyInit_NoRepeats(t *testing.T) {
	Q := mat.NewDense(4, 4, []float64{
		1.00, 0.99, 0.98, 0.97,
		0.99, 1.00, 0.96, 0.95,
		0.98, 0.96, 1.00, 0.94,
		0.97, 0.95, 0.94, 1.00,
	})

	got := greedyInit(Q, 4)
	require.Len(t, got, 4)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, got) // a permutation, no repeats
}

// TestLloyd_SeparatedClusters verifies convergence on trivially separable
// 1-D data with centroids seeded inside each group.
func TestLloyd_SeparatedClusters(t *testing.T) {
	V := mat.NewDense(4, 1, []float64{0.0, 0.1, 5.0, 5.1})
	centroids := [][]float64{{0.0}, {5.0}}

	got := lloyd(V, centroids, MaxKMeansIterations)
	require.Equal(t, Assignment{0, 0, 1, 1}, got)
}

// TestLloyd_TieBreak verifies that a point equidistant to two centroids
// joins the lower-indexed cluster.
func TestLloyd_TieBreak(t *testing.T) {
	V := mat.NewDense(3, 1, []float64{0.0, 2.0, 4.0})
	centroids := [][]float64{{0.0}, {4.0}}

	got := lloyd(V, centroids, MaxKMeansIterations)
	require.Equal(t, 0, got[1]) // point 2.0 sits exactly between both
}

// TestLloyd_EmptyClusterKeepsCentroid verifies that a cluster losing all of
// its members keeps its previous centroid instead of collapsing.
func TestLloyd_EmptyClusterKeepsCentroid(t *testing.T) {
	// Both points immediately join centroid 0; centroid 1 goes empty and
	// must survive the update untouched.
	V := mat.NewDense(2, 1, []float64{0.0, 0.2})
	centroids := [][]float64{{0.1}, {100.0}}

	got := lloyd(V, centroids, MaxKMeansIterations)
	require.Equal(t, Assignment{0, 0}, got)
	require.InDelta(t, 100.0, centroids[1][0], 1e-12) // untouched by empty rounds
}

// TestKMeansPPInit_Deterministic verifies that equal seeds reproduce the
// exact same centroid selection.
func TestKMeansPPInit_Deterministic(t *testing.T) {
	V := mat.NewDense(5, 2, []float64{
		0, 0,
		0, 1,
		5, 5,
		5, 6,
		10, 0,
	})

	a := kmeansPPInit(V, 3, rngFromSeed(7))
	b := kmeansPPInit(V, 3, rngFromSeed(7))
	require.Equal(t, a, b) // same seed, same draws

	require.Len(t, a, 3)
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			require.NotEqual(t, a[i], a[j]) // D² sampling never re-picks a chosen point
		}
	}
}

// TestRNGFromSeed verifies the zero-seed substitution policy.
func TestRNGFromSeed(t *testing.T) {
	zero := rngFromSeed(0).Int63()
	def := rngFromSeed(defaultRNGSeed).Int63()
	require.Equal(t, def, zero) // 0 is an alias for the fixed default seed

	other := rngFromSeed(42).Int63()
	require.NotEqual(t, def, other) // distinct seeds diverge
}
